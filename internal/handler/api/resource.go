package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "venue-booking-engine/internal/handler/dto/request"
	resdto "venue-booking-engine/internal/handler/dto/response"
	"venue-booking-engine/internal/handler/middleware"
	"venue-booking-engine/internal/usecase/commands"
	"venue-booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ResourceHandler struct {
	resourceCommands commands.ResourceCommands
	resourceQueries  queries.ResourceQueries
}

func NewResourceHandler(resourceCommands commands.ResourceCommands, resourceQueries queries.ResourceQueries) *ResourceHandler {
	return &ResourceHandler{
		resourceCommands: resourceCommands,
		resourceQueries:  resourceQueries,
	}
}

// @Summary Create resource
// @Description Create a hall, villa or room
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateResourceRequest true "Resource spec"
// @Success 201 {object} resdto.ResourceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /resources [post]
func (h *ResourceHandler) CreateResource(c *gin.Context) {
	var req reqdto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid owner ID format",
		})
		return
	}

	created, err := h.resourceCommands.Create(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOwnerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Owner not found",
			})
		case errors.Is(err, commands.ErrValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromResource(created))
}

// @Summary Create owner with resource
// @Description Onboard a new owner and their first resource atomically
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOwnerWithResourceRequest true "Owner and resource"
// @Success 201 {object} resdto.OwnerWithResourceResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /resources/with-owner [post]
func (h *ResourceHandler) CreateOwnerWithResource(c *gin.Context) {
	var req reqdto.CreateOwnerWithResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	resourceParams, err := req.Resource.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid owner ID format",
		})
		return
	}

	ownerParams := commands.RegisterOwnerParams{
		Username: req.Owner.Username,
		Password: req.Owner.Password,
		Name:     req.Owner.Name,
	}

	owner, created, err := h.resourceCommands.CreateOwnerWithResource(c.Request.Context(), ownerParams, resourceParams)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Username already taken",
			})
		case errors.Is(err, commands.ErrValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.OwnerWithResourceResponse{
		Owner:    resdto.FromUser(owner),
		Resource: resdto.FromResource(created),
	})
}

// @Summary List resources
// @Description List resources visible to the caller, optionally by type
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param type query string false "Resource type (HALL, VILLA, ROOM)"
// @Success 200 {array} queries.ResourceView
// @Failure 401 {object} map[string]string
// @Router /resources [get]
func (h *ResourceHandler) ListResources(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var kind *string
	if t := c.Query("type"); t != "" {
		kind = &t
	}

	views, err := h.resourceQueries.ListVisible(c.Request.Context(), caller, kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Get resource
// @Description Fetch a single resource visible to the caller
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} queries.ResourceView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /resources/{id} [get]
func (h *ResourceHandler) GetResource(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid resource ID format",
		})
		return
	}

	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.resourceQueries.GetVisible(c.Request.Context(), caller, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Resource not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Search available resources
// @Description List resources of a type free for the requested interval
// @Tags resources
// @Produce json
// @Param type query string true "Resource type (HALL, VILLA, ROOM)"
// @Param start query string true "Interval start (RFC 3339)"
// @Param end query string true "Interval end (RFC 3339)"
// @Success 200 {array} queries.ResourceView
// @Failure 400 {object} map[string]string
// @Router /resources/search [get]
func (h *ResourceHandler) SearchAvailable(c *gin.Context) {
	kind := c.Query("type")
	if kind == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "type query parameter required",
		})
		return
	}

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid start time format",
		})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid end time format",
		})
		return
	}

	views, err := h.resourceQueries.SearchAvailable(c.Request.Context(), kind, start, end)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidSearchType):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid resource type",
			})
		case errors.Is(err, queries.ErrInvalidInterval):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid search interval",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Delete resource
// @Description Remove a resource without confirmed future bookings
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /resources/{id} [delete]
func (h *ResourceHandler) DeleteResource(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid resource ID format",
		})
		return
	}

	if err := h.resourceCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Resource not found",
			})
		case errors.Is(err, commands.ErrResourceInUse):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Resource has confirmed future bookings",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
