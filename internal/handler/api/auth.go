package api

import (
	"errors"
	"net/http"

	reqdto "venue-booking-engine/internal/handler/dto/request"
	resdto "venue-booking-engine/internal/handler/dto/response"
	"venue-booking-engine/internal/usecase/commands"
	"venue-booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth  commands.AuthCommands
	users queries.UserQueries
}

func NewAuthHandler(auth commands.AuthCommands, users queries.UserQueries) *AuthHandler {
	return &AuthHandler{
		auth:  auth,
		users: users,
	}
}

// @Summary Login
// @Description Authenticate with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid username or password",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.Token,
		User:        resdto.FromUser(result.User),
	})
}

// @Summary Register owner
// @Description Create a new OWNER account
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterOwnerRequest true "Owner registration"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/owners [post]
func (h *AuthHandler) RegisterOwner(c *gin.Context) {
	var req reqdto.RegisterOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	owner, err := h.auth.RegisterOwner(c.Request.Context(), commands.RegisterOwnerParams{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
	})
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

	c.JSON(http.StatusCreated, resdto.FromUser(owner))
}

// @Summary List owners
// @Description List all OWNER accounts
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.OwnerView
// @Failure 401 {object} map[string]string
// @Router /auth/owners [get]
func (h *AuthHandler) ListOwners(c *gin.Context) {
	owners, err := h.users.ListOwners(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, owners)
}
