package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"venue-booking-engine/internal/domain/user"
	"venue-booking-engine/internal/handler/api"
	"venue-booking-engine/internal/handler/middleware"
	"venue-booking-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	resourceHandler *api.ResourceHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, resourceHandler, bookingHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	resourceHandler *api.ResourceHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	adminOnly := authMiddleware.RequireRole(user.RoleSuperAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/owners", Handler: authHandler.RegisterOwner, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodGet, Path: "/owners", Handler: authHandler.ListOwners, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		resources := apiGroup.Group("/resources")
		{
			// Availability search is the public storefront; customers browse
			// without an account.
			addRoutes(resources, []route{
				{Method: http.MethodGet, Path: "/search", Handler: resourceHandler.SearchAvailable},
			})

			resourcesAuthed := resources.Group("")
			resourcesAuthed.Use(authMiddleware.RequireAuth())
			addRoutes(resourcesAuthed, []route{
				{Method: http.MethodPost, Path: "", Handler: resourceHandler.CreateResource, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPost, Path: "/with-owner", Handler: resourceHandler.CreateOwnerWithResource, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodGet, Path: "", Handler: resourceHandler.ListResources},
				{Method: http.MethodGet, Path: "/:id", Handler: resourceHandler.GetResource},
				{Method: http.MethodDelete, Path: "/:id", Handler: resourceHandler.DeleteResource, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			// Booking commit is likewise anonymous; the customer is recorded
			// in the booking itself, not as an authenticated principal.
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
			})

			bookingsAuthed := bookings.Group("")
			bookingsAuthed.Use(authMiddleware.RequireAuth())
			addRoutes(bookingsAuthed, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.CancelBooking},
				{Method: http.MethodPatch, Path: "/:id/payment", Handler: bookingHandler.UpdatePayment},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
