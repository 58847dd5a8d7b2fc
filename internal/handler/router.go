package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"carhire-booking/internal/domain/user"
	"carhire-booking/internal/handler/api"
	"carhire-booking/internal/handler/middleware"
	"carhire-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Bookings      *api.BookingHandler
	Vehicles      *api.VehicleHandler
	Rentals       *api.RentalHandler
	Notifications *api.NotificationHandler
	Webhooks      *api.WebhookHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	staffOnly := []gin.HandlerFunc{requireAuth, authMiddleware.RequireRole(user.RoleStaff)}

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Bookings.Create, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
				{Method: http.MethodGet, Path: "", Handler: h.Bookings.List, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Bookings.Get, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/:id/transitions", Handler: h.Bookings.Transition, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPut, Path: "/:id/dates", Handler: h.Bookings.Reschedule, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/:id/agreement/send", Handler: h.Rentals.SendAgreement, Mw: staffOnly},
				{Method: http.MethodPost, Path: "/:id/inspections", Handler: h.Rentals.RecordInspection, Mw: staffOnly},
			})
		}

		vehicles := apiGroup.Group("/vehicles")
		{
			addRoutes(vehicles, []route{
				{Method: http.MethodGet, Path: "/availability", Handler: h.Vehicles.Search},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Vehicles.Availability},
			})
		}

		agreements := apiGroup.Group("/agreements")
		agreements.Use(requireAuth)
		{
			addRoutes(agreements, []route{
				{Method: http.MethodPost, Path: "/:id/sign", Handler: h.Rentals.SignAgreement},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(requireAuth)
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Notifications.List},
				{Method: http.MethodPost, Path: "/read-all", Handler: h.Notifications.MarkAllRead},
				{Method: http.MethodPost, Path: "/:id/read", Handler: h.Notifications.MarkRead},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Notifications.Delete},
			})
		}

		// Authenticated by signature, not by token.
		apiGroup.POST("/webhooks/stripe", h.Webhooks.Stripe)
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
