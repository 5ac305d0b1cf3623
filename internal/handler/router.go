package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dartshop/internal/handler/api"
	"dartshop/internal/handler/middleware"
	"dartshop/internal/pkg/config"
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
	inventoryHandler *api.InventoryHandler,
	reservationHandler *api.ReservationHandler,
	watchlistHandler *api.WatchlistHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, inventoryHandler, reservationHandler, watchlistHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	inventoryHandler *api.InventoryHandler,
	reservationHandler *api.ReservationHandler,
	watchlistHandler *api.WatchlistHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		items := apiGroup.Group("/items")
		{
			addRoutes(items, []route{
				{Method: http.MethodGet, Path: "", Handler: inventoryHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: inventoryHandler.Get},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.Reserve},
			})
		}

		watchlist := apiGroup.Group("/watchlist")
		{
			addRoutes(watchlist, []route{
				{Method: http.MethodGet, Path: "", Handler: watchlistHandler.List},
				{Method: http.MethodPost, Path: "", Handler: watchlistHandler.Watch},
				{Method: http.MethodDelete, Path: "", Handler: watchlistHandler.Unwatch},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: adminHandler.Login},
			})

			adminRequired := admin.Group("")
			adminRequired.Use(authMiddleware.RequireAdmin())
			addRoutes(adminRequired, []route{
				{Method: http.MethodPost, Path: "/items", Handler: inventoryHandler.Create},
				{Method: http.MethodPatch, Path: "/items/:id", Handler: inventoryHandler.Update},
				{Method: http.MethodDelete, Path: "/items/:id", Handler: inventoryHandler.Delete},
				{Method: http.MethodGet, Path: "/orders", Handler: reservationHandler.ListOrders},
				{Method: http.MethodGet, Path: "/orders/:id", Handler: reservationHandler.GetOrder},
				{Method: http.MethodPost, Path: "/orders/:id/confirm", Handler: reservationHandler.ConfirmSale},
				{Method: http.MethodDelete, Path: "/orders/:id", Handler: reservationHandler.Cancel},
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
