package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ecocollect/internal/handler/api"
	"ecocollect/internal/handler/middleware"
	"ecocollect/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Session     *api.SessionHandler
	Cart        *api.CartHandler
	Points      *api.PointsHandler
	Marketplace *api.MarketplaceHandler
	Collection  *api.CollectionHandler
	Checkout    *api.CheckoutHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, sessionMw *middleware.SessionMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, sessionMw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, sessionMw *middleware.SessionMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		session := apiGroup.Group("/session")
		{
			addRoutes(session, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Session.Login},
			})

			authRequired := session.Group("")
			authRequired.Use(sessionMw.RequireSession())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Session.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Session.Me},
			})
		}

		addRoutes(apiGroup.Group("/marketplace"), []route{
			{Method: http.MethodGet, Path: "/listings", Handler: h.Marketplace.Listings},
		})

		// The cart works without a login; the snapshot store keeps it
		// across restarts either way.
		cart := apiGroup.Group("/cart")
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
				{Method: http.MethodDelete, Path: "", Handler: h.Cart.Clear},
				{Method: http.MethodPost, Path: "/items", Handler: h.Cart.Add},
				{Method: http.MethodPut, Path: "/items/:id", Handler: h.Cart.SetQuantity},
				{Method: http.MethodDelete, Path: "/items/:id", Handler: h.Cart.Remove},
			})
		}

		points := apiGroup.Group("/points")
		points.Use(sessionMw.RequireSession())
		{
			addRoutes(points, []route{
				{Method: http.MethodGet, Path: "/balance", Handler: h.Points.Balance},
				{Method: http.MethodGet, Path: "/history", Handler: h.Points.History},
				{Method: http.MethodGet, Path: "/affordability", Handler: h.Points.CanAfford},
				{Method: http.MethodPost, Path: "/earn", Handler: h.Points.Earn},
				{Method: http.MethodPost, Path: "/spend", Handler: h.Points.Spend},
			})
		}

		collections := apiGroup.Group("/collections")
		collections.Use(sessionMw.RequireSession())
		{
			addRoutes(collections, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Collection.Submit},
				{Method: http.MethodGet, Path: "", Handler: h.Collection.List},
				{Method: http.MethodPost, Path: "/sync", Handler: h.Collection.Sync},
			})
		}

		checkout := apiGroup.Group("/checkout")
		checkout.Use(sessionMw.RequireSession())
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Checkout.Checkout},
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
