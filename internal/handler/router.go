package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"boilerbites/internal/handler/api"
	"boilerbites/internal/handler/middleware"
	"boilerbites/internal/pkg/config"
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
	listingHandler *api.ListingHandler,
	claimHandler *api.ClaimHandler,
	statsHandler *api.StatsHandler,
	venueHandler *api.VenueHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, listingHandler, claimHandler, statsHandler, venueHandler)
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
	listingHandler *api.ListingHandler,
	claimHandler *api.ClaimHandler,
	statsHandler *api.StatsHandler,
	venueHandler *api.VenueHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		listings := apiGroup.Group("/listings")
		{
			addRoutes(listings, []route{
				{Method: http.MethodGet, Path: "", Handler: listingHandler.Feed},
				{Method: http.MethodGet, Path: "/hot", Handler: listingHandler.HotDeals},
				{Method: http.MethodPost, Path: "/abandonment", Handler: listingHandler.CreateAbandonment},
				{Method: http.MethodPost, Path: "/surplus", Handler: listingHandler.CreateSurplus},
				{Method: http.MethodGet, Path: "/:id", Handler: listingHandler.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: listingHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: listingHandler.Remove},
				{Method: http.MethodPost, Path: "/:id/boost", Handler: listingHandler.ToggleBoost},
				{Method: http.MethodPost, Path: "/:id/claim", Handler: claimHandler.Claim},
			})
		}

		venues := apiGroup.Group("/venues")
		{
			addRoutes(venues, []route{
				{Method: http.MethodGet, Path: "", Handler: venueHandler.List},
				{Method: http.MethodGet, Path: "/selected", Handler: venueHandler.Selected},
				{Method: http.MethodPut, Path: "/selected", Handler: venueHandler.Select},
				{Method: http.MethodGet, Path: "/:id/menu", Handler: venueHandler.Menu},
				{Method: http.MethodGet, Path: "/:id/stats", Handler: venueHandler.DisplayStats},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/orders", Handler: statsHandler.Orders},
			{Method: http.MethodGet, Path: "/flags", Handler: statsHandler.Flags},
			{Method: http.MethodGet, Path: "/stats/kitchen", Handler: statsHandler.Kitchen},
			{Method: http.MethodGet, Path: "/stats/student", Handler: statsHandler.Student},
		})
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
