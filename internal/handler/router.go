package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/handler/api"
	"library-api/internal/handler/middleware"
	"library-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, bookHandler *api.BookHandler, loanHandler *api.LoanHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, bookHandler, loanHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, bookHandler *api.BookHandler, loanHandler *api.LoanHandler) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		books := apiGroup.Group("/books")
		{
			addRoutes(books, []route{
				{Method: http.MethodPost, Path: "", Handler: bookHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: bookHandler.Find},
				{Method: http.MethodGet, Path: "/:id", Handler: bookHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: bookHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookHandler.Delete},
				{Method: http.MethodGet, Path: "/:id/loans", Handler: bookHandler.LoansByBook},
			})
		}

		loans := apiGroup.Group("/loans")
		{
			addRoutes(loans, []route{
				{Method: http.MethodPost, Path: "", Handler: loanHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: loanHandler.Find},
				{Method: http.MethodGet, Path: "/:id", Handler: loanHandler.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: loanHandler.Return},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
