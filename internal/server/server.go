package server

import (
	"net/http"
	"strings"
	"time"

	"anoa.com/gamificationdemo/internal/bootstrap"
	"anoa.com/gamificationdemo/internal/config"
	"anoa.com/gamificationdemo/internal/middleware"

	demoHttp "anoa.com/gamificationdemo/internal/modules/demo/delivery/http"
	demoRepo "anoa.com/gamificationdemo/internal/modules/demo/repository"
	demoService "anoa.com/gamificationdemo/internal/modules/demo/service"

	diagnosticHttp "anoa.com/gamificationdemo/internal/modules/diagnostic/delivery/http"
	diagnosticService "anoa.com/gamificationdemo/internal/modules/diagnostic/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	engine *gin.Engine
	cfg    *config.Config
}

func NewServer(cfg *config.Config, dataset *bootstrap.Dataset, db diagnosticService.Collaborator) *Server {
	repo := demoRepo.NewDemoRepository(dataset)
	demoSvc := demoService.NewDemoService(repo)
	demoHandler := demoHttp.NewDemoHandler(demoSvc)

	diagnosticSvc := diagnosticService.NewDiagnosticService(cfg, db)
	diagnosticHandler := diagnosticHttp.NewDiagnosticHandler(diagnosticSvc)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Gamification Demo API running"})
	})

	router.GET("/test", diagnosticHandler.TestDatabase)

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"mode":    "demo",
			"version": config.Version,
		})
	})

	demo := api.Group("/demo")
	{
		demo.GET("/leaderboard", demoHandler.GetLeaderboard)
		demo.GET("/badges", demoHandler.GetBadges)
		demo.GET("/users", demoHandler.GetUsers)
		demo.GET("/user/:user_id", demoHandler.GetUserSummary)
		demo.POST("/award", demoHandler.AwardPoints)
	}

	return &Server{
		engine: router,
		cfg:    cfg,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if allowedOrigins == "" || allowedOrigins == "*" {
		// Credentials with a wildcard need the origin echoed back, so allow
		// via func instead of AllowAllOrigins.
		corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	} else {
		corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	}

	router.Use(cors.New(corsConfig))
}
