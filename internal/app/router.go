package app

import (
	"pretexta_backend/docs"
	"pretexta_backend/internal/config"
	"pretexta_backend/internal/middleware"
	"pretexta_backend/pkg/monitoring"
	"pretexta_backend/pkg/security"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c, cfg)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(a.services.auth))
	{
		a.registerContentRoutes(authGroup, c)
		a.registerSimulationRoutes(authGroup, c)
		a.registerLLMRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute

	public := router.Group("/api")
	{
		public.GET("", c.health.Root)
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/login", security.RateLimiter(cfg.RateLimit.MaxRequests, window), c.auth.Login)
	}
}

func (a *App) registerContentRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/auth/me", c.auth.Me)

	group.GET("/challenges", c.challenge.List)
	group.POST("/challenges", c.challenge.Create)
	group.GET("/challenges/:id", c.challenge.Get)

	group.GET("/quizzes", c.quiz.List)
	group.GET("/quizzes/:id", c.quiz.Get)

	group.POST("/import/yaml", c.importer.ImportYAML)

	group.GET("/settings", c.settings.Get)
	group.PUT("/settings", c.settings.Update)
}

func (a *App) registerSimulationRoutes(group *gin.RouterGroup, c *controllers) {
	sims := group.Group("/simulations")
	{
		sims.POST("", c.simulation.Create)
		sims.GET("", c.simulation.List)
		sims.GET("/:id", c.simulation.Get)
		sims.PUT("/:id", c.simulation.Update)
		sims.DELETE("/:id", c.simulation.Delete)
	}

	group.GET("/reports/:id/json", c.report.JSON)
}

func (a *App) registerLLMRoutes(group *gin.RouterGroup, c *controllers) {
	llmGroup := group.Group("/llm")
	{
		llmGroup.GET("/config", c.llm.ListConfigs)
		llmGroup.POST("/config", c.llm.SaveConfig)
		llmGroup.POST("/generate", c.llm.Generate)
		llmGroup.POST("/chat", c.llm.Chat)
	}
}
