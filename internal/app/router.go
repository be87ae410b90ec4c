package app

import (
	"earlyledge_backend/docs"
	"earlyledge_backend/internal/config"
	"earlyledge_backend/internal/middleware"
	"earlyledge_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/signup", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/me", c.auth.Me)
		authGroup.GET("/me/plan", c.plan.MyPlan)

		authGroup.POST("/children", c.child.Create)
		authGroup.GET("/children", c.child.List)
		authGroup.GET("/children/:id", c.child.Get)
		authGroup.PUT("/children/:id", c.child.Update)
		authGroup.DELETE("/children/:id", c.child.Delete)

		authGroup.GET("/children/:id/dashboard", c.dashboard.Weekly)
		authGroup.GET("/children/:id/skill-analysis", c.analysis.SkillAnalysis)
		authGroup.GET("/children/:id/reports", c.report.Report)
		authGroup.GET("/children/:id/reports/monthly", c.report.MonthlyPDF)
		authGroup.GET("/children/:id/reflections", c.reflection.ListForChild)

		authGroup.POST("/activities", c.activity.Create)
		authGroup.GET("/activities", c.activity.List)
		authGroup.GET("/activities/:id", c.activity.Get)
		authGroup.PUT("/activities/:id", c.activity.Update)
		authGroup.DELETE("/activities/:id", c.activity.Delete)

		authGroup.GET("/skills", c.skill.List)
		authGroup.GET("/suggestions", c.suggestion.List)
		authGroup.GET("/suggestions/daily", c.suggestion.Daily)

		authGroup.POST("/reflections", c.reflection.Create)
		authGroup.PUT("/reflections/:id", c.reflection.Update)
		authGroup.DELETE("/reflections/:id", c.reflection.Delete)
	}

	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.AdminMiddleware())
	{
		admin.POST("/users/:id/plan", c.plan.SetPlan)
	}
}
