package handlers

import (
	"inspecta-backend/auth"
	"inspecta-backend/logger"
	"inspecta-backend/metrics"
	"inspecta-backend/middleware"

	"github.com/gin-gonic/gin"
)

// RouterDeps bundles everything the router wires together.
type RouterDeps struct {
	Auth      *AuthHandler
	User      *UserHandler
	Company   *CompanyHandler
	Report    *ReportHandler
	Image     *ImageHandler
	Tokens    *auth.TokenService
	Collector *metrics.Collector
	AuthLimit *middleware.AuthRateLimiter
}

// NewRouter builds the gin engine with all routes and middleware.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(deps.Collector.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", deps.Collector.Handler())

	authGroup := r.Group("/auth")
	authGroup.Use(deps.AuthLimit.Middleware())
	{
		authGroup.POST("/register", deps.Auth.Register)
		authGroup.POST("/login", deps.Auth.Login)
	}

	protected := r.Group("/")
	protected.Use(middleware.RequireAuth(deps.Tokens))
	{
		protected.GET("/user/profile", deps.User.GetProfile)
		protected.PUT("/user/profile", deps.User.UpdateProfile)

		protected.GET("/companies", deps.Company.List)
		protected.POST("/companies", deps.Company.Create)
		protected.GET("/companies/:id", deps.Company.Get)
		protected.PUT("/companies/:id", deps.Company.Update)
		protected.DELETE("/companies/:id", deps.Company.Delete)

		protected.GET("/reports", deps.Report.List)
		protected.POST("/reports", deps.Report.Create)
		protected.GET("/reports/all", deps.Report.ListAll)
		protected.GET("/reports/:id", deps.Report.Get)
		protected.PUT("/reports/:id", deps.Report.Update)
		protected.DELETE("/reports/:id", deps.Report.Delete)
		protected.POST("/reports/:id/duplicate", deps.Report.Duplicate)
		protected.GET("/reports/export/:id", deps.Report.Export)

		protected.POST("/images/upload", deps.Image.Upload)
		protected.GET("/images/:id", deps.Image.Get)
	}

	return r
}
