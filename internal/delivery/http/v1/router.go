package v1

import (
	"time"

	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/config"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/internal/delivery/http/middleware"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC    domain.ContactUsecase
	NewsletterUC domain.NewsletterUsecase
	HealthUC     domain.HealthUsecase
	ContentUC    domain.ContentUsecase
	Config       *config.Config
	// Registry for request/delivery metrics; nil disables /metrics.
	Metrics *prometheus.Registry
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(
		deps.Config.GlobalRateLimit,
		time.Duration(deps.Config.GlobalRateWindowSeconds)*time.Second,
	)))

	NewHealthHandler(api, deps.HealthUC)
	NewContactHandler(api, deps.ContactUC, middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(
		deps.Config.ContactRateLimit,
		time.Duration(deps.Config.ContactRateWindowSecs)*time.Second,
	)))
	NewNewsletterHandler(api, deps.NewsletterUC, middleware.RateLimitMiddleware(middleware.NewsletterRateLimitConfig(
		deps.Config.NewsletterRateLimit,
		time.Duration(deps.Config.NewsletterRateWindowSecs)*time.Second,
	)))
	NewContentHandler(api, deps.ContentUC)

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{})))
	}

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
