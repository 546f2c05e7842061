package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rentdesk/backoffice/internal/config"
	"github.com/rentdesk/backoffice/internal/metrics"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, m *metrics.Metrics, log *zap.Logger) *gin.Engine {
	gin.SetMode(cfg.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))

	// CORS configuration. When credentials are used, specific origins must
	// be provided (not *).
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	} else {
		// Development defaults; set CORS_ALLOWED_ORIGINS in production.
		corsConfig.AllowOrigins = []string{
			"http://localhost:8090",
			"http://127.0.0.1:8090",
		}
	}
	r.Use(cors.New(corsConfig))

	// Pages
	r.GET("/", handler.Page)
	r.GET("/pages/:id", handler.Page)
	r.Static("/static", "./static")

	// Form actions, one POST route per operation
	r.POST("/tenants/submit", handler.SubmitTenant)
	r.POST("/tenants/delete", handler.DeleteTenant)
	r.POST("/lease-agreements/submit", handler.SubmitLease)

	r.POST("/landlords/submit", handler.SubmitLandlord)
	r.POST("/landlords/delete", handler.DeleteLandlord)

	r.POST("/properties/submit", handler.SubmitProperty)
	r.POST("/properties/delete", handler.DeleteProperty)

	r.POST("/payments/submit", handler.SubmitPayment)
	r.POST("/payments/delete", handler.DeletePayment)
	r.POST("/payments/email-receipt", handler.EmailReceipt)

	r.POST("/documents/generate/:type", handler.GenerateDocument)
	r.POST("/documents/send", handler.SendDocument)
	r.GET("/documents/:id/view", handler.ViewDocument)
	r.GET("/documents/:id/download", handler.DownloadDocument)

	// Operational endpoints
	r.GET("/health", handler.Health)
	if m != nil {
		r.GET("/metrics", m.Handler())
	}

	return r
}

// requestLogger logs each request with zap instead of gin's default writer.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}
