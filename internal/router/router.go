package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "billsense/docs" // registers the OpenAPI spec with swag
	"billsense/internal/config"
	"billsense/internal/handler"
	"billsense/internal/metrics"
	"billsense/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware. m may be
// nil when metrics are disabled; admin routes are only mounted when an admin
// password hash is configured.
func Setup(
	cfg *config.Config,
	logger *zap.Logger,
	m *metrics.Metrics,
	classifyH *handler.ClassifyHandler,
	historyH *handler.HistoryHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	if m != nil {
		r.Use(middleware.Metrics(m))
		r.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.POST("/classify", classifyH.Classify)

	if cfg.Admin.PasswordHash != "" {
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuth(cfg.Admin.PasswordHash))
		admin.GET("/stats", historyH.GetStats)
		admin.GET("/classifications", historyH.List)
		admin.GET("/classifications/export", historyH.Export)
		admin.GET("/classifications/:id", historyH.GetByID)
	}

	return r
}
