package router

import (
	"github.com/gin-gonic/gin"

	"lcintel/internal/config"
	"lcintel/internal/handler"
	"lcintel/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
// customerH and portH may be nil when the record store is not
// configured; their routes are then omitted.
func Setup(
	cfg *config.Config,
	sessionH *handler.SessionHandler,
	verifyH *handler.VerifyHandler,
	validateH *handler.ValidateHandler,
	fieldH *handler.FieldHandler,
	customerH *handler.CustomerHandler,
	portH *handler.PortHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Session lifecycle and pipeline stages
	sessions := v1.Group("/sessions")
	sessions.POST("", sessionH.Create)
	sessions.GET("", sessionH.List)
	sessions.GET("/:id", sessionH.Get)
	sessions.DELETE("/:id", sessionH.Delete)
	sessions.POST("/:id/document", sessionH.UploadDocument)
	sessions.POST("/:id/supporting", sessionH.AddSupporting)
	sessions.POST("/:id/extract", sessionH.Extract)
	sessions.POST("/:id/validate", sessionH.Validate)
	sessions.POST("/:id/verify", sessionH.Verify)
	sessions.POST("/:id/pipeline", sessionH.RunPipeline)
	sessions.POST("/:id/chat", sessionH.Chat)
	sessions.POST("/:id/research", sessionH.Research)
	sessions.POST("/:id/archive", sessionH.Archive)
	sessions.GET("/:id/export", sessionH.Export)

	// Standalone verification tools
	v1.POST("/verify", verifyH.Run)
	v1.POST("/verify/batch", verifyH.RunBatch)
	v1.GET("/tools", verifyH.Tools)

	// Standalone consistency validation over caller-supplied field maps
	v1.POST("/validate", validateH.Run)

	// Field schema for UI rendering
	v1.GET("/fields", fieldH.Schema)

	// Operational record store lookups
	if customerH != nil {
		v1.POST("/customers/lookup", customerH.Lookup)
	}
	if portH != nil {
		v1.GET("/ports/search", portH.Search)
	}

	return r
}
