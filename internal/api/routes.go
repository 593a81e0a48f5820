// routes.go - Route registration helpers
// This file provides a clean way to register all API routes
package api

import (
	"github.com/labstack/echo/v4"
	"github.com/maintgen/backend/internal/models"
	"github.com/maintgen/backend/internal/session"
	"github.com/maintgen/backend/internal/storage"
)

// Dependencies holds all handler dependencies
type Dependencies struct {
	Store        storage.Store
	SessionMgr   *session.Manager
	Vocabulary   *models.Vocabulary
	IncludeOther bool
	MaxBlocks    int
	Version      string
}

// Handlers holds all handler instances
type Handlers struct {
	Health   HealthHandler
	Notice   NoticeHandler
	Circuits CircuitHandler
	Upload   UploadHandler
	Sessions SessionHandler
	Preview  *PreviewHub
}

// NewHandlers creates all handler instances
func NewHandlers(deps *Dependencies) *Handlers {
	service := NewNoticeService(deps.Store, deps.Vocabulary, deps.IncludeOther, deps.MaxBlocks)

	return &Handlers{
		Health:   NewHealthHandler(deps.Version),
		Notice:   NewNoticeHandler(service),
		Circuits: NewCircuitHandler(service),
		Upload:   NewUploadHandler(deps.Store),
		Sessions: NewSessionHandler(deps.SessionMgr, service),
		Preview:  NewPreviewHub(deps.SessionMgr, service),
	}
}

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, handlers *Handlers) {
	// Health check
	e.GET("/api/health", handlers.Health.HandleHealth)

	// One-shot composition
	e.POST("/api/preview", handlers.Notice.HandlePreview)
	e.POST("/api/download", handlers.Notice.HandleDownload)
	e.GET("/api/vocabulary", handlers.Notice.HandleGetVocabulary)

	// Circuit-list parsing
	circuitGroup := e.Group("/api/circuits")
	circuitGroup.POST("/parse", handlers.Circuits.HandleParseCircuits)
	circuitGroup.POST("/parse/msgpack", handlers.Circuits.HandleParseCircuitsMsgpack)

	// File uploads
	uploadGroup := e.Group("/api/files")
	uploadGroup.POST("/upload", handlers.Upload.HandleUploadFile)
	uploadGroup.POST("/upload/binary", handlers.Upload.HandleUploadBinary)
	uploadGroup.GET("/recent", handlers.Upload.HandleGetRecentFiles)
	uploadGroup.GET("/:id", handlers.Upload.HandleGetFile)
	uploadGroup.DELETE("/:id", handlers.Upload.HandleDeleteFile)

	// Preview sessions
	sessionGroup := e.Group("/api/sessions")
	sessionGroup.POST("", handlers.Sessions.HandleCreateSession)
	sessionGroup.GET("/:id", handlers.Sessions.HandleGetSession)
	sessionGroup.POST("/:id/blocks", handlers.Sessions.HandleAppendBlock)
	sessionGroup.POST("/:id/files", handlers.Sessions.HandleAttachFile)
	sessionGroup.PUT("/:id/fields", handlers.Sessions.HandleSetFields)
	sessionGroup.GET("/:id/preview", handlers.Sessions.HandleSessionPreview)
	sessionGroup.DELETE("/:id", handlers.Sessions.HandleDeleteSession)

	// Live preview websocket
	e.GET("/api/ws/preview/:id", handlers.Preview.HandlePreviewSocket)
}
