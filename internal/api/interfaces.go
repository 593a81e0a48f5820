// interfaces.go - Handler interface definitions for clean separation of concerns
package api

import (
	"github.com/labstack/echo/v4"
)

// NoticeHandler handles one-shot draft composition operations
type NoticeHandler interface {
	HandlePreview(c echo.Context) error
	HandleDownload(c echo.Context) error
	HandleGetVocabulary(c echo.Context) error
}

// CircuitHandler handles circuit-list parsing operations
type CircuitHandler interface {
	HandleParseCircuits(c echo.Context) error
	HandleParseCircuitsMsgpack(c echo.Context) error
}

// UploadHandler handles file upload operations
type UploadHandler interface {
	HandleUploadFile(c echo.Context) error
	HandleUploadBinary(c echo.Context) error
	HandleGetRecentFiles(c echo.Context) error
	HandleGetFile(c echo.Context) error
	HandleDeleteFile(c echo.Context) error
}

// SessionHandler handles preview session operations
type SessionHandler interface {
	HandleCreateSession(c echo.Context) error
	HandleGetSession(c echo.Context) error
	HandleAppendBlock(c echo.Context) error
	HandleAttachFile(c echo.Context) error
	HandleSetFields(c echo.Context) error
	HandleSessionPreview(c echo.Context) error
	HandleDeleteSession(c echo.Context) error
}

// HealthHandler handles health check operations
type HealthHandler interface {
	HandleHealth(c echo.Context) error
}
