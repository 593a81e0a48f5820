// handlers_notice.go - One-shot draft composition handlers
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/maintgen/backend/internal/models"
)

// NoticeHandlerImpl implements the NoticeHandler interface
type NoticeHandlerImpl struct {
	service *NoticeService
}

// NewNoticeHandler creates a new notice handler instance
func NewNoticeHandler(service *NoticeService) NoticeHandler {
	return &NoticeHandlerImpl{service: service}
}

// HandlePreview composes a draft from the submitted fields, pasted blocks
// and uploaded file references in one shot.
func (h *NoticeHandlerImpl) HandlePreview(c echo.Context) error {
	var req previewRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}

	draft, circuits, err := h.service.BuildDraft(req.Fields, req.Blocks, req.FileIDs)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, previewResponse{
		Draft:    draft,
		Circuits: circuits,
	})
}

// HandleDownload returns the finished notice as a plain-text attachment.
func (h *NoticeHandlerImpl) HandleDownload(c echo.Context) error {
	var req downloadRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if req.Subject == "" && req.Body == "" {
		return NewValidationError("subject")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="maintenance_notice.txt"`)
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(req.Subject+"\n\n"+req.Body))
}

// HandleGetVocabulary returns the active parsing/composition vocabulary so
// the form can render the preset purpose list.
func (h *NoticeHandlerImpl) HandleGetVocabulary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Vocabulary())
}

// Request/Response types

type previewRequest struct {
	Fields  models.NoticeFields `json:"fields"`
	Blocks  []string            `json:"blocks"`
	FileIDs []string            `json:"fileIds"`
}

type previewResponse struct {
	Draft    models.NotificationDraft `json:"draft"`
	Circuits []models.CircuitEntry    `json:"circuits"`
}

type downloadRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
