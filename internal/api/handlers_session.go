// handlers_session.go - Preview session handlers
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/maintgen/backend/internal/models"
	"github.com/maintgen/backend/internal/session"
)

// SessionHandlerImpl implements the SessionHandler interface
type SessionHandlerImpl struct {
	sessionMgr *session.Manager
	service    *NoticeService
}

// NewSessionHandler creates a new session handler instance
func NewSessionHandler(sessionMgr *session.Manager, service *NoticeService) SessionHandler {
	return &SessionHandlerImpl{
		sessionMgr: sessionMgr,
		service:    service,
	}
}

// HandleCreateSession creates an empty preview session
func (h *SessionHandlerImpl) HandleCreateSession(c echo.Context) error {
	s, err := h.sessionMgr.NewSession()
	if err != nil {
		return NewInternalError("failed to create session", err)
	}

	return c.JSON(http.StatusCreated, s)
}

// HandleGetSession returns session metadata
func (h *SessionHandlerImpl) HandleGetSession(c echo.Context) error {
	id := c.Param("id")
	s, ok := h.sessionMgr.Get(id)
	if !ok {
		return NewNotFoundError("session", id)
	}

	return c.JSON(http.StatusOK, s)
}

// HandleAppendBlock adds one pasted TSV block to the session. Blocks are
// cumulative: each pasted file is merged in submission order.
func (h *SessionHandlerImpl) HandleAppendBlock(c echo.Context) error {
	id := c.Param("id")

	var req appendBlockRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if req.Block == "" {
		return NewValidationError("block")
	}

	if !h.sessionMgr.AppendBlock(id, req.Block) {
		return NewNotFoundError("session", id)
	}

	return c.NoContent(http.StatusAccepted)
}

// HandleAttachFile records an uploaded file reference on the session so its
// content is merged into every subsequent preview.
func (h *SessionHandlerImpl) HandleAttachFile(c echo.Context) error {
	id := c.Param("id")

	var req attachFileRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if req.FileID == "" {
		return NewValidationError("fileId")
	}
	if !h.service.FileExists(req.FileID) {
		return NewNotFoundError("file", req.FileID)
	}

	if !h.sessionMgr.AttachFile(id, req.FileID) {
		return NewNotFoundError("session", id)
	}

	return c.NoContent(http.StatusAccepted)
}

// HandleSetFields replaces the session's form fields
func (h *SessionHandlerImpl) HandleSetFields(c echo.Context) error {
	id := c.Param("id")

	var fields models.NoticeFields
	if err := c.Bind(&fields); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}

	if !h.sessionMgr.SetFields(id, fields) {
		return NewNotFoundError("session", id)
	}

	return c.NoContent(http.StatusNoContent)
}

// HandleSessionPreview composes the draft from everything accumulated in the
// session so far.
func (h *SessionHandlerImpl) HandleSessionPreview(c echo.Context) error {
	id := c.Param("id")
	s, ok := h.sessionMgr.Get(id)
	if !ok {
		return NewNotFoundError("session", id)
	}
	h.sessionMgr.Touch(id)

	draft, circuits, err := h.service.BuildDraft(s.Fields, s.Blocks, s.FileIDs)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, previewResponse{
		Draft:    draft,
		Circuits: circuits,
	})
}

// HandleDeleteSession discards a session
func (h *SessionHandlerImpl) HandleDeleteSession(c echo.Context) error {
	id := c.Param("id")
	h.sessionMgr.Delete(id)
	return c.NoContent(http.StatusNoContent)
}

// Request types

type appendBlockRequest struct {
	Block string `json:"block"`
}

type attachFileRequest struct {
	FileID string `json:"fileId"`
}
