// handlers_circuits.go - Circuit-list parsing handlers
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/maintgen/backend/internal/models"
	"github.com/vmihailenco/msgpack/v5"
)

// CircuitHandlerImpl implements the CircuitHandler interface
type CircuitHandlerImpl struct {
	service *NoticeService
}

// NewCircuitHandler creates a new circuit handler instance
func NewCircuitHandler(service *NoticeService) CircuitHandler {
	return &CircuitHandlerImpl{service: service}
}

// HandleParseCircuits parses raw TSV blocks (and optionally uploaded files)
// into the ordered, deduplicated circuit list.
func (h *CircuitHandlerImpl) HandleParseCircuits(c echo.Context) error {
	req, err := h.bindParseRequest(c)
	if err != nil {
		return err
	}

	entries, err := h.service.AggregateCircuits(req.Blocks, req.FileIDs, req.IncludeOther)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, parseCircuitsResponse{
		Circuits: entries,
		Count:    len(entries),
	})
}

// HandleParseCircuitsMsgpack returns the same result msgpack-encoded for the
// live-preview frontend path.
func (h *CircuitHandlerImpl) HandleParseCircuitsMsgpack(c echo.Context) error {
	req, err := h.bindParseRequest(c)
	if err != nil {
		return err
	}

	entries, err := h.service.AggregateCircuits(req.Blocks, req.FileIDs, req.IncludeOther)
	if err != nil {
		return err
	}

	data, err := msgpack.Marshal(parseCircuitsResponse{
		Circuits: entries,
		Count:    len(entries),
	})
	if err != nil {
		return NewInternalError("failed to encode circuits", err)
	}

	return c.Blob(http.StatusOK, "application/x-msgpack", data)
}

func (h *CircuitHandlerImpl) bindParseRequest(c echo.Context) (*parseCircuitsRequest, error) {
	var req parseCircuitsRequest
	if err := c.Bind(&req); err != nil {
		return nil, NewBadRequestError("invalid JSON body", err)
	}
	if len(req.Blocks) == 0 && len(req.FileIDs) == 0 {
		return nil, NewValidationError("blocks")
	}
	return &req, nil
}

// Request/Response types

type parseCircuitsRequest struct {
	Blocks       []string `json:"blocks"`
	FileIDs      []string `json:"fileIds"`
	IncludeOther bool     `json:"includeOther"`
}

type parseCircuitsResponse struct {
	Circuits []models.CircuitEntry `json:"circuits" msgpack:"circuits"`
	Count    int                   `json:"count" msgpack:"count"`
}
