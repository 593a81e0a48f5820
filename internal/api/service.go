// service.go - Draft building shared by the preview handlers and the
// websocket hub. Pulls uploaded file content from storage, aggregates
// circuit blocks, normalizes the window and composes the draft.
package api

import (
	"errors"
	"fmt"

	"github.com/maintgen/backend/internal/compose"
	"github.com/maintgen/backend/internal/models"
	"github.com/maintgen/backend/internal/parser"
	"github.com/maintgen/backend/internal/storage"
	"github.com/maintgen/backend/internal/window"
)

// NoticeService wires the core engine to the serving layer.
type NoticeService struct {
	store storage.Store
	vocab *models.Vocabulary

	// alwaysIncludeOther comes from config; individual requests can also
	// opt in via their IncludeOther field.
	alwaysIncludeOther bool

	// maxBlocks caps blocks per submission (pasted plus file-backed).
	maxBlocks int
}

// NewNoticeService creates a notice service. A nil vocabulary uses the
// built-in defaults; maxBlocks <= 0 means unlimited.
func NewNoticeService(store storage.Store, vocab *models.Vocabulary, alwaysIncludeOther bool, maxBlocks int) *NoticeService {
	if vocab == nil {
		vocab = models.DefaultVocabulary()
	}
	return &NoticeService{
		store:              store,
		vocab:              vocab,
		alwaysIncludeOther: alwaysIncludeOther,
		maxBlocks:          maxBlocks,
	}
}

// FileExists reports whether an uploaded file ID is still in storage.
func (s *NoticeService) FileExists(id string) bool {
	_, err := s.store.Get(id)
	return err == nil
}

// Vocabulary exposes the active vocabulary (for the form's preset list).
func (s *NoticeService) Vocabulary() *models.Vocabulary {
	return s.vocab
}

// AggregateCircuits merges pasted blocks and uploaded files into the ordered
// deduplicated circuit list. Uploaded files are decoded with the charset
// fallback chain before parsing. Unknown file IDs fail hard; the operator
// referenced something that no longer exists.
func (s *NoticeService) AggregateCircuits(blocks []string, fileIDs []string, includeOther bool) ([]models.CircuitEntry, error) {
	if s.maxBlocks > 0 && len(blocks)+len(fileIDs) > s.maxBlocks {
		return nil, NewBadRequestError(
			fmt.Sprintf("too many blocks in one submission (max %d)", s.maxBlocks), nil)
	}

	all := append([]string(nil), blocks...)
	for _, id := range fileIDs {
		data, err := s.store.GetContent(id)
		if err != nil {
			return nil, NewNotFoundError("file", id)
		}
		all = append(all, parser.DecodeText(data))
	}

	classifier := parser.NewClassifier(s.vocab, includeOther || s.alwaysIncludeOther)
	return parser.NewAggregator(classifier).Aggregate(all), nil
}

// BuildWindow normalizes the form's date/time/offset fields. Incomplete or
// unparseable fields yield a nil window (the draft shows placeholders); an
// end-before-start range is the one hard failure.
func (s *NoticeService) BuildWindow(fields models.NoticeFields) (*models.MaintenanceWindow, error) {
	start, errStart := window.ParseLocal(fields.StartDate, fields.StartTime)
	end, errEnd := window.ParseLocal(fields.EndDate, fields.EndTime)
	if errStart != nil || errEnd != nil {
		return nil, nil
	}

	win, err := window.Normalize(start, end, window.ParseOffset(fields.UTCOffset))
	if err != nil {
		if errors.Is(err, window.ErrInvalidRange) {
			return nil, NewInvalidRangeError(err)
		}
		return nil, NewInternalError("failed to normalize window", err)
	}
	return win, nil
}

// BuildDraft runs the full pipeline: circuits, window, composition.
func (s *NoticeService) BuildDraft(fields models.NoticeFields, blocks []string, fileIDs []string) (models.NotificationDraft, []models.CircuitEntry, error) {
	circuits, err := s.AggregateCircuits(blocks, fileIDs, fields.IncludeOther)
	if err != nil {
		return models.NotificationDraft{}, nil, err
	}

	win, err := s.BuildWindow(fields)
	if err != nil {
		return models.NotificationDraft{}, nil, err
	}

	return compose.Compose(fields, win, circuits), circuits, nil
}
