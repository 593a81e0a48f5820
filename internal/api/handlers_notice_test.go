package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/maintgen/backend/internal/session"
	"github.com/maintgen/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers() *Handlers {
	return NewHandlers(&Dependencies{
		Store:      testutil.NewMockStorage(),
		SessionMgr: session.NewManager(),
		Version:    "test",
	})
}

func doJSON(e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func TestHandlePreview(t *testing.T) {
	e := echo.New()
	h := newTestHandlers()

	body := `{
		"fields": {
			"jiraRef": "NOC-1234",
			"pop": "FRA1",
			"equipment": "edge-router-2",
			"startDate": "01/02/2026", "startTime": "03:00",
			"endDate": "01/02/2026", "endTime": "05:00",
			"utcOffset": "+3"
		},
		"blocks": ["CID\tLabel\tType\nWL-1\tFoo\tWL\nOC-2\tCustomerA\tOC\n"]
	}`
	rec, c := doJSON(e, http.MethodPost, "/api/preview", body)

	require.NoError(t, h.Notice.HandlePreview(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Draft struct {
			Subject            string `json:"subject"`
			Body               string `json:"body"`
			CalculatedDowntime string `json:"calculatedDowntime"`
		} `json:"draft"`
		Circuits []struct {
			Rendered string `json:"rendered"`
		} `json:"circuits"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Contains(t, resp.Draft.Subject, "[NOC-1234]")
	assert.Contains(t, resp.Draft.Subject, "[FRA1 / edge-router-2]")
	assert.Contains(t, resp.Draft.Subject, "00:00 - 02:00, UTC+0")
	assert.Contains(t, resp.Draft.Body, "WL-1\nOC-2 (CustomerA)")
	assert.Equal(t, "2h", resp.Draft.CalculatedDowntime)
	assert.Len(t, resp.Circuits, 2)
}

func TestHandlePreviewInvalidRange(t *testing.T) {
	e := echo.New()
	h := newTestHandlers()

	body := `{
		"fields": {
			"startDate": "02/02/2026", "startTime": "10:00",
			"endDate": "01/02/2026", "endTime": "10:00"
		}
	}`
	_, c := doJSON(e, http.MethodPost, "/api/preview", body)

	err := h.Notice.HandlePreview(c)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "INVALID_RANGE", apiErr.Code)
}

func TestHandlePreviewWithoutDatesStillComposes(t *testing.T) {
	e := echo.New()
	h := newTestHandlers()

	rec, c := doJSON(e, http.MethodPost, "/api/preview", `{"fields": {"jiraRef": "NOC-9"}}`)

	require.NoError(t, h.Notice.HandlePreview(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No circuits specified")
	assert.Contains(t, rec.Body.String(), "[specify]")
}

func TestHandlePreviewWithUploadedFile(t *testing.T) {
	e := echo.New()
	store := testutil.NewMockStorage()
	h := NewHandlers(&Dependencies{
		Store:      store,
		SessionMgr: session.NewManager(),
		Version:    "test",
	})

	info, err := store.SaveBytes("list.tsv", []byte("OC-77\tUploaded\tOC\n"))
	require.NoError(t, err)

	rec, c := doJSON(e, http.MethodPost, "/api/preview",
		`{"fields": {}, "fileIds": ["`+info.ID+`"]}`)

	require.NoError(t, h.Notice.HandlePreview(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "OC-77 (Uploaded)")
}

func TestHandlePreviewUnknownFile(t *testing.T) {
	e := echo.New()
	h := newTestHandlers()

	_, c := doJSON(e, http.MethodPost, "/api/preview", `{"fields": {}, "fileIds": ["missing"]}`)

	err := h.Notice.HandlePreview(c)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestHandleDownload(t *testing.T) {
	e := echo.New()
	h := newTestHandlers()

	rec, c := doJSON(e, http.MethodPost, "/api/download", `{"subject": "Subj", "body": "Body text"}`)

	require.NoError(t, h.Notice.HandleDownload(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Subj\n\nBody text", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/plain")
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "maintenance_notice.txt")
}

func TestHandleDownloadEmpty(t *testing.T) {
	e := echo.New()
	h := newTestHandlers()

	_, c := doJSON(e, http.MethodPost, "/api/download", `{}`)

	err := h.Notice.HandleDownload(c)
	require.Error(t, err)
}

func TestHandleGetVocabulary(t *testing.T) {
	e := echo.New()
	h := newTestHandlers()

	rec, c := doJSON(e, http.MethodGet, "/api/vocabulary", "")

	require.NoError(t, h.Notice.HandleGetVocabulary(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Routine Maintenance")
}
