package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/maintgen/backend/internal/models"
	"github.com/maintgen/backend/internal/session"
	"github.com/maintgen/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createSession(t *testing.T, e *echo.Echo, h *Handlers) string {
	t.Helper()
	rec, c := doJSON(e, http.MethodPost, "/api/sessions", "")
	require.NoError(t, h.Sessions.HandleCreateSession(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var s models.PreviewSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	require.NotEmpty(t, s.ID)
	return s.ID
}

func TestSessionPreviewFlow(t *testing.T) {
	e := echo.New()
	h := newTestHandlers()
	id := createSession(t, e, h)

	// Append two blocks; a duplicate CID in the second keeps its first form.
	for _, block := range []string{
		`WL-1\tFoo\tWL\nOC-2\tBar\tOC\n`,
		`OC-2\tLater\tOC\nOC-3\tBaz\tOC\n`,
	} {
		rec, c := doJSON(e, http.MethodPost, "/api/sessions/"+id+"/blocks",
			`{"block": "`+block+`"}`)
		c.SetParamNames("id")
		c.SetParamValues(id)
		require.NoError(t, h.Sessions.HandleAppendBlock(c))
		assert.Equal(t, http.StatusAccepted, rec.Code)
	}

	rec, c := doJSON(e, http.MethodPut, "/api/sessions/"+id+"/fields",
		`{"jiraRef": "NOC-7", "pop": "LON1", "equipment": "sw-3"}`)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.Sessions.HandleSetFields(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, c = doJSON(e, http.MethodGet, "/api/sessions/"+id+"/preview", "")
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.Sessions.HandleSessionPreview(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Draft struct {
			Subject string `json:"subject"`
			Body    string `json:"body"`
		} `json:"draft"`
		Circuits []struct {
			Rendered string `json:"rendered"`
		} `json:"circuits"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Draft.Subject, "[NOC-7]")
	require.Len(t, resp.Circuits, 3)
	assert.Equal(t, "OC-2 (Bar)", resp.Circuits[1].Rendered)
}

func TestSessionAttachFile(t *testing.T) {
	e := echo.New()
	store := testutil.NewMockStorage()
	h := NewHandlers(&Dependencies{Store: store, SessionMgr: session.NewManager()})
	id := createSession(t, e, h)

	info, err := store.SaveBytes("list.tsv", []byte("OC-9\tFromFile\tOC\n"))
	require.NoError(t, err)

	rec, c := doJSON(e, http.MethodPost, "/api/sessions/"+id+"/files",
		`{"fileId": "`+info.ID+`"}`)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.Sessions.HandleAttachFile(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec, c = doJSON(e, http.MethodGet, "/api/sessions/"+id+"/preview", "")
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.Sessions.HandleSessionPreview(c))
	assert.Contains(t, rec.Body.String(), "OC-9 (FromFile)")

	// Unknown file IDs are rejected up front.
	_, c = doJSON(e, http.MethodPost, "/api/sessions/"+id+"/files", `{"fileId": "missing"}`)
	c.SetParamNames("id")
	c.SetParamValues(id)
	err = h.Sessions.HandleAttachFile(c)
	require.Error(t, err)
}

func TestSessionAppendBlockValidation(t *testing.T) {
	e := echo.New()
	h := newTestHandlers()
	id := createSession(t, e, h)

	_, c := doJSON(e, http.MethodPost, "/api/sessions/"+id+"/blocks", `{"block": ""}`)
	c.SetParamNames("id")
	c.SetParamValues(id)
	err := h.Sessions.HandleAppendBlock(c)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
}

func TestSessionNotFound(t *testing.T) {
	e := echo.New()
	h := newTestHandlers()

	_, c := doJSON(e, http.MethodGet, "/api/sessions/nope", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")
	err := h.Sessions.HandleGetSession(c)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestSessionDelete(t *testing.T) {
	e := echo.New()
	h := newTestHandlers()
	id := createSession(t, e, h)

	rec, c := doJSON(e, http.MethodDelete, "/api/sessions/"+id, "")
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.Sessions.HandleDeleteSession(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	_, c = doJSON(e, http.MethodGet, "/api/sessions/"+id, "")
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.Error(t, h.Sessions.HandleGetSession(c))
}
