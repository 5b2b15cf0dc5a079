package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFeedback_Validation(t *testing.T) {
	_, app, _ := setupTestServer(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"Missing name", map[string]any{"email": "a@x.com", "message": "hi"}},
		{"Missing email", map[string]any{"name": "A", "message": "hi"}},
		{"Missing message", map[string]any{"name": "A", "email": "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, app, http.MethodPost, "/api/feedback", tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, "VALIDATION_ERROR", body["code"])
		})
	}
}

func TestFeedback_EndToEnd(t *testing.T) {
	_, app, _ := setupTestServer(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/feedback", map[string]any{
		"name": "A", "email": "a@x.com", "message": "hi",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, body["success"])

	status, items := doJSONList(t, app, http.MethodGet, "/api/feedback", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, items, 1)
	assert.Equal(t, "A", items[0]["name"])
	assert.Equal(t, "hi", items[0]["message"])
	// The date is server-assigned, never taken from the request.
	assert.NotEmpty(t, items[0]["date"])
}

func TestFeedback_DateIsServerAssigned(t *testing.T) {
	_, app, _ := setupTestServer(t)

	status, _ := doJSON(t, app, http.MethodPost, "/api/feedback", map[string]any{
		"name": "A", "email": "a@x.com", "message": "hi",
		"date": "1999-01-01T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, status)

	status, items := doJSONList(t, app, http.MethodGet, "/api/feedback", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, items, 1)
	assert.NotContains(t, items[0]["date"], "1999")
}
