package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tickethub/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPublicTestRouter() chi.Router {
	eventService := &fakeEventService{events: map[int]*models.Event{
		1: {
			ID:     1,
			Title:  "Summer Festival",
			Status: models.StatusPublished,
			Hot:    true,
			TicketTypes: []*models.TicketType{
				{ID: 1, EventID: 1, Name: "GA", Price: 5000, QuantityTotal: 100, QuantitySold: 85},
			},
		},
	}}

	handler := NewPublicHandler(eventService)

	router := chi.NewRouter()
	router.Get("/api/events", handler.ListEvents)
	router.Get("/api/events/{id}", handler.GetEvent)
	router.Get("/api/categories", handler.ListCategories)
	return router
}

func TestPublicHandler_ListEvents(t *testing.T) {
	router := newPublicTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/events?category=music&upcoming=true", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Events []*models.Event `json:"events"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Events, 1)
	assert.True(t, resp.Events[0].Hot)
}

func TestPublicHandler_GetEvent(t *testing.T) {
	router := newPublicTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/events/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var event models.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &event))
	assert.Equal(t, "Summer Festival", event.Title)
	require.Len(t, event.TicketTypes, 1)
	assert.Equal(t, 85, event.TicketTypes[0].QuantitySold)
}

func TestPublicHandler_GetEvent_NotFound(t *testing.T) {
	router := newPublicTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/events/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicHandler_GetEvent_InvalidID(t *testing.T) {
	router := newPublicTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/events/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublicHandler_ListCategories(t *testing.T) {
	router := newPublicTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Categories []*models.Category `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Categories, 1)
	assert.Equal(t, "music", resp.Categories[0].Slug)
}
