package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Avotriniaina240/Urban-Pulse-Backend/models"
)

func TestCreateDiscussionValidation(t *testing.T) {
	ts := newTestServer(t)

	w := ts.request(t, http.MethodPost, "/api/discussions", map[string]interface{}{
		"title": "Transit", "description": "d", "category": "mobility",
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("discussion without content/userId returned %d, want 400", w.Code)
	}
}

func TestDiscussionCreateAndList(t *testing.T) {
	ts := newTestServer(t)
	id, _ := ts.registerAndLogin(t, "u", "a@x.com", "secret1", "")

	w := ts.request(t, http.MethodPost, "/api/discussions", map[string]interface{}{
		"title":       "Transit",
		"description": "Bus lanes downtown",
		"category":    "mobility",
		"content":     "Should we add more bus lanes?",
		"userId":      id,
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("create discussion returned %d: %s", w.Code, w.Body.String())
	}

	w = ts.request(t, http.MethodGet, "/api/discussions", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("list discussions returned %d", w.Code)
	}
	var discussions []models.Discussion
	if err := json.Unmarshal(w.Body.Bytes(), &discussions); err != nil {
		t.Fatalf("failed to decode discussions: %v", err)
	}
	if len(discussions) != 1 || discussions[0].Title != "Transit" {
		t.Fatalf("unexpected discussions: %+v", discussions)
	}
}
