// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-queue/cliparse"
	"github.com/danielhkuo/quickly-queue/models"
	"github.com/danielhkuo/quickly-queue/templates"
)

// PublicHandler serves the unauthenticated read-only views.
type PublicHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewPublicHandler(db *sql.DB, cfg cliparse.Config) *PublicHandler {
	return &PublicHandler{db: db, cfg: cfg}
}

// PublicQueue handles GET /public?queue_id=
func (h *PublicHandler) PublicQueue(w http.ResponseWriter, r *http.Request) {
	queueID := r.URL.Query().Get("queue_id")
	if queueID == "" {
		http.Error(w, "Please provide a queue ID.", http.StatusBadRequest)
		return
	}

	queue, err := getQueue(h.db, queueID)
	if err == ErrNotFound {
		http.Error(w, "Queue not found.", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to query queue", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	entries, err := listEntries(h.db, queueID)
	if err != nil {
		slog.Error("failed to list entries", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	templates.Render(w, "public_table.html", struct {
		Queue   models.Queue
		Entries []models.QueueEntry
	}{queue, entries})
}

// PublicAll handles GET /public_all/{user_id}
func (h *PublicHandler) PublicAll(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")

	user, err := getUser(h.db, userID)
	if err == ErrNotFound {
		http.Error(w, "User not found.", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	queues, err := listQueuesWithEntries(h.db, user.ID)
	if err != nil {
		slog.Error("failed to list queues", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	templates.Render(w, "public_all.html", struct {
		User   models.User
		Queues []models.QueueWithEntries
	}{user, queues})
}
