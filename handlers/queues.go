// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/quickly-queue/auth"
	"github.com/danielhkuo/quickly-queue/cliparse"
	"github.com/danielhkuo/quickly-queue/middleware"
	"github.com/danielhkuo/quickly-queue/models"
	"github.com/danielhkuo/quickly-queue/session"
	"github.com/danielhkuo/quickly-queue/templates"
)

type QueueHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewQueueHandler(db *sql.DB, cfg cliparse.Config) *QueueHandler {
	return &QueueHandler{db: db, cfg: cfg}
}

// Dashboard handles GET /dashboard
func (h *QueueHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID := session.UserIDFromContext(r.Context())

	queues, err := listQueues(h.db, userID)
	if err != nil {
		slog.Error("failed to list queues", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	templates.Render(w, "dashboard.html", struct {
		Flash  *models.Flash
		Queues []models.Queue
	}{flashOf(w, r), queues})
}

// ShowCreateQueue handles GET /create_queue
func (h *QueueHandler) ShowCreateQueue(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, "create_queue.html", struct {
		Flash *models.Flash
	}{flashOf(w, r)})
}

// CreateQueue handles POST /create_queue
func (h *QueueHandler) CreateQueue(w http.ResponseWriter, r *http.Request) {
	userID := session.UserIDFromContext(r.Context())
	name := r.FormValue("name")

	if name == "" {
		middleware.SetFlash(w, "danger", "Queue name is required.")
		http.Redirect(w, r, "/create_queue", http.StatusSeeOther)
		return
	}

	priority, err := strconv.Atoi(r.FormValue("priority"))
	if err != nil {
		middleware.SetFlash(w, "danger", "Priority must be a whole number.")
		http.Redirect(w, r, "/create_queue", http.StatusSeeOther)
		return
	}

	queueID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate queue ID", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO queue (id, name, priority, creator_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, queueID, name, priority, userID, time.Now())
	if err != nil {
		slog.Error("failed to insert queue", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	slog.Info("queue created", "queue_id", queueID, "creator_id", userID)

	middleware.SetFlash(w, "success", fmt.Sprintf("Queue %q created successfully!", name))
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// DeleteQueue handles GET /delete_queue/{id}
func (h *QueueHandler) DeleteQueue(w http.ResponseWriter, r *http.Request) {
	userID := session.UserIDFromContext(r.Context())
	queueID := r.PathValue("id")

	queue, err := getQueue(h.db, queueID)
	if err == ErrNotFound {
		middleware.SetFlash(w, "danger", "Queue not found.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	if err != nil {
		slog.Error("failed to query queue", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	if !canMutate(userID, queue.CreatorID) {
		middleware.SetFlash(w, "danger", "You do not have permission to delete this queue.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	// Queue and its entries go in one transaction so no orphans survive
	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM queue_entry WHERE queue_id = $1", queueID); err != nil {
		slog.Error("failed to delete queue entries", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}
	if _, err := tx.Exec("DELETE FROM queue WHERE id = $1", queueID); err != nil {
		slog.Error("failed to delete queue", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	slog.Info("queue deleted", "queue_id", queueID, "creator_id", userID)

	middleware.SetFlash(w, "success", fmt.Sprintf("Queue %q deleted successfully!", queue.Name))
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// ShowQueue handles GET /manage_queue/{id}
func (h *QueueHandler) ShowQueue(w http.ResponseWriter, r *http.Request) {
	userID := session.UserIDFromContext(r.Context())
	queueID := r.PathValue("id")

	queue, err := getQueue(h.db, queueID)
	if err == ErrNotFound {
		middleware.SetFlash(w, "danger", "Queue not found.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	if err != nil {
		slog.Error("failed to query queue", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	if !canMutate(userID, queue.CreatorID) {
		middleware.SetFlash(w, "danger", "You do not have permission to manage this queue.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	entries, err := listEntries(h.db, queueID)
	if err != nil {
		slog.Error("failed to list entries", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	templates.Render(w, "manage_queue.html", struct {
		Flash   *models.Flash
		Queue   models.Queue
		Entries []models.QueueEntry
	}{flashOf(w, r), queue, entries})
}

// UpdateQueue handles POST /manage_queue/{id}
func (h *QueueHandler) UpdateQueue(w http.ResponseWriter, r *http.Request) {
	userID := session.UserIDFromContext(r.Context())
	queueID := r.PathValue("id")

	queue, err := getQueue(h.db, queueID)
	if err == ErrNotFound {
		middleware.SetFlash(w, "danger", "Queue not found.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	if err != nil {
		slog.Error("failed to query queue", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	if !canMutate(userID, queue.CreatorID) {
		middleware.SetFlash(w, "danger", "You do not have permission to manage this queue.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	name := r.FormValue("name")
	if name == "" {
		middleware.SetFlash(w, "danger", "Queue name is required.")
		http.Redirect(w, r, "/manage_queue/"+queueID, http.StatusSeeOther)
		return
	}
	priority, err := strconv.Atoi(r.FormValue("priority"))
	if err != nil {
		middleware.SetFlash(w, "danger", "Priority must be a whole number.")
		http.Redirect(w, r, "/manage_queue/"+queueID, http.StatusSeeOther)
		return
	}

	_, err = h.db.Exec("UPDATE queue SET name = $1, priority = $2 WHERE id = $3", name, priority, queueID)
	if err != nil {
		slog.Error("failed to update queue", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	slog.Info("queue updated", "queue_id", queueID)

	middleware.SetFlash(w, "success", fmt.Sprintf("Queue %q updated successfully!", name))
	http.Redirect(w, r, "/manage_queue/"+queueID, http.StatusSeeOther)
}

// ManageAllQueues handles GET /manage_all_queues
func (h *QueueHandler) ManageAllQueues(w http.ResponseWriter, r *http.Request) {
	userID := session.UserIDFromContext(r.Context())

	queues, err := listQueuesWithEntries(h.db, userID)
	if err != nil {
		slog.Error("failed to list queues", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	options, err := listContentOptions(h.db)
	if err != nil {
		slog.Error("failed to list content options", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	templates.Render(w, "manage_all_queues.html", struct {
		Flash          *models.Flash
		Queues         []models.QueueWithEntries
		ContentOptions []models.ContentOption
	}{flashOf(w, r), queues, options})
}
