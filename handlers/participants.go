// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/quickly-queue/auth"
	"github.com/danielhkuo/quickly-queue/cliparse"
	"github.com/danielhkuo/quickly-queue/middleware"
	"github.com/danielhkuo/quickly-queue/models"
	"github.com/danielhkuo/quickly-queue/session"
	"github.com/danielhkuo/quickly-queue/templates"
)

type ParticipantHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewParticipantHandler(db *sql.DB, cfg cliparse.Config) *ParticipantHandler {
	return &ParticipantHandler{db: db, cfg: cfg}
}

// AddParticipant handles POST /add_participant
//
// Any authenticated user may add to any queue by id; ownership is only
// required for later mutation.
func (h *ParticipantHandler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	content := r.FormValue("content")
	comment := r.FormValue("comment")
	queueID := r.FormValue("queue_id")

	if username == "" || queueID == "" {
		middleware.SetFlash(w, "danger", "Username and queue are required.")
		http.Redirect(w, r, "/manage_all_queues", http.StatusSeeOther)
		return
	}

	if _, err := getQueue(h.db, queueID); err != nil {
		if err == ErrNotFound {
			middleware.SetFlash(w, "danger", "Queue not found.")
			http.Redirect(w, r, "/manage_all_queues", http.StatusSeeOther)
			return
		}
		slog.Error("failed to query queue", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	entryID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate entry ID", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO queue_entry (id, queue_id, username, status, content, comment, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7)
	`, entryID, queueID, username, models.StatusWaiting, content, comment, time.Now())
	if err != nil {
		slog.Error("failed to insert entry", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	slog.Info("participant added", "entry_id", entryID, "queue_id", queueID)

	middleware.SetFlash(w, "success", "Participant added successfully!")
	http.Redirect(w, r, "/manage_all_queues", http.StatusSeeOther)
}

// DeleteParticipant handles POST /delete_participant/{id}
func (h *ParticipantHandler) DeleteParticipant(w http.ResponseWriter, r *http.Request) {
	userID := session.UserIDFromContext(r.Context())
	entryID := r.PathValue("id")

	entry, err := getEntry(h.db, entryID)
	if err == ErrNotFound {
		middleware.SetFlash(w, "danger", "Participant not found.")
		http.Redirect(w, r, "/manage_all_queues", http.StatusSeeOther)
		return
	}
	if err != nil {
		slog.Error("failed to query entry", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	queue, err := getQueue(h.db, entry.QueueID)
	if err != nil {
		slog.Error("failed to query queue", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	if !canMutate(userID, queue.CreatorID) {
		middleware.SetFlash(w, "danger", "You do not have permission to delete this participant.")
		http.Redirect(w, r, "/manage_all_queues", http.StatusSeeOther)
		return
	}

	if _, err := h.db.Exec("DELETE FROM queue_entry WHERE id = $1", entryID); err != nil {
		slog.Error("failed to delete entry", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	slog.Info("participant deleted", "entry_id", entryID)

	middleware.SetFlash(w, "success", fmt.Sprintf("Participant %q has been removed.", entry.Username))
	http.Redirect(w, r, "/manage_all_queues", http.StatusSeeOther)
}

// ShowParticipant handles GET /edit_participant/{id}
func (h *ParticipantHandler) ShowParticipant(w http.ResponseWriter, r *http.Request) {
	userID := session.UserIDFromContext(r.Context())
	entryID := r.PathValue("id")

	entry, err := getEntry(h.db, entryID)
	if err == ErrNotFound {
		middleware.SetFlash(w, "danger", "Participant not found.")
		http.Redirect(w, r, "/manage_all_queues", http.StatusSeeOther)
		return
	}
	if err != nil {
		slog.Error("failed to query entry", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	queue, err := getQueue(h.db, entry.QueueID)
	if err != nil {
		slog.Error("failed to query queue", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	if !canMutate(userID, queue.CreatorID) {
		middleware.SetFlash(w, "danger", "You do not have permission to edit this participant.")
		http.Redirect(w, r, "/manage_all_queues", http.StatusSeeOther)
		return
	}

	options, err := listContentOptions(h.db)
	if err != nil {
		slog.Error("failed to list content options", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	templates.Render(w, "edit_participant.html", struct {
		Flash          *models.Flash
		Entry          models.QueueEntry
		Statuses       []string
		ContentOptions []models.ContentOption
	}{flashOf(w, r), entry, models.StatusCycle, options})
}

// UpdateParticipant handles POST /edit_participant/{id}
func (h *ParticipantHandler) UpdateParticipant(w http.ResponseWriter, r *http.Request) {
	userID := session.UserIDFromContext(r.Context())
	entryID := r.PathValue("id")

	entry, err := getEntry(h.db, entryID)
	if err == ErrNotFound {
		middleware.SetFlash(w, "danger", "Participant not found.")
		http.Redirect(w, r, "/manage_all_queues", http.StatusSeeOther)
		return
	}
	if err != nil {
		slog.Error("failed to query entry", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	queue, err := getQueue(h.db, entry.QueueID)
	if err != nil {
		slog.Error("failed to query queue", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	if !canMutate(userID, queue.CreatorID) {
		middleware.SetFlash(w, "danger", "You do not have permission to edit this participant.")
		http.Redirect(w, r, "/manage_all_queues", http.StatusSeeOther)
		return
	}

	username := r.FormValue("username")
	status := r.FormValue("status")
	content := r.FormValue("content")
	comment := r.FormValue("comment")

	if username == "" {
		middleware.SetFlash(w, "danger", "Username is required.")
		http.Redirect(w, r, "/edit_participant/"+entryID, http.StatusSeeOther)
		return
	}
	if !models.ValidStatus(status) {
		middleware.SetFlash(w, "danger", "Invalid status.")
		http.Redirect(w, r, "/edit_participant/"+entryID, http.StatusSeeOther)
		return
	}

	_, err = h.db.Exec(`
		UPDATE queue_entry
		SET username = $1, status = $2, content = $3, comment = $4
		WHERE id = $5
	`, username, status, content, comment, entryID)
	if err != nil {
		slog.Error("failed to update entry", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	slog.Info("participant updated", "entry_id", entryID)

	middleware.SetFlash(w, "success", fmt.Sprintf("Participant %q has been updated.", username))
	http.Redirect(w, r, "/manage_all_queues", http.StatusSeeOther)
}

// ToggleStatus handles POST /toggle_status/{id}
func (h *ParticipantHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	userID := session.UserIDFromContext(r.Context())
	entryID := r.PathValue("id")

	entry, err := getEntry(h.db, entryID)
	if err == ErrNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Participant not found.")
		return
	}
	if err != nil {
		slog.Error("failed to query entry", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	creatorID, err := entryCreator(h.db, entryID)
	if err != nil {
		slog.Error("failed to resolve entry owner", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !canMutate(userID, creatorID) {
		middleware.ErrorResponse(w, http.StatusForbidden, "")
		return
	}

	newStatus := models.NextStatus(entry.Status)
	if _, err := h.db.Exec("UPDATE queue_entry SET status = $1 WHERE id = $2", newStatus, entryID); err != nil {
		slog.Error("failed to update status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("status toggled", "entry_id", entryID, "new_status", newStatus)

	middleware.JSONResponse(w, http.StatusOK, models.ToggleStatusResponse{
		Success:   true,
		NewStatus: newStatus,
	})
}

// UpdateParticipantQueue handles POST /update_participant_queue/{id}
//
// Moves an entry to another of the caller's queues, then writes the
// supplied display order: every listed entry that belongs to the target
// queue gets its position set to its index in the list. One transaction
// covers both steps.
func (h *ParticipantHandler) UpdateParticipantQueue(w http.ResponseWriter, r *http.Request) {
	userID := session.UserIDFromContext(r.Context())
	entryID := r.PathValue("id")

	var req models.ReassignRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	newQueue, err := getQueue(h.db, req.QueueID)
	if err == ErrNotFound || (err == nil && !canMutate(userID, newQueue.CreatorID)) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid queue.")
		return
	}
	if err != nil {
		slog.Error("failed to query queue", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	creatorID, err := entryCreator(h.db, entryID)
	if err == ErrNotFound {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid participant.")
		return
	}
	if err != nil {
		slog.Error("failed to resolve entry owner", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !canMutate(userID, creatorID) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid participant.")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	if _, err := tx.Exec("UPDATE queue_entry SET queue_id = $1 WHERE id = $2", req.QueueID, entryID); err != nil {
		slog.Error("failed to reassign entry", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	for index, id := range req.Order {
		// The queue_id guard skips stale ids the client may still hold
		_, err := tx.Exec("UPDATE queue_entry SET position = $1 WHERE id = $2 AND queue_id = $3", index, id, req.QueueID)
		if err != nil {
			slog.Error("failed to reorder entry", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("participant reassigned", "entry_id", entryID, "queue_id", req.QueueID)

	middleware.JSONResponse(w, http.StatusOK, models.ReassignResponse{Success: true})
}
