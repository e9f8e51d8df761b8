// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-queue/auth"
	"github.com/danielhkuo/quickly-queue/cliparse"
	"github.com/danielhkuo/quickly-queue/middleware"
)

// ContentHandler manages the global content-option tags. Options are
// shared by every user and deliberately unscoped: any authenticated user
// may add or remove them.
type ContentHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewContentHandler(db *sql.DB, cfg cliparse.Config) *ContentHandler {
	return &ContentHandler{db: db, cfg: cfg}
}

// AddContentOption handles POST /add_content_option
func (h *ContentHandler) AddContentOption(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("new_content")
	if name == "" {
		middleware.SetFlash(w, "danger", "Content option name is required.")
		http.Redirect(w, r, "/manage_all_queues", http.StatusSeeOther)
		return
	}

	var exists bool
	err := h.db.QueryRow("SELECT EXISTS(SELECT 1 FROM content_option WHERE name = $1)", name).Scan(&exists)
	if err != nil {
		slog.Error("failed to check content option", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}
	if exists {
		middleware.SetFlash(w, "danger", "This content option already exists.")
		http.Redirect(w, r, "/manage_all_queues", http.StatusSeeOther)
		return
	}

	optionID, err := auth.GenerateID(12)
	if err != nil {
		slog.Error("failed to generate option ID", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	if _, err := h.db.Exec("INSERT INTO content_option (id, name) VALUES ($1, $2)", optionID, name); err != nil {
		slog.Error("failed to insert content option", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	slog.Info("content option added", "option_id", optionID, "name", name)

	middleware.SetFlash(w, "success", fmt.Sprintf("Content option %q added successfully.", name))
	http.Redirect(w, r, "/manage_all_queues", http.StatusSeeOther)
}

// DeleteContentOption handles POST /delete_content_option/{id}
func (h *ContentHandler) DeleteContentOption(w http.ResponseWriter, r *http.Request) {
	optionID := r.PathValue("id")

	var name string
	err := h.db.QueryRow("SELECT name FROM content_option WHERE id = $1", optionID).Scan(&name)
	if err == sql.ErrNoRows {
		middleware.SetFlash(w, "danger", "Content option not found.")
		http.Redirect(w, r, "/manage_all_queues", http.StatusSeeOther)
		return
	}
	if err != nil {
		slog.Error("failed to query content option", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	if _, err := h.db.Exec("DELETE FROM content_option WHERE id = $1", optionID); err != nil {
		slog.Error("failed to delete content option", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	slog.Info("content option deleted", "option_id", optionID, "name", name)

	middleware.SetFlash(w, "success", fmt.Sprintf("Content option %q has been removed.", name))
	http.Redirect(w, r, "/manage_all_queues", http.StatusSeeOther)
}
