// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
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

type AccountHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	sessions *session.Manager
}

func NewAccountHandler(db *sql.DB, cfg cliparse.Config, sessions *session.Manager) *AccountHandler {
	return &AccountHandler{db: db, cfg: cfg, sessions: sessions}
}

// Index handles GET /
func (h *AccountHandler) Index(w http.ResponseWriter, r *http.Request) {
	if _, err := h.sessions.UserID(r); err == nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// ShowRegister handles GET /register
func (h *AccountHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, "register.html", struct {
		Flash *models.Flash
	}{flashOf(w, r)})
}

// Register handles POST /register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	email := r.FormValue("email")
	password := r.FormValue("password")

	if username == "" || email == "" || password == "" {
		middleware.SetFlash(w, "danger", "All fields are required.")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	// Duplicate emails get a friendly message instead of a constraint error
	var exists bool
	err := h.db.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", email).Scan(&exists)
	if err != nil {
		slog.Error("failed to check email", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}
	if exists {
		middleware.SetFlash(w, "danger", "Email already registered.")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	userID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate user ID", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO users (id, username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, username, email, hash, time.Now())
	if err != nil {
		// Most likely a username collision
		slog.Error("failed to insert user", "error", err)
		middleware.SetFlash(w, "danger", "Unable to create account.")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	slog.Info("user registered", "user_id", userID, "username", username)

	middleware.SetFlash(w, "success", "Account created successfully! You can now log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// ShowLogin handles GET /login
func (h *AccountHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, "login.html", struct {
		Flash *models.Flash
	}{flashOf(w, r)})
}

// Login handles POST /login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	fail := func() {
		middleware.SetFlash(w, "danger", "Invalid email or password.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}

	if email == "" || password == "" {
		fail()
		return
	}

	var userID, hash string
	err := h.db.QueryRow("SELECT id, password_hash FROM users WHERE email = $1", email).Scan(&userID, &hash)
	if err == sql.ErrNoRows {
		fail()
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	if err := auth.CheckPassword(hash, password); err != nil {
		fail()
		return
	}

	if err := h.sessions.Issue(w, userID); err != nil {
		slog.Error("failed to issue session", "error", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}

	slog.Info("user logged in", "user_id", userID)

	middleware.SetFlash(w, "success", "You have been logged in successfully!")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout handles GET /logout
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
