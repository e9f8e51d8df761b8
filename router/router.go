// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quickly-queue/cliparse"
	"github.com/danielhkuo/quickly-queue/handlers"
	"github.com/danielhkuo/quickly-queue/middleware"
	"github.com/danielhkuo/quickly-queue/session"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	sessions := session.NewManager(cfg.SecretKey)

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(db, cfg, sessions)
	queueHandler := handlers.NewQueueHandler(db, cfg)
	participantHandler := handlers.NewParticipantHandler(db, cfg)
	contentHandler := handlers.NewContentHandler(db, cfg)
	publicHandler := handlers.NewPublicHandler(db, cfg)

	// Routes behind a session
	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAuth(sessions, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts and sessions
	mux.HandleFunc("GET /{$}", middleware.WithLogging(accountHandler.Index))
	mux.HandleFunc("GET /register", middleware.WithLogging(accountHandler.ShowRegister))
	mux.HandleFunc("POST /register", middleware.WithLogging(accountHandler.Register))
	mux.HandleFunc("GET /login", middleware.WithLogging(accountHandler.ShowLogin))
	mux.HandleFunc("POST /login", middleware.WithLogging(accountHandler.Login))
	mux.HandleFunc("GET /logout", protected(accountHandler.Logout))

	// Queue management
	mux.HandleFunc("GET /dashboard", protected(queueHandler.Dashboard))
	mux.HandleFunc("GET /create_queue", protected(queueHandler.ShowCreateQueue))
	mux.HandleFunc("POST /create_queue", protected(queueHandler.CreateQueue))
	mux.HandleFunc("GET /delete_queue/{id}", protected(queueHandler.DeleteQueue))
	mux.HandleFunc("GET /manage_queue/{id}", protected(queueHandler.ShowQueue))
	mux.HandleFunc("POST /manage_queue/{id}", protected(queueHandler.UpdateQueue))
	mux.HandleFunc("GET /manage_all_queues", protected(queueHandler.ManageAllQueues))

	// Participants
	mux.HandleFunc("POST /add_participant", protected(participantHandler.AddParticipant))
	mux.HandleFunc("POST /delete_participant/{id}", protected(participantHandler.DeleteParticipant))
	mux.HandleFunc("GET /edit_participant/{id}", protected(participantHandler.ShowParticipant))
	mux.HandleFunc("POST /edit_participant/{id}", protected(participantHandler.UpdateParticipant))
	mux.HandleFunc("POST /toggle_status/{id}", protected(participantHandler.ToggleStatus))
	mux.HandleFunc("POST /update_participant_queue/{id}", protected(participantHandler.UpdateParticipantQueue))

	// Content options
	mux.HandleFunc("POST /add_content_option", protected(contentHandler.AddContentOption))
	mux.HandleFunc("POST /delete_content_option/{id}", protected(contentHandler.DeleteContentOption))

	// Public read-only views
	mux.HandleFunc("GET /public", middleware.WithLogging(publicHandler.PublicQueue))
	mux.HandleFunc("GET /public_all/{user_id}", middleware.WithLogging(publicHandler.PublicAll))

	return mux
}
