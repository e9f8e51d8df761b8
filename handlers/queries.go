// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/danielhkuo/quickly-queue/middleware"
	"github.com/danielhkuo/quickly-queue/models"
)

// ErrNotFound marks a lookup whose target row does not exist.
var ErrNotFound = errors.New("not found")

func getUser(db *sql.DB, userID string) (models.User, error) {
	var u models.User
	err := db.QueryRow(`
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE id = $1
	`, userID).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

func getQueue(db *sql.DB, queueID string) (models.Queue, error) {
	var q models.Queue
	err := db.QueryRow(`
		SELECT id, name, priority, creator_id, created_at
		FROM queue
		WHERE id = $1
	`, queueID).Scan(&q.ID, &q.Name, &q.Priority, &q.CreatorID, &q.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Queue{}, ErrNotFound
	}
	if err != nil {
		return models.Queue{}, err
	}
	return q, nil
}

func getEntry(db *sql.DB, entryID string) (models.QueueEntry, error) {
	var e models.QueueEntry
	err := db.QueryRow(`
		SELECT id, queue_id, username, status, content, comment, position, created_at
		FROM queue_entry
		WHERE id = $1
	`, entryID).Scan(&e.ID, &e.QueueID, &e.Username, &e.Status, &e.Content, &e.Comment, &e.Position, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return models.QueueEntry{}, ErrNotFound
	}
	if err != nil {
		return models.QueueEntry{}, err
	}
	return e, nil
}

// listQueues returns a user's queues ordered by ascending priority.
// Ties keep insertion order.
func listQueues(db *sql.DB, ownerID string) ([]models.Queue, error) {
	rows, err := db.Query(`
		SELECT id, name, priority, creator_id, created_at
		FROM queue
		WHERE creator_id = $1
		ORDER BY priority, created_at
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	queues := []models.Queue{}
	for rows.Next() {
		var q models.Queue
		if err := rows.Scan(&q.ID, &q.Name, &q.Priority, &q.CreatorID, &q.CreatedAt); err != nil {
			return nil, err
		}
		queues = append(queues, q)
	}
	return queues, rows.Err()
}

// listEntries returns a queue's entries in display order: the position
// written by reorder requests, then insertion order.
func listEntries(db *sql.DB, queueID string) ([]models.QueueEntry, error) {
	rows, err := db.Query(`
		SELECT id, queue_id, username, status, content, comment, position, created_at
		FROM queue_entry
		WHERE queue_id = $1
		ORDER BY position, created_at
	`, queueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.QueueEntry{}
	for rows.Next() {
		var e models.QueueEntry
		if err := rows.Scan(&e.ID, &e.QueueID, &e.Username, &e.Status, &e.Content, &e.Comment, &e.Position, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func listQueuesWithEntries(db *sql.DB, ownerID string) ([]models.QueueWithEntries, error) {
	queues, err := listQueues(db, ownerID)
	if err != nil {
		return nil, err
	}

	result := make([]models.QueueWithEntries, 0, len(queues))
	for _, q := range queues {
		entries, err := listEntries(db, q.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, models.QueueWithEntries{Queue: q, Entries: entries})
	}
	return result, nil
}

func listContentOptions(db *sql.DB) ([]models.ContentOption, error) {
	rows, err := db.Query("SELECT id, name FROM content_option ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := []models.ContentOption{}
	for rows.Next() {
		var opt models.ContentOption
		if err := rows.Scan(&opt.ID, &opt.Name); err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	return options, rows.Err()
}

// flashOf pops the pending flash message for the page being rendered.
func flashOf(w http.ResponseWriter, r *http.Request) *models.Flash {
	flash, ok := middleware.PopFlash(w, r)
	if !ok {
		return nil
	}
	return &flash
}
