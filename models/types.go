// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Entry status constants. The order of StatusCycle is load-bearing:
// toggling walks it left to right and wraps.
const (
	StatusWaiting   = "waiting"
	StatusCompleted = "completed"
	StatusPostponed = "postponed"
)

var StatusCycle = []string{StatusWaiting, StatusCompleted, StatusPostponed}

// ValidStatus reports whether s is one of the three entry statuses.
func ValidStatus(s string) bool {
	for _, v := range StatusCycle {
		if s == v {
			return true
		}
	}
	return false
}

// NextStatus returns the status following s in the cycle
// waiting -> completed -> postponed -> waiting.
// Unknown values restart the cycle at waiting.
func NextStatus(s string) string {
	for i, v := range StatusCycle {
		if s == v {
			return StatusCycle[(i+1)%len(StatusCycle)]
		}
	}
	return StatusWaiting
}

// Domain types

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

type Queue struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Priority  int       `json:"priority"`
	CreatorID string    `json:"creator_id"`
	CreatedAt time.Time `json:"created_at"`
}

type QueueEntry struct {
	ID        string    `json:"id"`
	QueueID   string    `json:"queue_id"`
	Username  string    `json:"username"`
	Status    string    `json:"status"`
	Content   string    `json:"content"`
	Comment   string    `json:"comment"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

type QueueWithEntries struct {
	Queue   Queue        `json:"queue"`
	Entries []QueueEntry `json:"entries"`
}

type ContentOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Flash is a one-shot user-facing message carried across a redirect.
// Category matches the alert classes used by the pages
// ("success" or "danger").
type Flash struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

// Request types

type ReassignRequest struct {
	QueueID string   `json:"queue_id"`
	Order   []string `json:"order"`
}

// Response types

type ToggleStatusResponse struct {
	Success   bool   `json:"success"`
	NewStatus string `json:"new_status"`
}

type ReassignResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the JSON failure body for AJAX routes.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
