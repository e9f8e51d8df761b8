// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import "database/sql"

// canMutate is the ownership predicate for queues and, transitively,
// their entries: only the queue's creator may change them.
func canMutate(actorID, creatorID string) bool {
	return actorID != "" && actorID == creatorID
}

// entryCreator resolves the creator of the queue an entry currently
// belongs to.
func entryCreator(db *sql.DB, entryID string) (string, error) {
	var creatorID string
	err := db.QueryRow(`
		SELECT q.creator_id
		FROM queue_entry e
		JOIN queue q ON e.queue_id = q.id
		WHERE e.id = $1
	`, entryID).Scan(&creatorID)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return creatorID, nil
}
