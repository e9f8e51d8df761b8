// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types and request/response shapes shared
across the application.

# Domain Types

  - User: an account with unique username and email; owns queues
  - Queue: a named, prioritized container of entries owned by one user
  - QueueEntry: a participant inside a queue with a three-state status
  - ContentOption: a globally shared content tag offered as a suggestion

# Entry Status

An entry's status is always one of waiting, completed, or postponed.
Toggling advances deterministically around the fixed cycle:

	waiting -> completed -> postponed -> waiting

NextStatus implements the cycle; ValidStatus guards the edit boundary so
nothing outside the three values is ever written.

# Wire Types

ReassignRequest is the JSON body of POST /update_participant_queue/{id}.
ToggleStatusResponse and ErrorResponse are the AJAX response bodies; HTML
routes communicate through Flash messages instead.
*/
package models
