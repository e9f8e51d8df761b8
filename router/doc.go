// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires URL patterns to handlers using Go 1.22+ routing.

Routes split into three tiers:

  - open: register, login, the public read-only views, health check
  - protected: everything that reads or mutates a user's own data,
    wrapped in the auth middleware
  - AJAX: toggle_status and update_participant_queue, also protected,
    answering JSON instead of redirects

NewRouter constructs every handler with the shared database handle and
config and returns the fully-wired mux; main just serves it.
*/
package router
