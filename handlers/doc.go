// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers.

# Handler Groups

  - AccountHandler: registration, login, logout, root redirect
  - QueueHandler: dashboard, queue create/update/delete, manage pages
  - ParticipantHandler: entry CRUD, status toggle, reassign + reorder
  - ContentHandler: global content-option tags
  - PublicHandler: unauthenticated read-only queue views

Each handler is constructed with the database handle and config; nothing
is global. HTML routes answer with a flash message and redirect, AJAX
routes with {success, ...} JSON.

# Authorization

canMutate is the single ownership predicate: a queue (and transitively
its entries) may only be mutated by its creator. Two deliberate
exceptions match the product's behavior: adding a participant only
requires authentication, and content options are global with no owner.
Authorization failures are explicit - a danger flash or a 403 body -
never a silent no-op.
*/
package handlers
