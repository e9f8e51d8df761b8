// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Queue server.

Quickly Queue is a multi-tenant queue manager: users create prioritized
queues, fill them with participants, and cycle each participant through
waiting → completed → postponed. Every queue has a public read-only view.

# Starting the Server

The server runs with zero configuration against a local sqlite file:

	go run main.go

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... SECRET_KEY=... go run main.go

A .env file in the working directory is loaded at startup.

# Configuration

  - PORT (-p): Server port (default: 8000)
  - DATABASE_URL (-d): sqlite path or postgres connection string
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - SECRET_KEY (-secret-key): session signing secret

DATABASE_URL and SECRET_KEY have insecure development defaults; the
server logs a warning when they are in use.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (accounts, queues, participants, content, public)
  - router: Route definitions using Go 1.22+ routing
  - middleware: logging, auth guard, JSON and flash helpers
  - models: domain and wire types
  - session: signed cookie sessions
  - auth: ID generation and password hashing
  - db: connection, schema, seeding
  - templates: embedded server-rendered pages
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
