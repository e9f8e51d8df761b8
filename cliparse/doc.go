// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: sqlite file path or PostgreSQL connection string
  - DatabaseType: "sqlite" (default) or "postgres"
  - SecretKey: session signing secret

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-secret-key  Session signing secret

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	SECRET_KEY    → -secret-key

CLI flags take precedence over environment variables.

# Development Fallbacks

Unlike the port, the database URL and secret key carry insecure
development defaults (a local sqlite file and DefaultSecretKey) so the
app runs with zero configuration. A postgres database type with no URL
is still an error. main logs a warning whenever a fallback is in use.
*/
package cliparse
