// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Engines

Open selects the driver from the config: modernc.org/sqlite for local and
test use, lib/pq for postgres deployments. The schema and every query in
the application are written in the common subset both engines accept
(TEXT/INTEGER columns, $N placeholders, CURRENT_TIMESTAMP defaults).

# Schema

CreateSchema is idempotent (CREATE TABLE IF NOT EXISTS). Tables:

  - users: accounts with unique username and email
  - queue: prioritized queues, each owned by a user
  - queue_entry: participants with a constrained three-value status
  - content_option: globally unique suggestion tags

SeedContentOptions inserts the stock suggestion tags on startup when they
are missing.
*/
package db
