// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identifier generation and password hashing.

# Identifiers

GenerateID produces cryptographically random hex IDs. Every row in the
database (users, queues, entries, content options) is keyed by one, so IDs
are unguessable and there is no serial counter to coordinate across
database engines.

# Passwords

Passwords are hashed with bcrypt before storage and verified with
CheckPassword; plaintext is never persisted or compared directly.
Verification failures collapse to ErrInvalidCredentials so callers cannot
distinguish a bad password from a malformed hash.
*/
package auth
