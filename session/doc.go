// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session implements stateless cookie sessions.

A session is an HS256-signed token (github.com/golang-jwt/jwt/v5) carrying
the user ID and an expiry, stored in an HttpOnly cookie. Nothing is kept
server side: login issues a token, logout clears the cookie, and expiry is
enforced by signature verification on every request.

The Manager is constructed from the application secret key; all handlers
downstream of the auth middleware read the resolved user ID off the
request context via UserIDFromContext.
*/
package session
