// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Logging

WithLogging wraps a handler with structured request/completion logging;
each request gets a random request ID so the two lines correlate.

# Authentication

RequireAuth guards a route: it verifies the session cookie, places the
user ID on the request context (session.UserIDFromContext retrieves it),
and redirects anonymous requests to /login.

# Responses

JSONResponse and ErrorResponse write the AJAX bodies; ErrorResponse always
carries success:false. ParseJSONBody decodes a JSON request body.

# Flash Messages

HTML routes report outcomes as one-shot flash messages riding a cookie:
SetFlash before a redirect, PopFlash when rendering the next page.
*/
package middleware
