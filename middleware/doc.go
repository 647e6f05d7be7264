// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	r.HandleFunc("/api/projects", middleware.WithLogging(logger, h.List)).Methods("GET")

Logs request start at debug level (remote) and completion (status,
duration_ms), tagged with the request ID, method and path.

# Request IDs

RequestID reuses an incoming X-Request-ID header or generates a UUID, stores
it in the request context and echoes it on the response:

	id := middleware.RequestIDFrom(r.Context())

# Panic Recovery

Recover logs the panic with a stack trace and answers 500.

# CORS Middleware

Enable cross-origin requests for the front end:

	r.Use(middleware.CORS(cfg.CORSOrigin))

With "*" the request Origin is reflected. Allows methods GET, POST, OPTIONS
with headers Content-Type and X-Request-ID.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusConflict, models.CodeDuplicate, "message")
	middleware.FieldErrorResponse(w, "project_no", "Project No is required")

Parse JSON request bodies:

	var form validation.ProjectForm
	if err := middleware.ParseJSONBody(r, &form); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidJSON, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Logged with each request.
*/
package middleware
