// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(duration_ms). The request ID comes from the X-Request-ID header or is
generated, and is echoed back on the response.

# CORS Middleware

Allow requests from any origin:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, true)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies. A missing body or a literal null is reported as
ErrEmptyBody so handlers can reject it before calling the coordinator:

	var teacher models.Teacher
	if err := middleware.ParseJSONBody(r, &teacher); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Teacher data is required.")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
