// Package middleware holds the HTTP middleware mounted on the REST router.
// Every constructor returns a Middleware, which chi's Router.Use accepts
// directly.
package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler
