// Package consultapi is the typed client for the consultation platform's REST
// API. Every request resolves the admin bearer token at call time and every
// failure surfaces as *Error.
package consultapi
