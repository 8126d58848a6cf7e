// Package timeouts defines shared timeout constants used across the console.
// Centralizing these values prevents drift between the HTTP surface and the
// outbound API client.
package timeouts

import "time"

// APIRequest caps the time allowed for a single call from the console to the
// consultation REST API.
const APIRequest = 10 * time.Second

// Dashboard caps the joined fan-out of dashboard fetches.
const Dashboard = 15 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
