// Package timeouts defines shared timeout constants for the web service.
// Centralizing these values keeps the durations discoverable and prevents
// drift between the HTTP server and outbound collaborator calls.
package timeouts

import "time"

// APIRequest caps the time allowed for a single backend API call made on
// behalf of a browser request.
const APIRequest = 5 * time.Second

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
