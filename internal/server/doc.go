// Package server runs the HTTP transport of the front-end: startup, graceful
// shutdown on context cancellation, and server timeouts.
package server
