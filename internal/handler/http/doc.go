// Package http implements the JSON API of the front-end.
//
// It wires the chi router, the request middleware (tracing, access logging,
// compression, rate limiting, session resolution) and the handlers that turn
// requests into service calls. Feed pages are answered as JSON, or as Atom
// when the request carries output=atom.
package http
