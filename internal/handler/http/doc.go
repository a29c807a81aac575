// Package http implements the HTTP transport layer of the descriptor server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request bodies are checked against JSON schemas before they reach the
// service layer; cross-cutting concerns such as request tracing, access
// logging and Prometheus instrumentation are handled here as well.
package http
