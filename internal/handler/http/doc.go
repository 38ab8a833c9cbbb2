// Package http implements the HTTP transport layer of the account API.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// access logging, and session authentication are handled in this package
// before requests are delegated to the service layer. Every error response
// has the shape {"error": "<message>"}.
package http
