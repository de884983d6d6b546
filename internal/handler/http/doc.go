// Package http implements the HTTP transport layer of the bookshelf API.
//
// It exposes route wiring, request handlers, and middleware. Tracing, access
// logging, CORS and bearer-token authentication are handled in this package
// before requests are delegated to the service layer.
package http
