// Package http implements the HTTP transport layer of the application.
// It provides middleware and route handlers for the REST API.
// Authentication and request logging are handled at this layer before
// requests are forwarded to the service layer.
package http
