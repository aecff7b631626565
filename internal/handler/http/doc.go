// Package http implements the bundle publisher's HTTP transport.
//
// It exposes route wiring, request handlers, and middleware for the three
// sync endpoints (/login, /md5sum and /eggs/{name}). Cross-cutting concerns
// such as Basic authentication, request tracing, access logging and response
// compression are handled in this package before requests are delegated to
// the service layer.
package http
