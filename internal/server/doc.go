// Package server runs the local redirect listener of the notes client.
//
// The listener binds the configured callback address, serves the chi router
// built by the http handler and shuts down gracefully when its context is
// cancelled or Stop is called.
package server
