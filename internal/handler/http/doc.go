// Package http implements the local redirect listener of the notes client.
//
// Magic links and OAuth providers send the browser back to
// http://<callback address>/auth/callback. The handler completes the
// sign-in through the auth service and answers with a small page telling
// the user to return to the terminal. Request tracing and access logging
// are handled by middleware in this package.
package http
