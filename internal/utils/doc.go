// Package utils provides helpers shared across the client: the resty HTTP
// client wrapper, id generation, unverified access-token parsing, PKCE pairs,
// typed context keys and JSON response writing.
package utils
