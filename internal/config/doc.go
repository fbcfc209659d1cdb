// Package config loads, merges and validates the notes client configuration.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// [GetClientConfig] serves the TUI binary, [LoadClientConfig] serves binaries
// that own their command line.
package config
