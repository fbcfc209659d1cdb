// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires storages, gateways, client services, the redirect listener and
// the session refresh job, then hands the terminal to the TUI for the
// lifetime of the process.
package client
