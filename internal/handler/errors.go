// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when no callback
// address is configured, so there is nothing for the redirect listener to
// serve.
var errNoHandlersAreCreated = errors.New("no handlers are created")
