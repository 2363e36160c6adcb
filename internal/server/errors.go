// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHTTPHandler      = errors.New("server: no HTTP handler to serve")
	errEmptyListenAddress = errors.New("server: HTTP listen address is empty")
)
