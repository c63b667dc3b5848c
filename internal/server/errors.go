// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	ErrNoHandler = errors.New("no handler is provided")
	ErrNoAddress = errors.New("no listen address is provided")
)
