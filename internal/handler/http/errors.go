// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidIndexParam is returned when the "index" query parameter of
// DELETE /delete-event is missing or is not a non-negative integer.
var ErrInvalidIndexParam = errors.New("invalid `index` query parameter")
