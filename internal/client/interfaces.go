// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of the dashboard application.
type Client interface {
	// Run starts the application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end. Run blocks until the user leaves or
// ctx is cancelled.
type UI interface {
	Run(ctx context.Context) error
}
