// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the dashboard application runtime.
//
// It starts the sync client, runs the terminal dashboard and the optional
// metrics server, and tears everything down when the dashboard exits.
package client
