// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/mirunaCalugar/Home-Assistant-Frontend/models"
)

const appName = "Home Dashboard"

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: " + appName + "\n")
	b.WriteString("Version: " + info.BuildVersion() + "\n")
	b.WriteString("Date: " + info.BuildDate() + "\n")
	b.WriteString("Commit: " + info.BuildCommit())

	return renderPage("ABOUT", b.String(), "esc: back")
}
