// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/charmbracelet/lipgloss"
)

// renderBuildInfoWindow shows the build stamp of the running client as a
// two-column label/value box.
func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Приложение", "BookKeeper"},
		{"Версия", info.BuildVersion()},
		{"Дата сборки", info.BuildDate()},
		{"Коммит", info.BuildCommit()},
	}

	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r[0]))
	}

	lines := make([]string, 0, len(rows)+2)
	for _, r := range rows {
		label := mutedStyle.Width(labelWidth).Render(r[0])
		lines = append(lines, label+"  "+r[1])
	}
	lines = append(lines, "", mutedStyle.Render("Личная библиотека с офлайн-синхронизацией"))

	return renderPage("О ПРОГРАММЕ", overlayBoxStyle.Render(strings.Join(lines, "\n")), "esc: назад")
}
