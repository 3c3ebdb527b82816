// SAMKit
// Copyright (c) 2026 The SAMKit Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of SAMKit.
//
// SAMKit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SAMKit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with SAMKit.  If not, see <http://www.gnu.org/licenses/>.

package progress

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samkit-project/samkit/pkg/applist"
)

// OwnedTable renders owned games as a bordered table.
func OwnedTable(games []applist.OwnedGame) string {
	rows := make([][]string, 0, len(games))
	for _, g := range games {
		installed := "no"
		if g.Installed {
			installed = "yes"
		}
		rows = append(rows, []string{strconv.FormatUint(uint64(g.AppID), 10), g.Name, installed})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(DimStyle).
		Headers("APPID", "NAME", "INSTALLED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return style.Inherit(TitleStyle)
			case col == 0:
				return style.Inherit(AccentStyle).Align(lipgloss.Right)
			case col == 2 && row >= 0 && row < len(games) && games[row].Installed:
				return style.Inherit(SuccessStyle)
			}
			return style
		})

	return t.String()
}
