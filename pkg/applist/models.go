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

// Package applist holds the Steam app list data model and its on-disk form.
package applist

// Entry is one storefront app. AppIDs are not assumed unique; duplicates
// pass through every stage unchanged.
type Entry struct {
	Name  string `json:"name,omitempty"`
	AppID uint32 `json:"appid"`
}

// AppList is an ordered list of entries. The full catalog and the filtered
// catalog share this shape.
type AppList struct {
	Apps []Entry `json:"apps"`
}

func (l *AppList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Apps)
}

// Append adds a copy of e to the end of the list.
func (l *AppList) Append(e Entry) {
	l.Apps = append(l.Apps, e)
}

// OwnedGame is one row of the owned games report.
type OwnedGame struct {
	Name       string `json:"name,omitempty" csv:"name"`
	InstallDir string `json:"install_dir,omitempty" csv:"install_dir"`
	AppID      uint32 `json:"appid" csv:"appid"`
	Installed  bool   `json:"installed" csv:"installed"`
}
