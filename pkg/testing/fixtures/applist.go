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

package fixtures

import "github.com/samkit-project/samkit/pkg/applist"

// SmallAppList mixes games, DLC and a tool.
var SmallAppList = applist.AppList{
	Apps: []applist.Entry{
		{AppID: 10, Name: "Counter-Strike"},
		{AppID: 20, Name: "Team Fortress Classic"},
		{AppID: 220, Name: "Half-Life 2"},
		{AppID: 228980, Name: "Steamworks Common Redistributables"},
		{AppID: 323170, Name: "Half-Life 2: Soundtrack"},
	},
}

// CloneAppList returns a deep copy so tests can mutate fixtures freely.
func CloneAppList(list *applist.AppList) *applist.AppList {
	apps := make([]applist.Entry, len(list.Apps))
	copy(apps, list.Apps)
	return &applist.AppList{Apps: apps}
}
