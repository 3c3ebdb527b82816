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

package steam

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/process"
)

// steamProcessNames are the client executables on each platform, lower
// case and without extension.
var steamProcessNames = map[string]struct{}{
	"steam":     {},
	"steam_osx": {},
}

func isSteamProcessName(name string) bool {
	name = strings.ToLower(filepath.Base(name))
	name = strings.TrimSuffix(name, ".exe")
	_, ok := steamProcessNames[name]
	return ok
}

// IsSteamRunning reports whether a Steam client process is running. A
// failure to list processes counts as not running.
func IsSteamRunning(ctx context.Context) bool {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("failed to list processes")
		return false
	}

	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if isSteamProcessName(name) {
			log.Debug().Int32("pid", p.Pid).Str("name", name).Msg("found steam client process")
			return true
		}
	}
	return false
}
