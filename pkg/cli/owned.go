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

package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/samkit-project/samkit/pkg/applist"
	"github.com/samkit-project/samkit/pkg/helpers"
	"github.com/samkit-project/samkit/pkg/platforms/shared/steam"
	"github.com/samkit-project/samkit/pkg/platforms/shared/steam/steamclient"
	"github.com/samkit-project/samkit/pkg/ui/progress"
)

var (
	// ErrSteamNotFound is returned when no Steam install can be located.
	ErrSteamNotFound = errors.New("steam install not found")
	// ErrSteamNotRunning explains a failed session when no client is up.
	ErrSteamNotRunning = errors.New("steam client is not running")
)

// Owned checks a saved list against the logged in Steam account and
// prints the owned titles.
func (a *App) Owned(ctx context.Context, args []string) error {
	fs := newFlagSet("owned", a.Stderr)
	in := fs.String("i", a.Cfg.FilteredFile(), "input app list")
	out := fs.String("o", "", "also write the owned games to this file")
	steamDir := fs.String("steam-dir", "", "Steam install directory")
	if err := a.parseFlags(fs, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	list, err := a.Store.LoadList(helpers.ResolvePath(*in))
	if err != nil {
		return fmt.Errorf("failed to load app list: %w", err)
	}

	opts := a.Steam
	if *steamDir != "" {
		opts.InstallDir = *steamDir
	}
	dir := steam.FindSteamDir(opts)
	if info, statErr := os.Stat(dir); dir == "" || statErr != nil || !info.IsDir() {
		return fmt.Errorf("%w: %q", ErrSteamNotFound, dir)
	}
	log.Info().Str("dir", dir).Msg("using steam install")

	session, err := a.OpenSession(dir)
	if err != nil {
		if a.SteamRunning != nil && !a.SteamRunning(ctx) {
			return fmt.Errorf("failed to open steam client session: %w: %w", ErrSteamNotRunning, err)
		}
		return fmt.Errorf("failed to open steam client session: %w", err)
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close steam client session")
		}
	}()

	owned, err := steamclient.FilterOwned(ctx, session, list)
	if err != nil {
		return fmt.Errorf("ownership check failed: %w", err)
	}

	games := ownedGames(owned, installedApps(dir))

	_, _ = fmt.Fprintln(a.Stdout, progress.OwnedTable(games))
	_, _ = fmt.Fprintf(a.Stdout, "owned %d of %d apps\n", len(games), list.Len())

	if *out != "" {
		outPath := helpers.ResolvePath(*out)
		if err := a.Store.SaveOwned(outPath, games); err != nil {
			return fmt.Errorf("failed to save owned games: %w", err)
		}
		_, _ = fmt.Fprintf(a.Stdout, "saved owned games to %s\n", outPath)
	}
	return nil
}

// installedApps is best effort: an unreadable library only loses the
// install column.
func installedApps(steamDir string) map[uint32]steam.AppInfo {
	appsDir := steam.FindSteamAppsDir(steamDir)
	apps, err := steam.InstalledApps(appsDir)
	if err != nil {
		log.Warn().Err(err).Str("dir", appsDir).Msg("cannot scan installed apps")
		return nil
	}
	return apps
}

func ownedGames(owned *applist.AppList, installed map[uint32]steam.AppInfo) []applist.OwnedGame {
	games := make([]applist.OwnedGame, 0, owned.Len())
	for _, e := range owned.Apps {
		g := applist.OwnedGame{AppID: e.AppID, Name: e.Name}
		if info, ok := installed[e.AppID]; ok {
			g.Installed = true
			g.InstallDir = info.InstallDir
			if g.Name == "" {
				g.Name = info.Name
			}
		}
		games = append(games, g)
	}
	return games
}
