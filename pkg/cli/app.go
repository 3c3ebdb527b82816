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
	"io"

	"github.com/jonboulle/clockwork"
	"github.com/samkit-project/samkit/pkg/applist"
	"github.com/samkit-project/samkit/pkg/config"
	"github.com/samkit-project/samkit/pkg/platforms/shared/steam"
	"github.com/samkit-project/samkit/pkg/platforms/shared/steam/steamclient"
	"github.com/samkit-project/samkit/pkg/service/filter"
	"github.com/samkit-project/samkit/pkg/shared/httpclient"
	"github.com/samkit-project/samkit/pkg/storefront"
	"github.com/samkit-project/samkit/pkg/ui/progress"
)

// OwnershipSession is an open Steam client session.
type OwnershipSession interface {
	steamclient.OwnershipChecker
	Close() error
}

// SessionOpener opens a session against the Steam install in steamDir.
type SessionOpener func(steamDir string) (OwnershipSession, error)

// App carries everything commands need. Fields can be swapped in tests.
type App struct {
	Cfg          *config.Instance
	Store        *applist.Store
	HTTP         *httpclient.Client
	Clock        clockwork.Clock
	Stdout       io.Writer
	Stderr       io.Writer
	OpenSession  SessionOpener
	SteamRunning func(ctx context.Context) bool
	Steam        steam.Options
	StoreOpts    storefront.Options
	Interactive  bool
}

func openSteamSession(steamDir string) (OwnershipSession, error) {
	s, err := steamclient.Open(steamDir)
	if err != nil {
		return nil, err //nolint:wrapcheck // wrapped by the owned command
	}
	return s, nil
}

// NewApp wires the production dependencies from cfg.
func NewApp(cfg *config.Instance, stdout, stderr io.Writer) *App {
	return &App{
		Cfg:          cfg,
		Store:        applist.NewStore(nil),
		HTTP:         httpclient.NewClientFromConfig(cfg),
		Clock:        clockwork.NewRealClock(),
		Stdout:       stdout,
		Stderr:       stderr,
		OpenSession:  openSteamSession,
		SteamRunning: steam.IsSteamRunning,
		Steam:        steam.OptionsFromConfig(cfg),
		StoreOpts:    storefront.OptionsFromConfig(cfg),
		Interactive:  progress.IsTerminal(stderr),
	}
}

func (a *App) storeClient(onRetry storefront.RetryFunc) *storefront.Client {
	opts := a.StoreOpts
	opts.Clock = a.Clock
	opts.OnRetry = onRetry
	return storefront.NewClient(a.HTTP, opts)
}

// render shows tracker progress until the pipeline finishes.
func (a *App) render(ctx context.Context, tracker *filter.ProgressTracker, title string) error {
	if a.Interactive {
		return progress.RunBar(ctx, a.Stderr, tracker, title) //nolint:wrapcheck // display only
	}
	return progress.RunPlain(ctx, a.Stderr, tracker, a.Clock, progress.DefaultPlainInterval) //nolint:wrapcheck // display only
}

func (a *App) parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err //nolint:wrapcheck // handled by caller
		}
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", ErrUsage, fs.Args())
	}
	return nil
}
