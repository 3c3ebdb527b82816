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
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samkit-project/samkit/pkg/applist"
	"github.com/samkit-project/samkit/pkg/helpers"
	"github.com/samkit-project/samkit/pkg/service/filter"
	"github.com/samkit-project/samkit/pkg/ui/progress"
	"golang.org/x/sync/errgroup"
)

// DownloadFull fetches the whole storefront catalog and saves it.
func (a *App) DownloadFull(ctx context.Context, args []string) error {
	fs := newFlagSet("applist download-full", a.Stderr)
	out := fs.String("o", a.Cfg.AppListFile(), "output file")
	if err := a.parseFlags(fs, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	outPath := helpers.ResolvePath(*out)

	start := a.Clock.Now()
	client := a.storeClient(nil)

	var list *applist.AppList
	fetch := func(ctx context.Context) error {
		var err error
		list, err = client.FetchCatalog(ctx)
		return err //nolint:wrapcheck // wrapped below
	}

	var err error
	if a.Interactive {
		err = progress.RunSpinner(ctx, a.Stderr, "downloading app list", fetch)
	} else {
		err = fetch(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to download app list: %w", err)
	}

	if err := a.Store.SaveList(outPath, list); err != nil {
		return fmt.Errorf("failed to save app list: %w", err)
	}

	log.Info().Int("apps", list.Len()).Str("path", outPath).Msg("app list saved")
	_, _ = fmt.Fprintf(a.Stdout, "saved %d apps to %s\n", list.Len(), outPath)
	_, _ = fmt.Fprintf(a.Stdout, "took: %s\n", a.Clock.Since(start).Round(time.Millisecond))
	return nil
}

// Filter keeps the games with achievements from a saved app list. An
// interrupted run still saves what it kept so far.
func (a *App) Filter(ctx context.Context, args []string) error {
	fs := newFlagSet("applist filter", a.Stderr)
	in := fs.String("i", a.Cfg.AppListFile(), "input app list")
	out := fs.String("o", a.Cfg.FilteredFile(), "output file")
	limit := fs.Int("limit", 0, "only probe the first n entries (0 = all)")
	if err := a.parseFlags(fs, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if *limit < 0 {
		return fmt.Errorf("%w: -limit must not be negative", ErrUsage)
	}
	inPath := helpers.ResolvePath(*in)
	outPath := helpers.ResolvePath(*out)

	list, err := a.Store.LoadList(inPath)
	if err != nil {
		return fmt.Errorf("failed to load app list: %w", err)
	}

	total := list.Len()
	if *limit > 0 && *limit < total {
		total = *limit
	}
	tracker := filter.NewProgressTracker(total)
	client := a.storeClient(tracker.Retry)

	start := a.Clock.Now()
	var (
		kept    *applist.AppList
		pipeErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		kept, pipeErr = filter.GamesWithAchievements(ctx, list, client, filter.Options{
			Clock:      a.Clock,
			OnProgress: tracker.Update,
			EntryDelay: a.Cfg.EntryDelay(),
			Limit:      *limit,
		})
		tracker.Finish(pipeErr)
		return nil
	})
	g.Go(func() error {
		if err := a.render(gctx, tracker, "filtering app list"); err != nil {
			log.Warn().Err(err).Msg("progress display failed")
		}
		return nil
	})
	_ = g.Wait()

	if saveErr := a.Store.SaveList(outPath, kept); saveErr != nil {
		return fmt.Errorf("failed to save filtered list: %w", saveErr)
	}

	_, _ = fmt.Fprintf(a.Stdout, "kept %d of %d apps in %s\n", kept.Len(), total, outPath)
	_, _ = fmt.Fprintf(a.Stdout, "took: %s\n", a.Clock.Since(start).Round(time.Millisecond))

	if pipeErr != nil {
		return fmt.Errorf("filtering interrupted, partial result saved: %w", pipeErr)
	}
	return nil
}
