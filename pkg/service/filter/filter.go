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

// Package filter narrows the full app list down to games that have
// achievements, one store lookup at a time.
package filter

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/samkit-project/samkit/pkg/applist"
	"github.com/samkit-project/samkit/pkg/helpers"
	"github.com/samkit-project/samkit/pkg/storefront"
)

// Prober classifies a single app. storefront.Client is the production
// implementation.
type Prober interface {
	Probe(ctx context.Context, appID uint32) (storefront.ProbeResult, error)
}

// Progress is reported once per processed entry. Completed counts from 1
// to Total.
type Progress struct {
	Status    storefront.Status `json:"status"`
	Total     int               `json:"total"`
	Completed int               `json:"completed"`
}

type ProgressFunc func(Progress)

type Options struct {
	Clock      clockwork.Clock
	OnProgress ProgressFunc
	// EntryDelay is the pause between two consecutive entries.
	EntryDelay time.Duration
	// Limit caps how many entries from the head of the list are probed.
	// Zero means all of them.
	Limit int
}

// GamesWithAchievements probes every entry of list in order and returns
// the entries the store classifies as games with achievements, in their
// original order. Entries are never probed concurrently.
//
// When ctx is cancelled the entries kept so far are returned together
// with ctx's error.
//
//nolint:gocritic // options copied for immutability
func GamesWithAchievements(
	ctx context.Context,
	list *applist.AppList,
	prober Prober,
	opts Options,
) (*applist.AppList, error) {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	result := &applist.AppList{Apps: []applist.Entry{}}
	var entries []applist.Entry
	if list != nil {
		entries = list.Apps
	}
	if opts.Limit > 0 && opts.Limit < len(entries) {
		entries = entries[:opts.Limit]
	}
	total := len(entries)

	log.Info().Int("total", total).Dur("entry_delay", opts.EntryDelay).Msg("filtering app list")
	start := opts.Clock.Now()

	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return interrupted(result, i, total, err)
		}

		res, err := prober.Probe(ctx, entry.AppID)
		if err != nil {
			return interrupted(result, i, total, err)
		}

		if res.Detail.IsGameWithAchievements() {
			result.Append(entry)
		}

		if opts.OnProgress != nil {
			opts.OnProgress(Progress{Total: total, Completed: i + 1, Status: res.Status})
		}

		if i == total-1 {
			break
		}
		if err := helpers.SleepContext(ctx, opts.Clock, opts.EntryDelay); err != nil {
			return interrupted(result, i+1, total, err)
		}
	}

	log.Info().
		Int("total", total).
		Int("kept", result.Len()).
		Dur("took", opts.Clock.Since(start)).
		Msg("filtering finished")
	return result, nil
}

func interrupted(result *applist.AppList, processed, total int, err error) (*applist.AppList, error) {
	log.Warn().
		Err(err).
		Int("processed", processed).
		Int("total", total).
		Int("kept", result.Len()).
		Msg("filtering interrupted")
	return result, err
}
