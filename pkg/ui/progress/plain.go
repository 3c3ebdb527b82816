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
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/samkit-project/samkit/pkg/service/filter"
)

// DefaultPlainInterval is how often RunPlain reports.
const DefaultPlainInterval = 5 * time.Second

// RunPlain writes one line per interval to out while src is running, and
// a final line as soon as it is done. Nothing is written for intervals without
// progress.
func RunPlain(ctx context.Context, out io.Writer, src Source, clock clockwork.Clock, interval time.Duration) error {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if interval <= 0 {
		interval = DefaultPlainInterval
	}

	ticker := clock.NewTicker(interval)
	defer ticker.Stop()

	last := -1
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-src.Finished():
		case <-ticker.Chan():
		}

		snap := src.Get()
		if snap.Done {
			_, err := fmt.Fprintln(out, plainLine(snap))
			return err //nolint:wrapcheck // plain writer error
		}
		if snap.Completed == last && !snap.Retrying() {
			continue
		}
		last = snap.Completed
		if _, err := fmt.Fprintln(out, plainLine(snap)); err != nil {
			return err //nolint:wrapcheck // plain writer error
		}
	}
}

func plainLine(s filter.Snapshot) string {
	line := fmt.Sprintf("progress: %d/%d", s.Completed, s.Total)
	switch {
	case s.Done && s.Err != nil:
		return line + " stopped: " + s.Err.Error()
	case s.Done:
		return line + " done"
	case s.Retrying():
		return fmt.Sprintf("%s %s, waiting %s", line, s.RetryStatus, s.RetryDelay)
	case s.Status != "":
		return line + " " + string(s.Status)
	}
	return line
}
