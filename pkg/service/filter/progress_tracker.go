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

package filter

import (
	"time"

	"github.com/samkit-project/samkit/pkg/helpers/syncutil"
	"github.com/samkit-project/samkit/pkg/storefront"
)

// Snapshot is a copy of the tracker state for renderers.
type Snapshot struct {
	Err         error
	RetryStatus storefront.Status
	Progress
	RetryDelay time.Duration
	Done       bool
}

// Retrying reports whether the entry in flight is waiting out a retry.
func (s Snapshot) Retrying() bool {
	return s.RetryStatus != ""
}

// Percent is the completed fraction in [0, 1].
func (s Snapshot) Percent() float64 {
	if s.Total == 0 {
		if s.Done {
			return 1
		}
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}

// ProgressTracker holds the latest pipeline progress so a renderer can
// poll it from another goroutine.
type ProgressTracker struct {
	finished chan struct{}
	snapshot Snapshot
	mu       syncutil.RWMutex
}

// NewProgressTracker creates a tracker expecting total entries.
func NewProgressTracker(total int) *ProgressTracker {
	return &ProgressTracker{
		snapshot: Snapshot{Progress: Progress{Total: total}},
		finished: make(chan struct{}),
	}
}

// Update records a finished entry. It matches ProgressFunc.
func (pt *ProgressTracker) Update(p Progress) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.snapshot.Progress = p
	pt.snapshot.RetryStatus = ""
	pt.snapshot.RetryDelay = 0
}

// Retry records that the entry in flight is waiting before another
// attempt. It matches storefront.RetryFunc.
func (pt *ProgressTracker) Retry(_ uint32, status storefront.Status, delay time.Duration) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.snapshot.RetryStatus = status
	pt.snapshot.RetryDelay = delay
}

// Finish marks the pipeline as stopped, with err set when it did not
// run to completion. Only the first call has an effect.
func (pt *ProgressTracker) Finish(err error) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if pt.snapshot.Done {
		return
	}
	close(pt.finished)
	pt.snapshot.Done = true
	pt.snapshot.Err = err
	pt.snapshot.RetryStatus = ""
	pt.snapshot.RetryDelay = 0
}

// Finished is closed by the first call to Finish.
func (pt *ProgressTracker) Finished() <-chan struct{} {
	return pt.finished
}

// Get returns a copy of the current state.
func (pt *ProgressTracker) Get() Snapshot {
	pt.mu.RLock()
	defer pt.mu.RUnlock()
	return pt.snapshot
}

// Done reports whether Finish was called.
func (pt *ProgressTracker) Done() bool {
	pt.mu.RLock()
	defer pt.mu.RUnlock()
	return pt.snapshot.Done
}
