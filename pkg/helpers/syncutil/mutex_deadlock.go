//go:build deadlock

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

// Package syncutil wraps the sync mutexes so a build with -tags=deadlock swaps
// in lock-order and timeout detection without touching call sites.
package syncutil

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	deadlock "github.com/sasha-s/go-deadlock"
)

// DeadlockEnabled reports whether this build carries the deadlock detector.
const DeadlockEnabled = true

func init() {
	// No lock in samkit is held across network I/O or backoff sleeps, so
	// anything held this long is a bug.
	deadlock.Opts.DeadlockTimeout = 15 * time.Second
	deadlock.Opts.OnPotentialDeadlock = func() {
		log.Error().Msg("potential deadlock detected, aborting")
		os.Exit(2)
	}
}

// Mutex is a go-deadlock mutex in deadlock builds.
type Mutex struct {
	deadlock.Mutex
}

// RWMutex is a go-deadlock reader/writer mutex in deadlock builds.
type RWMutex struct {
	deadlock.RWMutex
}
