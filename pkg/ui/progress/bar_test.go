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
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/samkit-project/samkit/pkg/applist"
	"github.com/samkit-project/samkit/pkg/helpers/syncutil"
	"github.com/samkit-project/samkit/pkg/service/filter"
	"github.com/samkit-project/samkit/pkg/storefront"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lockedBuffer struct {
	buf bytes.Buffer
	mu  syncutil.Mutex
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p) //nolint:wrapcheck // test buffer
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestBarModel_TickPollsSource(t *testing.T) {
	t.Parallel()

	tracker := filter.NewProgressTracker(4)
	m := NewBarModel(tracker, "Filtering")
	require.NotNil(t, m.Init())

	tracker.Update(filter.Progress{Total: 4, Completed: 1, Status: storefront.StatusOK})
	updated, cmd := m.Update(tickMsg(time.Now()))
	require.NotNil(t, cmd)

	view := updated.View()
	assert.Contains(t, view, "Filtering")
	assert.Contains(t, view, "1/4")
	assert.Contains(t, view, "last: ok")
}

func TestBarModel_QuitsWhenDone(t *testing.T) {
	t.Parallel()

	tracker := filter.NewProgressTracker(2)
	tracker.Update(filter.Progress{Total: 2, Completed: 2, Status: storefront.StatusOK})
	tracker.Finish(nil)

	m := NewBarModel(tracker, "Filtering")
	updated, cmd := m.Update(tickMsg(time.Now()))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Contains(t, updated.View(), "done")
}

func TestBarModel_WindowResize(t *testing.T) {
	t.Parallel()

	m := NewBarModel(filter.NewProgressTracker(1), "x")
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.Nil(t, cmd)
	assert.Equal(t, 10, updated.(BarModel).bar.Width)

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 500, Height: 10})
	assert.Equal(t, barMaxWidth, updated.(BarModel).bar.Width)
}

func TestStatusLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
		snap filter.Snapshot
	}{
		{name: "starting", snap: filter.Snapshot{}, want: "starting"},
		{
			name: "rate limited",
			snap: filter.Snapshot{RetryStatus: storefront.StatusRateLimited, RetryDelay: 2 * time.Minute},
			want: "rate limited, waiting 2m0s",
		},
		{
			name: "gateway",
			snap: filter.Snapshot{RetryStatus: storefront.StatusGatewayError, RetryDelay: 500 * time.Millisecond},
			want: "gateway_error, retrying in 500ms",
		},
		{name: "stopped", snap: filter.Snapshot{Done: true, Err: context.Canceled}, want: "stopped: context canceled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, statusLine(tt.snap), tt.want)
		})
	}
}

func TestRunPlain(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	tracker := filter.NewProgressTracker(3)
	out := &lockedBuffer{}

	errCh := make(chan error, 1)
	go func() {
		errCh <- RunPlain(context.Background(), out, tracker, clock, time.Second)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	step := func() {
		require.NoError(t, clock.BlockUntilContext(ctx, 1))
		clock.Advance(time.Second)
	}

	tracker.Update(filter.Progress{Total: 3, Completed: 1, Status: storefront.StatusNoData})
	step()
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "progress: 1/3 no_data")
	}, 5*time.Second, 5*time.Millisecond)

	tracker.Update(filter.Progress{Total: 3, Completed: 3, Status: storefront.StatusOK})
	tracker.Finish(nil)

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("plain reporter did not stop")
	}
	assert.Contains(t, out.String(), "progress: 3/3 done")
}

func TestRunPlain_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunPlain(ctx, &lockedBuffer{}, filter.NewProgressTracker(1), clockwork.NewFakeClock(), time.Second)
	require.NoError(t, err)
}

func TestPlainLine_Retry(t *testing.T) {
	t.Parallel()

	line := plainLine(filter.Snapshot{
		Progress:    filter.Progress{Total: 10, Completed: 4},
		RetryStatus: storefront.StatusRateLimited,
		RetryDelay:  2 * time.Minute,
	})
	assert.Equal(t, "progress: 4/10 rate_limited, waiting 2m0s", line)
}

func TestRunSpinner_ReturnsWorkError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("boom")
	out := &lockedBuffer{}

	err := RunSpinner(context.Background(), out, "Downloading", func(context.Context) error {
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)
}

func TestSpinnerModel_Done(t *testing.T) {
	t.Parallel()

	m := newSpinnerModel("Downloading app list")
	assert.Contains(t, m.View(), "Downloading app list")

	updated, cmd := m.Update(workDoneMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Contains(t, updated.View(), "✓ Downloading app list")

	updated, _ = m.Update(workDoneMsg{err: errors.New("x")})
	assert.Contains(t, updated.View(), "✗")
}

func TestOwnedTable(t *testing.T) {
	t.Parallel()

	out := OwnedTable([]applist.OwnedGame{
		{AppID: 220, Name: "Half-Life 2", Installed: true},
		{AppID: 10, Name: "Counter-Strike"},
	})
	assert.Contains(t, out, "APPID")
	assert.Contains(t, out, "Half-Life 2")
	assert.Contains(t, out, "Counter-Strike")
	assert.Contains(t, out, "220")
	assert.Contains(t, out, "yes")

	assert.Contains(t, OwnedTable(nil), "NAME")
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
