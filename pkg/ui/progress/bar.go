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
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/samkit-project/samkit/pkg/service/filter"
	"github.com/samkit-project/samkit/pkg/storefront"
)

const (
	barPadding  = 2
	barMaxWidth = 60
	tickEvery   = 100 * time.Millisecond
)

// Source is polled for the pipeline state. filter.ProgressTracker
// implements it.
type Source interface {
	Get() filter.Snapshot
	Finished() <-chan struct{}
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// BarModel is a bubbletea model that draws a progress bar for a filter
// run until the source reports done.
type BarModel struct {
	src   Source
	title string
	bar   progress.Model
	snap  filter.Snapshot
	final bool
}

func NewBarModel(src Source, title string) BarModel {
	return BarModel{
		src:   src,
		title: title,
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		snap:  src.Get(),
	}
}

func (m BarModel) Init() tea.Cmd {
	return tick()
}

func (m BarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = min(msg.Width-barPadding*2-20, barMaxWidth)
		if m.bar.Width < 10 {
			m.bar.Width = 10
		}
		return m, nil
	case tickMsg:
		m.snap = m.src.Get()
		if m.snap.Done {
			m.final = true
			return m, tea.Quit
		}
		return m, tick()
	}
	return m, nil
}

func (m BarModel) View() string {
	pad := strings.Repeat(" ", barPadding)

	var b strings.Builder
	b.WriteString(pad + TitleStyle.Render(m.title) + "\n")
	b.WriteString(pad + m.bar.ViewAs(m.snap.Percent()))
	b.WriteString(" " + DimStyle.Render(fmt.Sprintf("%d/%d", m.snap.Completed, m.snap.Total)) + "\n")
	b.WriteString(pad + statusLine(m.snap) + "\n")
	return b.String()
}

// statusLine describes the entry in flight or the final outcome.
func statusLine(s filter.Snapshot) string {
	switch {
	case s.Done && s.Err != nil:
		return ErrorStyle.Render("stopped: " + s.Err.Error())
	case s.Done:
		return SuccessStyle.Render("done")
	case s.RetryStatus == storefront.StatusRateLimited:
		return WarnStyle.Render(fmt.Sprintf("rate limited, waiting %s", s.RetryDelay))
	case s.Retrying():
		return WarnStyle.Render(fmt.Sprintf("%s, retrying in %s", s.RetryStatus, s.RetryDelay))
	case s.Status != "":
		return DimStyle.Render("last: " + string(s.Status))
	default:
		return DimStyle.Render("starting")
	}
}

// RunBar draws src on out until it reports done or ctx ends.
func RunBar(ctx context.Context, out io.Writer, src Source, title string) error {
	p := tea.NewProgram(
		NewBarModel(src, title),
		tea.WithContext(ctx),
		tea.WithOutput(out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("progress display: %w", err)
	}
	log.Debug().Msg("progress display finished")
	return nil
}
