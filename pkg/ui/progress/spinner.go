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
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

type workDoneMsg struct {
	err error
}

type spinnerModel struct {
	err     error
	label   string
	spinner spinner.Model
	done    bool
}

func newSpinnerModel(label string) spinnerModel {
	return spinnerModel{
		label:   label,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(AccentStyle)),
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() string {
	if m.done {
		if m.err != nil {
			return ErrorStyle.Render("✗ "+m.label) + "\n"
		}
		return SuccessStyle.Render("✓ "+m.label) + "\n"
	}
	return m.spinner.View() + " " + m.label
}

// RunSpinner runs work while showing a spinner on out, and returns work's
// error. The spinner never reads input, so signals reach the process.
func RunSpinner(ctx context.Context, out io.Writer, label string, work func(context.Context) error) error {
	p := tea.NewProgram(
		newSpinnerModel(label),
		tea.WithContext(ctx),
		tea.WithOutput(out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	errCh := make(chan error, 1)
	go func() {
		err := work(ctx)
		errCh <- err
		p.Send(workDoneMsg{err: err})
	}()

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Warn().Err(err).Msg("spinner stopped")
	}
	return <-errCh
}
