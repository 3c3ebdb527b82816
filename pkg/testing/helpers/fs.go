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

package helpers

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/samkit-project/samkit/pkg/applist"
	"github.com/samkit-project/samkit/pkg/config"
	"github.com/spf13/afero"
)

// FSHelper provides utilities for filesystem mocking in tests
type FSHelper struct {
	Fs afero.Fs
}

// NewMemoryFS creates a new in-memory filesystem for testing
func NewMemoryFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewMemMapFs(),
	}
}

// Store returns an app list store backed by this filesystem.
func (h *FSHelper) Store() *applist.Store {
	return applist.NewStore(h.Fs)
}

// WriteAppList saves list at path in the current schema.
func (h *FSHelper) WriteAppList(path string, list *applist.AppList) error {
	data, err := applist.Encode(list)
	if err != nil {
		return err //nolint:wrapcheck // test helper
	}
	return h.WriteFile(path, data)
}

// ReadAppList decodes the list saved at path.
func (h *FSHelper) ReadAppList(path string) (*applist.AppList, error) {
	data, err := h.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return applist.Decode(data) //nolint:wrapcheck // test helper
}

// ReadOwned decodes an owned games report.
func (h *FSHelper) ReadOwned(path string) ([]applist.OwnedGame, error) {
	data, err := h.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f struct {
		Owned  []applist.OwnedGame `json:"owned"`
		Schema int                 `json:"schema"`
	}
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode owned games: %w", err)
	}
	if f.Schema != applist.SchemaVersion {
		return nil, errors.New("owned games report has wrong schema")
	}
	return f.Owned, nil
}

// FileExists checks if a file exists
func (h *FSHelper) FileExists(path string) bool {
	exists, err := afero.Exists(h.Fs, path)
	return err == nil && exists
}

// ReadFile reads a file and returns its content
func (h *FSHelper) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(h.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}

// WriteFile writes content to a file, creating parent directories.
func (h *FSHelper) WriteFile(path string, content []byte) error {
	if err := h.Fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(h.Fs, path, content, 0o600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// NewTestConfig writes a config built from config.BaseDefaults, changed
// by mutate, into a temp dir and loads it.
func NewTestConfig(t *testing.T, mutate func(*config.Values)) *config.Instance {
	t.Helper()

	vals := config.BaseDefaults
	vals.Steam.ExtraPaths = nil
	if mutate != nil {
		mutate(&vals)
	}

	cfg, err := config.NewConfigAt(filepath.Join(t.TempDir(), config.CfgFile), vals)
	if err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	return cfg
}
