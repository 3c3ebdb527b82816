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

package applist

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// ErrorKind classifies persistence failures.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindNotFound
	KindPermissionDenied
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermissionDenied:
		return "permission denied"
	default:
		return "other"
	}
}

// IOError is returned by Store for any filesystem failure.
type IOError struct {
	Err  error
	Path string
	Kind ErrorKind
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func newIOError(path string, err error) *IOError {
	kind := KindOther
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = KindNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = KindPermissionDenied
	}
	return &IOError{Path: path, Kind: kind, Err: err}
}

// Store reads and writes whole files. Writes go through a temp file and a
// rename so an interrupted save never leaves a truncated list behind.
type Store struct {
	Fs afero.Fs
}

// NewStore returns a Store on fsys, or on the OS filesystem when fsys is nil.
func NewStore(fsys afero.Fs) *Store {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Store{Fs: fsys}
}

// Save writes data to path, replacing any existing file.
func (s *Store) Save(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := s.Fs.MkdirAll(dir, 0o750); err != nil {
		return newIOError(path, err)
	}

	tmp, err := afero.TempFile(s.Fs, dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return newIOError(path, err)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		if rmErr := s.Fs.Remove(tmpName); rmErr != nil {
			log.Warn().Err(rmErr).Str("path", tmpName).Msg("error removing temp file")
		}
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return newIOError(path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return newIOError(path, err)
	}
	if err := s.Fs.Rename(tmpName, path); err != nil {
		cleanup()
		return newIOError(path, err)
	}

	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("saved file")
	return nil
}

// Load reads the whole file at path.
func (s *Store) Load(path string) ([]byte, error) {
	data, err := afero.ReadFile(s.Fs, path)
	if err != nil {
		return nil, newIOError(path, err)
	}
	return data, nil
}

// SaveList encodes list in the current schema and saves it.
func (s *Store) SaveList(path string, list *AppList) error {
	data, err := Encode(list)
	if err != nil {
		return err
	}
	return s.Save(path, data)
}

// LoadList loads and decodes a list saved by SaveList or an older release.
func (s *Store) LoadList(path string) (*AppList, error) {
	data, err := s.Load(path)
	if err != nil {
		return nil, err
	}
	list, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("apps", list.Len()).Msg("loaded app list")
	return list, nil
}

// SaveOwned writes the owned games report, as CSV when path ends in .csv
// and as JSON otherwise.
func (s *Store) SaveOwned(path string, owned []OwnedGame) error {
	encode := EncodeOwned
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		encode = EncodeOwnedCSV
	}
	data, err := encode(owned)
	if err != nil {
		return err
	}
	return s.Save(path, data)
}
