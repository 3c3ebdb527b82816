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
	"bytes"
	"errors"
	"fmt"

	"github.com/gocarina/gocsv"
	"github.com/goccy/go-json"
)

// SchemaVersion is written into every saved list. Files without a schema
// field are the unversioned lists older releases wrote.
const SchemaVersion = 1

var (
	ErrUnsupportedSchema = errors.New("unsupported app list schema")
	// ErrNotAppList is returned for JSON objects without an apps array.
	ErrNotAppList = errors.New("document is not an app list")
)

type listFile struct {
	Apps   []Entry `json:"apps"`
	Schema int     `json:"schema"`
}

// legacyFile also accepts a raw GetAppList response saved verbatim.
type legacyFile struct {
	AppList *struct {
		Apps *[]Entry `json:"apps"`
	} `json:"applist"`
	Apps   *[]Entry `json:"apps"`
	Schema int      `json:"schema"`
}

type ownedFile struct {
	Owned  []OwnedGame `json:"owned"`
	Schema int         `json:"schema"`
}

// Encode renders a list in the current versioned schema.
func Encode(list *AppList) ([]byte, error) {
	apps := []Entry{}
	if list != nil && list.Apps != nil {
		apps = list.Apps
	}
	data, err := json.MarshalIndent(listFile{Schema: SchemaVersion, Apps: apps}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode app list: %w", err)
	}
	return data, nil
}

// Decode reads a list in the versioned schema, the unversioned {"apps": []}
// form, a raw {"applist": {"apps": []}} response or a bare array.
func Decode(data []byte) (*AppList, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("failed to decode app list: empty document")
	}

	if trimmed[0] == '[' {
		var apps []Entry
		if err := json.Unmarshal(trimmed, &apps); err != nil {
			return nil, fmt.Errorf("failed to decode app list: %w", err)
		}
		return &AppList{Apps: apps}, nil
	}

	var f legacyFile
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return nil, fmt.Errorf("failed to decode app list: %w", err)
	}

	if f.Schema > SchemaVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSchema, f.Schema)
	}

	found := f.Apps
	if found == nil && f.AppList != nil {
		found = f.AppList.Apps
	}
	if found == nil {
		return nil, ErrNotAppList
	}
	apps := *found
	if apps == nil {
		apps = []Entry{}
	}
	return &AppList{Apps: apps}, nil
}

// EncodeOwned renders the owned games report.
func EncodeOwned(owned []OwnedGame) ([]byte, error) {
	if owned == nil {
		owned = []OwnedGame{}
	}
	data, err := json.MarshalIndent(ownedFile{Schema: SchemaVersion, Owned: owned}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode owned games: %w", err)
	}
	return data, nil
}

// EncodeOwnedCSV renders the owned games report as CSV with a header row.
func EncodeOwnedCSV(owned []OwnedGame) ([]byte, error) {
	if owned == nil {
		owned = []OwnedGame{}
	}
	data, err := gocsv.MarshalBytes(&owned)
	if err != nil {
		return nil, fmt.Errorf("failed to encode owned games: %w", err)
	}
	return data, nil
}
