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

package config

import "time"

const (
	DefaultAppListURL     = "https://api.steampowered.com/ISteamApps/GetAppList/v2/"
	DefaultAppDetailsURL  = "https://store.steampowered.com/api/appdetails/"
	DefaultDetailsFilters = "basic,achievements"
	DefaultHTTPTimeout    = 30 * time.Second
)

type Catalog struct {
	AppListURL     string `toml:"app_list_url" validate:"required,url"`
	AppDetailsURL  string `toml:"app_details_url" validate:"required,url"`
	DetailsFilters string `toml:"details_filters,omitempty"`
}

type HTTP struct {
	Timeout           string `toml:"timeout" validate:"duration"`
	UserAgent         string `toml:"user_agent,omitempty"`
	RequestsPerMinute int    `toml:"requests_per_minute,omitempty" validate:"gte=0"`
}

func (c *Instance) AppListURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Catalog.AppListURL
}

func (c *Instance) AppDetailsURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Catalog.AppDetailsURL
}

func (c *Instance) DetailsFilters() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Catalog.DetailsFilters
}

func (c *Instance) HTTPTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return parseDuration(c.vals.HTTP.Timeout, DefaultHTTPTimeout)
}

func (c *Instance) UserAgent() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.HTTP.UserAgent == "" {
		return AppName + "/" + AppVersion
	}
	return c.vals.HTTP.UserAgent
}

// RequestsPerMinute caps outgoing requests across all endpoints. Zero means
// no cap beyond the filter delays.
func (c *Instance) RequestsPerMinute() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.HTTP.RequestsPerMinute
}
