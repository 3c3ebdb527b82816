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
	DefaultRateLimitCooldown     = 2 * time.Minute
	DefaultGatewayBackoff        = 500 * time.Millisecond
	DefaultEntryDelay            = 100 * time.Millisecond
	DefaultTransportRetryInitial = 250 * time.Millisecond
	DefaultTransportRetryMax     = 30 * time.Second
)

// Filter holds the pacing of the app details pipeline. All values are Go
// duration strings.
type Filter struct {
	RateLimitCooldown     string `toml:"rate_limit_cooldown" validate:"duration"`
	GatewayBackoff        string `toml:"gateway_backoff" validate:"duration"`
	EntryDelay            string `toml:"entry_delay" validate:"duration"`
	TransportRetryInitial string `toml:"transport_retry_initial" validate:"duration"`
	TransportRetryMax     string `toml:"transport_retry_max" validate:"duration"`
}

type Files struct {
	AppList  string `toml:"app_list"`
	Filtered string `toml:"filtered"`
}

func (c *Instance) RateLimitCooldown() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return parseDuration(c.vals.Filter.RateLimitCooldown, DefaultRateLimitCooldown)
}

func (c *Instance) GatewayBackoff() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return parseDuration(c.vals.Filter.GatewayBackoff, DefaultGatewayBackoff)
}

func (c *Instance) EntryDelay() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return parseDuration(c.vals.Filter.EntryDelay, DefaultEntryDelay)
}

func (c *Instance) TransportRetryInitial() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return parseDuration(c.vals.Filter.TransportRetryInitial, DefaultTransportRetryInitial)
}

func (c *Instance) TransportRetryMax() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return parseDuration(c.vals.Filter.TransportRetryMax, DefaultTransportRetryMax)
}

func (c *Instance) AppListFile() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Files.AppList
}

func (c *Instance) FilteredFile() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Files.Filtered
}
