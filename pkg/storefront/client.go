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

// Package storefront talks to the Steam Web API and store API: the full app
// list and per-app details.
package storefront

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/samkit-project/samkit/pkg/config"
	"github.com/samkit-project/samkit/pkg/shared/httpclient"
)

// RetryFunc is told about every transient failure before the prober waits.
type RetryFunc func(appID uint32, status Status, delay time.Duration)

// Options holds endpoints and retry pacing. Zero durations mean retry
// immediately.
type Options struct {
	Clock                 clockwork.Clock
	OnRetry               RetryFunc
	AppListURL            string
	AppDetailsURL         string
	DetailsFilters        string
	RateLimitCooldown     time.Duration
	GatewayBackoff        time.Duration
	TransportRetryInitial time.Duration
	TransportRetryMax     time.Duration
}

// OptionsFromConfig builds Options from the [catalog] and [filter] sections.
func OptionsFromConfig(cfg *config.Instance) Options {
	return Options{
		AppListURL:            cfg.AppListURL(),
		AppDetailsURL:         cfg.AppDetailsURL(),
		DetailsFilters:        cfg.DetailsFilters(),
		RateLimitCooldown:     cfg.RateLimitCooldown(),
		GatewayBackoff:        cfg.GatewayBackoff(),
		TransportRetryInitial: cfg.TransportRetryInitial(),
		TransportRetryMax:     cfg.TransportRetryMax(),
	}
}

// Client fetches the app list and probes app details.
type Client struct {
	http *httpclient.Client
	opts Options
}

//nolint:gocritic // options copied for immutability
func NewClient(hc *httpclient.Client, opts Options) *Client {
	if hc == nil {
		hc = httpclient.NewClientWithTimeout(httpclient.DefaultTimeoutSeconds * time.Second)
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.AppListURL == "" {
		opts.AppListURL = config.DefaultAppListURL
	}
	if opts.AppDetailsURL == "" {
		opts.AppDetailsURL = config.DefaultAppDetailsURL
	}
	return &Client{http: hc, opts: opts}
}

func (c *Client) detailsURL(appID uint32) (string, error) {
	u, err := url.Parse(c.opts.AppDetailsURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse app details URL: %w", err)
	}

	params := u.Query()
	params.Set("appids", strconv.FormatUint(uint64(appID), 10))
	if c.opts.DetailsFilters != "" {
		params.Set("filters", c.opts.DetailsFilters)
	}

	u.RawQuery = params.Encode()
	return u.String(), nil
}
