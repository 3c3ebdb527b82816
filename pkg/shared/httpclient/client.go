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

package httpclient

import (
	"context"
	"encoding/base64"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/samkit-project/samkit/pkg/config"
	"golang.org/x/time/rate"
)

const (
	// DefaultTimeoutSeconds is the default timeout for HTTP requests
	DefaultTimeoutSeconds = 30
)

// CredentialLookup returns the credentials for a request URL, or nil.
type CredentialLookup func(reqURL string) *config.CredentialEntry

// AuthTransport applies credentials from auth.toml to outgoing requests.
type AuthTransport struct {
	Base   http.RoundTripper
	Lookup CredentialLookup
}

// RoundTrip implements http.RoundTripper interface with automatic authentication
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	if t.Lookup != nil {
		if creds := t.Lookup(req.URL.String()); creds != nil {
			req = req.Clone(req.Context())
			switch {
			case creds.Bearer != "":
				req.Header.Set("Authorization", "Bearer "+creds.Bearer)
			case creds.Username != "":
				auth := base64.StdEncoding.EncodeToString([]byte(creds.Username + ":" + creds.Password))
				req.Header.Set("Authorization", "Basic "+auth)
			}
			if creds.APIKey != "" {
				q := req.URL.Query()
				q.Set("key", creds.APIKey)
				req.URL.RawQuery = q.Encode()
			}
		}
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform HTTP round trip: %w", err)
	}
	return resp, nil
}

// LimitTransport holds each request until the limiter grants a token.
type LimitTransport struct {
	Base      http.RoundTripper
	Limiter   *rate.Limiter
	UserAgent string
}

func (t *LimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	if t.Limiter != nil {
		if err := t.Limiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("request limiter: %w", err)
		}
	}

	if t.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.UserAgent)
	}

	return base.RoundTrip(req)
}

// DefaultTransport provides a configured transport with connection pooling and reasonable timeouts
var DefaultTransport = &http.Transport{
	Proxy: http.ProxyFromEnvironment,
	DialContext: (&net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	ResponseHeaderTimeout: 30 * time.Second,
	TLSHandshakeTimeout:   10 * time.Second,
	// Connection pooling settings
	MaxIdleConns:        100,
	MaxIdleConnsPerHost: 10,
	IdleConnTimeout:     90 * time.Second,
}

// Options configures a Client.
type Options struct {
	Lookup            CredentialLookup
	UserAgent         string
	Timeout           time.Duration
	RequestsPerMinute int
}

// Client provides an HTTP client with authentication and sensible defaults
type Client struct {
	*http.Client
}

// NewClient creates a new HTTP client with authentication support
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeoutSeconds * time.Second
	}

	var limiter *rate.Limiter
	if opts.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(opts.RequestsPerMinute)/60.0), 1)
	}

	return &Client{
		Client: &http.Client{
			Transport: &LimitTransport{
				Base: &AuthTransport{
					Base:   DefaultTransport,
					Lookup: opts.Lookup,
				},
				Limiter:   limiter,
				UserAgent: opts.UserAgent,
			},
			Timeout: opts.Timeout,
		},
	}
}

// NewClientWithTimeout creates a new HTTP client with a custom timeout
func NewClientWithTimeout(timeout time.Duration) *Client {
	return NewClient(Options{Timeout: timeout})
}

// NewClientFromConfig creates a client using timeout, user agent, request
// cap and credentials from cfg.
func NewClientFromConfig(cfg *config.Instance) *Client {
	return NewClient(Options{
		Timeout:           cfg.HTTPTimeout(),
		UserAgent:         cfg.UserAgent(),
		RequestsPerMinute: cfg.RequestsPerMinute(),
		Lookup:            cfg.LookupAuth,
	})
}

// Get performs a GET request and returns the response
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error performing GET request: %w", err)
	}

	return resp, nil
}
