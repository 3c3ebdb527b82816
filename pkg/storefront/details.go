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

package storefront

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/samkit-project/samkit/pkg/helpers"
)

var errNoData = errors.New("no app details available")

type attemptKind int

const (
	attemptRetry attemptKind = iota
	attemptTerminal
)

// attempt is what one detail request produced. Retry attempts carry the
// wait before the next request; terminal attempts end the probe.
type attempt struct {
	detail *EntryDetail
	status Status
	delay  time.Duration
	kind   attemptKind
}

func retry(status Status, delay time.Duration) attempt {
	return attempt{kind: attemptRetry, status: status, delay: delay}
}

func terminal(status Status, detail *EntryDetail) attempt {
	return attempt{kind: attemptTerminal, status: status, detail: detail}
}

// transportBackoff paces retries after requests that got no response at
// all. A zero initial interval retries immediately every time.
type transportBackoff struct {
	exp *backoff.ExponentialBackOff
}

func (c *Client) newTransportBackoff() *transportBackoff {
	if c.opts.TransportRetryInitial <= 0 {
		return &transportBackoff{}
	}
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.opts.TransportRetryInitial
	if c.opts.TransportRetryMax > 0 {
		exp.MaxInterval = c.opts.TransportRetryMax
	}
	exp.Reset()
	return &transportBackoff{exp: exp}
}

func (b *transportBackoff) next() time.Duration {
	if b.exp == nil {
		return 0
	}
	return b.exp.NextBackOff()
}

// Probe looks up one app's type and achievement support. Rate limiting,
// gateway faults and transport failures are retried until the store gives
// a definite answer; an empty or malformed body is a definite "no data".
// The only error returned is ctx's.
func (c *Client) Probe(ctx context.Context, appID uint32) (ProbeResult, error) {
	tb := c.newTransportBackoff()
	attempts := 0

	for {
		if err := ctx.Err(); err != nil {
			return ProbeResult{Status: StatusNoData, Attempts: attempts}, err
		}

		attempts++
		a := c.attempt(ctx, appID, tb)

		switch a.kind {
		case attemptTerminal:
			log.Debug().
				Uint32("appid", appID).
				Str("status", string(a.status)).
				Int("attempts", attempts).
				Msg("app details probed")
			return ProbeResult{Detail: a.detail, Status: a.status, Attempts: attempts}, nil
		case attemptRetry:
			if err := ctx.Err(); err != nil {
				return ProbeResult{Status: a.status, Attempts: attempts}, err
			}

			ev := log.Debug()
			if a.status == StatusRateLimited {
				ev = log.Warn()
			}
			ev.Uint32("appid", appID).
				Str("status", string(a.status)).
				Dur("delay", a.delay).
				Msg("retrying app details")

			if c.opts.OnRetry != nil {
				c.opts.OnRetry(appID, a.status, a.delay)
			}
			if err := helpers.SleepContext(ctx, c.opts.Clock, a.delay); err != nil {
				return ProbeResult{Status: a.status, Attempts: attempts}, err
			}
		}
	}
}

func (c *Client) attempt(ctx context.Context, appID uint32, tb *transportBackoff) attempt {
	reqURL, err := c.detailsURL(appID)
	if err != nil {
		log.Error().Err(err).Msg("cannot build app details request")
		return terminal(StatusNoData, nil)
	}

	resp, err := c.http.Get(ctx, reqURL)
	if err != nil {
		log.Debug().Err(err).Uint32("appid", appID).Msg("app details request failed")
		return retry(StatusTransportError, tb.next())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close response body")
		}
	}()

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		drainBody(resp.Body)
		return retry(StatusRateLimited, c.opts.RateLimitCooldown)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		drainBody(resp.Body)
		return retry(StatusGatewayError, c.opts.GatewayBackoff)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Debug().Err(err).Uint32("appid", appID).Msg("app details body read failed")
		return retry(StatusTransportError, tb.next())
	}

	detail, err := decodeDetails(body, appID)
	if err != nil {
		// Some apps answer with an empty or unusable body; that is the
		// store's final word for them.
		log.Debug().Err(err).Uint32("appid", appID).Int("code", resp.StatusCode).Msg("no app details")
		return terminal(StatusNoData, nil)
	}

	return terminal(StatusOK, detail)
}

// decodeDetails maps {"<id>": {"success": true, "data": {...}}} onto an
// EntryDetail. Any shape mismatch is reported as an error.
func decodeDetails(body []byte, appID uint32) (*EntryDetail, error) {
	var envelopes map[string]appDetailsEnvelope
	if err := json.Unmarshal(body, &envelopes); err != nil {
		return nil, fmt.Errorf("decode app details: %w", err)
	}

	env, ok := envelopes[strconv.FormatUint(uint64(appID), 10)]
	if !ok || !env.Success || env.Data == nil || env.Data.Type == "" {
		return nil, errNoData
	}

	detail := &EntryDetail{Type: env.Data.Type}
	if env.Data.Achievements != nil {
		detail.AchievementCount = env.Data.Achievements.Total
		detail.HasAchievements = env.Data.Achievements.Total > 0
	}
	return detail, nil
}

// drainBody reads what is left of a body so the connection can be reused.
func drainBody(body io.Reader) {
	if _, err := io.Copy(io.Discard, body); err != nil {
		log.Debug().Err(err).Msg("failed to drain response body")
	}
}
