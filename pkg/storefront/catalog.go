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
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/samkit-project/samkit/pkg/applist"
)

// FetchCatalog downloads the full app list in the order the API returns it.
// It does not retry.
func (c *Client) FetchCatalog(ctx context.Context) (*applist.AppList, error) {
	log.Debug().Str("url", c.opts.AppListURL).Msg("app list request")

	resp, err := c.http.Get(ctx, c.opts.AppListURL)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	var parsed appListResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &DeserializationError{Detail: err.Error(), Err: err}
	}
	if parsed.AppList == nil {
		err := errors.New("missing field `applist`")
		return nil, &DeserializationError{Detail: err.Error(), Err: err}
	}
	if parsed.AppList.Apps == nil {
		parsed.AppList.Apps = []applist.Entry{}
	}

	log.Info().Int("apps", parsed.AppList.Len()).Msg("fetched app list")
	return parsed.AppList, nil
}
