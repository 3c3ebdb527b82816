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

import "github.com/samkit-project/samkit/pkg/applist"

// Status is the outcome of one detail request, as shown to progress
// observers.
type Status string

const (
	StatusOK             Status = "ok"
	StatusNoData         Status = "no_data"
	StatusRateLimited    Status = "rate_limited"
	StatusGatewayError   Status = "gateway_error"
	StatusTransportError Status = "transport_error"
)

// TypeGame is the store classification of a purchasable game.
const TypeGame = "game"

// EntryDetail is the part of an app's store page the filter needs.
type EntryDetail struct {
	Type             string
	AchievementCount int
	HasAchievements  bool
}

// IsGameWithAchievements reports whether the app passes the filter.
func (d *EntryDetail) IsGameWithAchievements() bool {
	return d != nil && d.Type == TypeGame && d.HasAchievements
}

// ProbeResult is the terminal outcome of probing one app. Detail is nil
// when Status is StatusNoData.
type ProbeResult struct {
	Detail   *EntryDetail
	Status   Status
	Attempts int
}

type appListResponse struct {
	AppList *applist.AppList `json:"applist"`
}

type appDetailsEnvelope struct {
	Data    *appDetailsData `json:"data"`
	Success bool            `json:"success"`
}

type appDetailsData struct {
	Achievements *achievementInfo `json:"achievements"`
	Type         string           `json:"type"`
}

type achievementInfo struct {
	Total int `json:"total"`
}
