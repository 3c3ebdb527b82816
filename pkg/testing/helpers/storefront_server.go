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
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/goccy/go-json"
	"github.com/samkit-project/samkit/pkg/applist"
	"github.com/samkit-project/samkit/pkg/helpers/syncutil"
)

const (
	AppListPath    = "/ISteamApps/GetAppList/v2/"
	AppDetailsPath = "/api/appdetails/"
)

// Response is one scripted HTTP reply.
type Response struct {
	Body   string
	Status int
}

// MockStorefrontServer serves the app list and app details endpoints with
// scripted replies for tests.
type MockStorefrontServer struct {
	*httptest.Server
	details map[uint32][]Response
	hits    map[uint32]int
	appList Response
	filters []string
	conns   int
	mu      syncutil.Mutex
}

// NewMockStorefrontServer starts a server that is closed with the test.
func NewMockStorefrontServer(t *testing.T) *MockStorefrontServer {
	t.Helper()

	mock := &MockStorefrontServer{
		details: make(map[uint32][]Response),
		hits:    make(map[uint32]int),
		appList: Response{Status: http.StatusOK, Body: `{"applist":{"apps":[]}}`},
	}

	mux := http.NewServeMux()
	mux.HandleFunc(AppListPath, mock.handleAppList)
	mux.HandleFunc(AppDetailsPath, mock.handleAppDetails)
	mock.Server = httptest.NewUnstartedServer(mux)
	mock.Config.ConnState = mock.trackConn
	mock.Start()
	t.Cleanup(mock.Close)

	return mock
}

func (m *MockStorefrontServer) AppListURL() string {
	return m.URL + AppListPath
}

func (m *MockStorefrontServer) AppDetailsURL() string {
	return m.URL + AppDetailsPath
}

// WithAppList serves list as a GetAppList response.
func (m *MockStorefrontServer) WithAppList(list *applist.AppList) *MockStorefrontServer {
	data, err := json.Marshal(map[string]*applist.AppList{"applist": list})
	if err != nil {
		panic(err)
	}
	return m.WithAppListResponse(Response{Status: http.StatusOK, Body: string(data)})
}

func (m *MockStorefrontServer) WithAppListResponse(resp Response) *MockStorefrontServer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appList = resp
	return m
}

// WithDetails queues replies for appID. The last reply repeats once the
// queue is drained.
func (m *MockStorefrontServer) WithDetails(appID uint32, responses ...Response) *MockStorefrontServer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.details[appID] = append(m.details[appID], responses...)
	return m
}

// Hits returns how many detail requests appID received.
func (m *MockStorefrontServer) Hits(appID uint32) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits[appID]
}

// Conns returns how many TCP connections clients opened.
func (m *MockStorefrontServer) Conns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.conns
}

func (m *MockStorefrontServer) trackConn(_ net.Conn, state http.ConnState) {
	if state != http.StateNew {
		return
	}
	m.mu.Lock()
	m.conns++
	m.mu.Unlock()
}

// Filters returns the filters query parameter of every detail request.
func (m *MockStorefrontServer) Filters() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.filters...)
}

func (m *MockStorefrontServer) handleAppList(w http.ResponseWriter, _ *http.Request) {
	m.mu.Lock()
	resp := m.appList
	m.mu.Unlock()
	writeResponse(w, resp)
}

func (m *MockStorefrontServer) handleAppDetails(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.URL.Query().Get("appids"), 10, 32)
	if err != nil {
		http.Error(w, "bad appids", http.StatusBadRequest)
		return
	}
	appID := uint32(id)

	m.mu.Lock()
	m.hits[appID]++
	m.filters = append(m.filters, r.URL.Query().Get("filters"))
	queue := m.details[appID]
	var resp Response
	switch {
	case len(queue) == 0:
		resp = Response{Status: http.StatusOK, Body: NotFoundDetails(appID)}
	case len(queue) == 1:
		resp = queue[0]
	default:
		resp = queue[0]
		m.details[appID] = queue[1:]
	}
	m.mu.Unlock()

	writeResponse(w, resp)
}

func writeResponse(w http.ResponseWriter, resp Response) {
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(resp.Body))
}

// GameDetails is a successful details body for appID.
func GameDetails(appID uint32, appType string, achievements int) string {
	if achievements > 0 {
		return fmt.Sprintf(
			`{"%d":{"success":true,"data":{"type":%q,"name":"App %d","achievements":{"total":%d,"highlighted":[]}}}}`,
			appID, appType, appID, achievements,
		)
	}
	return fmt.Sprintf(`{"%d":{"success":true,"data":{"type":%q,"name":"App %d"}}}`, appID, appType, appID)
}

// NotFoundDetails is the body the store sends for apps it has no page for.
func NotFoundDetails(appID uint32) string {
	return fmt.Sprintf(`{"%d":{"success":false}}`, appID)
}

// OK wraps a body in a 200 reply.
func OK(body string) Response {
	return Response{Status: http.StatusOK, Body: body}
}

// StatusOnly is a reply with an empty body.
func StatusOnly(status int) Response {
	return Response{Status: status}
}
