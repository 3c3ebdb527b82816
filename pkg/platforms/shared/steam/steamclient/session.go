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

// Package steamclient opens an in-process session with the running Steam
// client and answers app ownership queries for the logged in account.
package steamclient

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samkit-project/samkit/pkg/applist"
)

// handles are the native resources a session owns, in acquisition order.
type handles struct {
	api    nativeAPI
	client uintptr
	apps   uintptr
	pipe   int32
	user   int32
}

// release frees whatever was acquired, newest first.
func (h *handles) release() error {
	if h.user != 0 {
		h.api.ReleaseUser(h.client, h.pipe, h.user)
		h.user = 0
	}
	if h.pipe != 0 {
		if !h.api.ReleaseSteamPipe(h.client, h.pipe) {
			log.Warn().Int32("pipe", h.pipe).Msg("steam pipe release reported failure")
		}
		h.pipe = 0
	}
	h.apps = 0
	h.client = 0
	if h.api == nil {
		return nil
	}
	err := h.api.Close()
	h.api = nil
	if err != nil {
		return fmt.Errorf("failed to close Steam client library: %w", err)
	}
	return nil
}

// acquire walks the handle chain. On failure everything acquired so far is
// released before returning.
func acquire(path string, load loaderFunc) (*handles, error) {
	api, err := load(path)
	if err != nil {
		return nil, err
	}
	h := &handles{api: api}

	fail := func(err error) (*handles, error) {
		if relErr := h.release(); relErr != nil {
			log.Warn().Err(relErr).Msg("error releasing partial Steam session")
		}
		return nil, err
	}

	h.client = api.CreateInterface(ClientInterfaceVersion)
	if h.client == 0 {
		return fail(&SymbolResolutionError{Symbol: ClientInterfaceVersion})
	}

	h.pipe = api.CreateSteamPipe(h.client)
	if h.pipe == 0 {
		return fail(fmt.Errorf("%w: could not create pipe", ErrNoSession))
	}

	h.user = api.ConnectToGlobalUser(h.client, h.pipe)
	if h.user == 0 {
		return fail(fmt.Errorf("%w: could not connect to global user", ErrNoSession))
	}

	h.apps = api.GetISteamApps(h.client, h.user, h.pipe, AppsInterfaceVersion)
	if h.apps == 0 {
		return fail(&SymbolResolutionError{Symbol: AppsInterfaceVersion})
	}

	return h, nil
}

// Session is a live connection to the local Steam client. Native calls are
// not thread safe, so they all run on one goroutine locked to its OS
// thread. Methods may be called from any goroutine.
type Session struct {
	calls     chan func(*handles)
	stop      chan struct{}
	exited    chan struct{}
	closeErr  error
	closeOnce sync.Once
}

// Open loads the client library from a Steam install directory and
// connects to the logged in user.
func Open(steamDir string) (*Session, error) {
	return openWith(LibraryPath(steamDir), loadLibrary)
}

func openWith(path string, load loaderFunc) (*Session, error) {
	s := &Session{
		calls:  make(chan func(*handles)),
		stop:   make(chan struct{}),
		exited: make(chan struct{}),
	}

	ready := make(chan error, 1)
	go s.run(path, load, ready)

	if err := <-ready; err != nil {
		<-s.exited
		return nil, err
	}

	log.Info().Str("path", path).Msg("steam client session opened")
	return s, nil
}

func (s *Session) run(path string, load loaderFunc, ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(s.exited)

	h, err := acquire(path, load)
	ready <- err
	if err != nil {
		return
	}

	for {
		select {
		case fn := <-s.calls:
			fn(h)
		case <-s.stop:
			s.closeErr = h.release()
			return
		}
	}
}

// do runs fn on the session thread and waits for it.
func (s *Session) do(fn func(*handles)) error {
	done := make(chan struct{})
	call := func(h *handles) {
		defer close(done)
		fn(h)
	}

	select {
	case s.calls <- call:
	case <-s.exited:
		return ErrClosed
	case <-s.stop:
		return ErrClosed
	}
	<-done
	return nil
}

// IsOwned reports whether the logged in account owns appID.
func (s *Session) IsOwned(appID uint32) (bool, error) {
	var owned bool
	err := s.do(func(h *handles) {
		owned = h.api.BIsSubscribedApp(h.apps, appID)
	})
	return owned, err
}

// Close releases the user, the pipe and the library, in that order. It is
// safe to call more than once; later calls return the first result.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
		<-s.exited
		log.Debug().Msg("steam client session closed")
	})
	return s.closeErr
}

// OwnershipChecker answers ownership queries. *Session implements it.
type OwnershipChecker interface {
	IsOwned(appID uint32) (bool, error)
}

// FilterOwned returns the entries of list owned by the account, in order.
// On error or cancellation the entries found so far are returned with the
// error.
func FilterOwned(ctx context.Context, checker OwnershipChecker, list *applist.AppList) (*applist.AppList, error) {
	owned := &applist.AppList{Apps: []applist.Entry{}}
	if list == nil {
		return owned, nil
	}

	for _, e := range list.Apps {
		if err := ctx.Err(); err != nil {
			return owned, err
		}
		ok, err := checker.IsOwned(e.AppID)
		if err != nil {
			return owned, fmt.Errorf("ownership check for %d: %w", e.AppID, err)
		}
		if ok {
			owned.Append(e)
		}
	}

	log.Info().Int("checked", list.Len()).Int("owned", owned.Len()).Msg("ownership check finished")
	return owned, nil
}
