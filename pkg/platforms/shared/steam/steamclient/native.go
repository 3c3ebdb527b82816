//go:build linux || darwin || windows

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

package steamclient

import (
	"runtime"
	"unsafe"
)

// ISteamClient vtable slots.
const (
	slotCreateSteamPipe     = 0
	slotReleaseSteamPipe    = 1
	slotConnectToGlobalUser = 2
	slotReleaseUser         = 4
	slotGetISteamApps       = 15
)

// ISteamApps vtable slots.
const (
	slotBIsSubscribedApp = 6
)

// library calls into a loaded steamclient through CreateInterface and the
// C++ vtables of the interfaces it returns.
type library struct {
	closeFn         func() error
	createInterface uintptr
}

var _ nativeAPI = (*library)(nil)

// method returns the function pointer in slot of obj's vtable.
func method(obj uintptr, slot int) uintptr {
	//nolint:govet // obj points into native memory owned by the library
	vtable := *(*uintptr)(unsafe.Pointer(obj))
	//nolint:govet // same as above
	return *(*uintptr)(unsafe.Add(unsafe.Pointer(vtable), slot*int(unsafe.Sizeof(uintptr(0)))))
}

func callBool(r uintptr) bool {
	return r&0xff != 0
}

func (l *library) CreateInterface(version string) uintptr {
	p, err := cString(version)
	if err != nil {
		return 0
	}
	r := callN(l.createInterface, uintptr(unsafe.Pointer(p)), 0)
	runtime.KeepAlive(p)
	return r
}

func (*library) CreateSteamPipe(client uintptr) int32 {
	return int32(callN(method(client, slotCreateSteamPipe), client)) //nolint:gosec // HSteamPipe is int32
}

func (*library) ReleaseSteamPipe(client uintptr, pipe int32) bool {
	return callBool(callN(method(client, slotReleaseSteamPipe), client, uintptr(pipe)))
}

func (*library) ConnectToGlobalUser(client uintptr, pipe int32) int32 {
	//nolint:gosec // HSteamUser is int32
	return int32(callN(method(client, slotConnectToGlobalUser), client, uintptr(pipe)))
}

func (*library) ReleaseUser(client uintptr, pipe, user int32) {
	callN(method(client, slotReleaseUser), client, uintptr(pipe), uintptr(user))
}

func (*library) GetISteamApps(client uintptr, user, pipe int32, version string) uintptr {
	p, err := cString(version)
	if err != nil {
		return 0
	}
	r := callN(method(client, slotGetISteamApps), client, uintptr(user), uintptr(pipe), uintptr(unsafe.Pointer(p)))
	runtime.KeepAlive(p)
	return r
}

func (*library) BIsSubscribedApp(apps uintptr, appID uint32) bool {
	return callBool(callN(method(apps, slotBIsSubscribedApp), apps, uintptr(appID)))
}

func (l *library) Close() error {
	if l.closeFn == nil {
		return nil
	}
	return l.closeFn()
}
