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

// Interface versions requested from the client library.
const (
	ClientInterfaceVersion = "SteamClient020"
	AppsInterfaceVersion   = "STEAMAPPS_INTERFACE_VERSION008"
)

// nativeAPI is the slice of the Steam client library the session needs.
// Handles are opaque; zero means failure.
type nativeAPI interface {
	CreateInterface(version string) uintptr
	CreateSteamPipe(client uintptr) int32
	ReleaseSteamPipe(client uintptr, pipe int32) bool
	ConnectToGlobalUser(client uintptr, pipe int32) int32
	ReleaseUser(client uintptr, pipe, user int32)
	GetISteamApps(client uintptr, user, pipe int32, version string) uintptr
	BIsSubscribedApp(apps uintptr, appID uint32) bool
	Close() error
}

// loaderFunc opens the library at path and resolves its entry points.
type loaderFunc func(path string) (nativeAPI, error)
