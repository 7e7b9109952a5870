// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The O-SRP Authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package osrp

// UserRecord is the server-side persisted shape of spec §6: a username, its salt, and its
// public verifier v, all hex-encoded. The core never mutates a UserRecord in place; registration
// creates one, login only reads it.
type UserRecord struct {
	Username string
	Salt     string
	Verifier string
}
