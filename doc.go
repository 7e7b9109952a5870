// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The O-SRP Authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package osrp implements Oblivious SRP: classical SRP-6a augmented with one or more
// rate-limited OPRF evaluations, optionally sharded across independent servers, so that a
// stolen verifier store is useless for offline dictionary attacks.
//
// SRPClient and SRPServer compose the bigint, hash, oprf, and internal/ratelimit packages into
// the registration and login state machines. Wire framing, transport, and persistent storage of
// UserRecord values are the caller's responsibility; see the store package for a reference
// in-memory implementation.
package osrp
