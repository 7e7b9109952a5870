// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The O-SRP Authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package oprf

import "errors"

// ErrBadRequest is returned by Server.DeserializeRequest when the input is not a validly
// encoded group element for the server's ciphersuite.
var ErrBadRequest = errors.New("oprf: malformed request")

// ErrBadResponse is returned by Client.Finalize when the server's response is not a validly
// encoded group element. A second Finalize on the same BlindState fails with
// ErrBlindStateConsumed instead.
var ErrBadResponse = errors.New("oprf: malformed response")

// ErrCryptoError is returned when the underlying group rejects an otherwise well-formed input,
// e.g. the identity element.
var ErrCryptoError = errors.New("oprf: invalid group element")

// ErrBlindStateConsumed is returned when Finalize is called on a BlindState that has already
// been consumed. A BlindState is a linear, use-once resource; see spec §9.
var ErrBlindStateConsumed = errors.New("oprf: blind state already consumed")
