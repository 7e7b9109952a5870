// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The O-SRP Authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package hash implements H, the variadic one-way hash that SRP and the verifier-hash binding
// absorb strings and bigint.Int values into, in canonical byte form.
package hash

import (
	"crypto"
	"errors"

	bmhash "github.com/bytemare/hash"

	"github.com/oprfsrp/osrp/bigint"
)

// OutputBytes is H's fixed digest width: 32 bytes (SHA-256), matching params.HashOutputBytes.
const OutputBytes = 32

// ErrBadArgumentKind is returned by FromAny when asked to absorb a value that is neither raw
// bytes nor a bigint.Int. H itself, typed over Arg, cannot be called with any other kind -
// FromAny exists for callers bridging from a dynamically-typed boundary.
var ErrBadArgumentKind = errors.New("hash: argument must be raw bytes or a bigint.Int")

var suite = bmhash.FromCrypto(crypto.SHA256)

// Arg is the sum type H absorbs: either raw Bytes or a BigInt, absorbed as the raw bytes of its
// hex encoding (even-length, no separator). Absorption order matters.
type Arg interface {
	absorb(h *bmhash.Fixed)
}

// Bytes absorbs its UTF-8 (or raw) byte content directly.
type Bytes []byte

func (b Bytes) absorb(h *bmhash.Fixed) { h.Write(b) }

// Str is a convenience constructor for Bytes from a Go string.
func Str(s string) Bytes { return Bytes(s) }

// BigInt absorbs the raw bytes of its hex encoding - not its binary value. This matches the
// reference implementation's interop contract; see spec §4.2 and §9.
type BigInt bigint.Int

func (v BigInt) absorb(h *bmhash.Fixed) {
	hx := bigint.Int(v).ToHex()
	if len(hx)%2 != 0 {
		hx = "0" + hx
	}

	h.Write([]byte(hx))
}

// H absorbs args in order and returns the digest as a bigint.Int with hexWidth = 2*OutputBytes.
func H(args ...Arg) bigint.Int {
	h := suite.GetHashFunction()

	for _, a := range args {
		a.absorb(h)
	}

	return bigint.FromBytes(h.Sum(nil))
}

// FromAny converts a dynamically-typed value into an Arg, for callers that bridge from a
// boundary where argument kinds are not known until runtime (e.g. a generic message dispatcher).
// It fails with ErrBadArgumentKind for anything but []byte, string, or bigint.Int.
func FromAny(v any) (Arg, error) {
	switch t := v.(type) {
	case []byte:
		return Bytes(t), nil
	case string:
		return Bytes(t), nil
	case bigint.Int:
		return BigInt(t), nil
	default:
		return nil, ErrBadArgumentKind
	}
}
