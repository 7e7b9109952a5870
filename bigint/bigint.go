// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The O-SRP Authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package bigint implements the non-negative arbitrary-precision integer type
// used throughout the O-SRP protocol engine, on top of math/big.
package bigint

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

// ErrNoInverse is returned by ModInverse when the receiver and the modulus are not coprime.
var ErrNoInverse = errors.New("bigint: modular inverse undefined")

// ErrNotHex is returned by FromHex when the input contains non-hexadecimal characters.
var ErrNotHex = errors.New("bigint: input is not valid hexadecimal")

// ZERO is the additive identity.
var ZERO = Int{v: big.NewInt(0)}

// ONE is the multiplicative identity.
var ONE = Int{v: big.NewInt(1)}

// Int is an immutable non-negative arbitrary-precision integer. The zero value is not valid;
// use ZERO, ONE, FromHex, FromBytes or Random to obtain one.
//
// hexWidth, when non-nil, records the number of hex digits ToHex re-encodes to by left-padding
// with '0'. Arithmetic that does not naturally preserve a canonical width drops it (nil).
type Int struct {
	v        *big.Int
	hexWidth *int
}

func width(n int) *int {
	return &n
}

// FromHex parses s as case-insensitive hexadecimal and records hexWidth = len(s).
// An empty string yields ZERO with hexWidth = 0.
func FromHex(s string) (Int, error) {
	if s == "" {
		return Int{v: big.NewInt(0), hexWidth: width(0)}, nil
	}

	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return Int{}, fmt.Errorf("%w: %q", ErrNotHex, s)
	}

	return Int{v: v, hexWidth: width(len(s))}, nil
}

// FromBytes interprets b as a big-endian non-negative integer, with hexWidth = 2*len(b).
func FromBytes(b []byte) Int {
	return Int{v: new(big.Int).SetBytes(b), hexWidth: width(2 * len(b))}
}

// FromUint64 wraps a native integer with no fixed hex width.
func FromUint64(n uint64) Int {
	return Int{v: new(big.Int).SetUint64(n)}
}

// Random draws nBytes of uniform randomness from a cryptographic RNG and returns it as an
// Int with hexWidth = 2*nBytes.
func Random(nBytes int) (Int, error) {
	buf := make([]byte, nBytes)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return Int{}, fmt.Errorf("bigint: reading random bytes: %w", err)
	}

	return FromBytes(buf), nil
}

// ToHex renders the value as hexadecimal. If hexWidth is set, the result is left-padded with
// '0' to that width; otherwise the encoding is minimal (no leading zeros, "0" for ZERO).
func (a Int) ToHex() string {
	s := a.v.Text(16)
	if a.hexWidth == nil {
		return s
	}

	if a.v.Sign() == 0 {
		s = ""
	}

	if len(s) >= *a.hexWidth {
		return s
	}

	return strings.Repeat("0", *a.hexWidth-len(s)) + s
}

// ToBytes returns the big-endian encoding of the value, hex-normalized to an even number of
// digits before decoding so the byte length is always ceil(bitlen/8).
func (a Int) ToBytes() []byte {
	s := a.v.Text(16)
	if len(s)%2 != 0 {
		s = "0" + s
	}

	b, _ := hex.DecodeString(s)

	return b
}

// Add returns a+b. hexWidth is preserved from a when it is at least as wide as the result.
func (a Int) Add(b Int) Int {
	return a.combine(b, new(big.Int).Add(a.v, b.v))
}

// Sub returns a-b. The caller must ensure a >= b (mod-N callers pre-add N; see SRP §4.1).
func (a Int) Sub(b Int) Int {
	return a.combine(b, new(big.Int).Sub(a.v, b.v))
}

// Mul returns a*b.
func (a Int) Mul(b Int) Int {
	return a.combine(b, new(big.Int).Mul(a.v, b.v))
}

// Div returns the floor of a/b.
func (a Int) Div(b Int) Int {
	return a.combine(b, new(big.Int).Div(a.v, b.v))
}

// Mod returns a mod b, in [0, b).
func (a Int) Mod(b Int) Int {
	return a.combine(b, new(big.Int).Mod(a.v, b.v))
}

// combine drops hexWidth unless the receiver's width is wide enough to canonically represent
// the result, which keeps a fixed-width receiver's padding (e.g. after Mod(N)) without
// over-claiming width for results that grew past it. The other operand's width is not consulted.
func (a Int) combine(_ Int, r *big.Int) Int {
	if a.hexWidth != nil && len(r.Text(16)) <= *a.hexWidth {
		w := *a.hexWidth
		return Int{v: r, hexWidth: &w}
	}

	return Int{v: r}
}

// ModPow returns (a^exp) mod m, in [0, m). exp is itself an Int; use ModPowUint64 for a native
// exponent.
func (a Int) ModPow(exp, m Int) Int {
	return Int{v: new(big.Int).Exp(a.v, exp.v, m.v)}
}

// ModPowUint64 returns (a^exp) mod m for a native exponent.
func (a Int) ModPowUint64(exp uint64, m Int) Int {
	return Int{v: new(big.Int).Exp(a.v, new(big.Int).SetUint64(exp), m.v)}
}

// ModInverse returns a^-1 mod m via Fermat's little theorem (a^(m-2) mod m), which is only
// correct when m is prime. Callers with a composite or unknown modulus MUST use the extended
// Euclidean algorithm instead; see spec §9.
func (a Int) ModInverse(m Int) (Int, error) {
	if new(big.Int).GCD(nil, nil, a.v, m.v).Cmp(big.NewInt(1)) != 0 {
		return Int{}, ErrNoInverse
	}

	exp := new(big.Int).Sub(m.v, big.NewInt(2))

	return Int{v: new(big.Int).Exp(a.v, exp, m.v)}, nil
}

// Xor returns the bitwise xor of a and b, interpreting both as non-negative integers.
func (a Int) Xor(b Int) Int {
	return Int{v: new(big.Int).Xor(a.v, b.v)}
}

// Eq reports whether a == b.
func (a Int) Eq(b Int) bool {
	return a.v.Cmp(b.v) == 0
}

// Lt reports whether a < b.
func (a Int) Lt(b Int) bool {
	return a.v.Cmp(b.v) < 0
}

// Gt reports whether a > b.
func (a Int) Gt(b Int) bool {
	return a.v.Cmp(b.v) > 0
}

// IsZero reports whether a == 0.
func (a Int) IsZero() bool {
	return a.v.Sign() == 0
}

// String implements fmt.Stringer, delegating to ToHex.
func (a Int) String() string {
	return a.ToHex()
}
