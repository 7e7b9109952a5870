// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The O-SRP Authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package hash_test

import (
	"testing"

	"github.com/oprfsrp/osrp/bigint"
	"github.com/oprfsrp/osrp/hash"
)

func TestDeterministic(t *testing.T) {
	a := hash.H(hash.Str("alpha"), hash.Str("beta"))
	b := hash.H(hash.Str("alpha"), hash.Str("beta"))

	if !a.Eq(b) {
		t.Fatalf("H is not deterministic: %v != %v", a, b)
	}
}

func TestOutputWidth(t *testing.T) {
	d := hash.H(hash.Str("x"))

	if len(d.ToBytes()) > hash.OutputBytes {
		t.Fatalf("digest longer than OutputBytes: %d", len(d.ToBytes()))
	}

	if len(d.ToHex()) != 2*hash.OutputBytes {
		t.Fatalf("ToHex width = %d, want %d", len(d.ToHex()), 2*hash.OutputBytes)
	}
}

func TestOrderMatters(t *testing.T) {
	a := hash.H(hash.Str("alpha"), hash.Str("beta"))
	b := hash.H(hash.Str("beta"), hash.Str("alpha"))

	if a.Eq(b) {
		t.Fatalf("H(alpha,beta) == H(beta,alpha), order should matter")
	}
}

func TestBigIntAbsorbedAsHexBytes(t *testing.T) {
	n, _ := bigint.FromHex("0a")

	viaBigInt := hash.H(hash.BigInt(n))
	viaBytes := hash.H(hash.Bytes("0a"))

	if !viaBigInt.Eq(viaBytes) {
		t.Fatalf("BigInt(0x0a) must absorb identically to the literal bytes \"0a\"")
	}
}

func TestFromAnyRejectsUnknownKind(t *testing.T) {
	if _, err := hash.FromAny(42); err == nil {
		t.Fatal("expected ErrBadArgumentKind for an int argument")
	}
}
