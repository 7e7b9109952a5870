// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The O-SRP Authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package oprf wraps a black-box elliptic-curve OPRF primitive (any conforming VOPRF-style
// construction over a prime-order group with SHA-256 is acceptable, per spec §1) into the two
// narrow roles O-SRP needs: a server that blind-evaluates requests under a long-lived key
// (C5, spec §4.3), and a client that blinds inputs and finalizes responses (C6, spec §4.4).
//
// The underlying group arithmetic is github.com/bytemare/crypto's P-256 implementation; this
// package implements the base (non-verifiable) OPRF mode of draft-irtf-cfrg-voprf over it, which
// is all the two wrapper contracts in spec §4.3/§4.4 require.
package oprf

import (
	"crypto"
	"fmt"

	group "github.com/bytemare/crypto"
	bmhash "github.com/bytemare/hash"
)

// Ciphersuite identifies the OPRF-compatible prime-order group and hash. O-SRP fixes this to
// P-256/SHA-256, per spec §1 and §4.3, but the type stays open for future ciphersuite additions.
type Ciphersuite byte

const (
	// P256SHA256 is the only ciphersuite spec.md requires: NIST P-256 with SHA-256.
	P256SHA256 Ciphersuite = iota + 1
)

// KeyLength is the encoded length, in bytes, of a P-256 scalar - the length OPRF private keys
// and OPRFClient blinds use.
const KeyLength = 32

const contextString = "OSRP-OPRFV1-P256-SHA256"

func (c Ciphersuite) group() group.Group {
	switch c {
	case P256SHA256:
		return group.P256Sha256
	default:
		panic(fmt.Sprintf("oprf: unsupported ciphersuite %d", byte(c)))
	}
}

func (c Ciphersuite) hashToGroupDST() []byte {
	return []byte("HashToGroup-" + contextString)
}

func lengthPrefix(b []byte) []byte {
	out := make([]byte, 2, 2+len(b))
	out[0] = byte(len(b) >> 8)
	out[1] = byte(len(b))

	return append(out, b...)
}

// finalizeTranscript hashes (length-prefixed input, length-prefixed unblindedElement,
// contextString + "-Finalize") in the shape of draft-irtf-cfrg-voprf's Finalize, grounded on the teacher's
// internal/oprf.(*oprf).hashTranscript.
func finalizeTranscript(input, unblinded []byte) []byte {
	h := bmhash.FromCrypto(crypto.SHA256).GetHashFunction()
	h.Write(lengthPrefix(input))
	h.Write(lengthPrefix(unblinded))
	h.Write([]byte(contextString + "-Finalize"))

	return h.Sum(nil)
}
