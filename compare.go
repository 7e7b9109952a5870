// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The O-SRP Authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package osrp

import (
	"crypto/subtle"
	"encoding/hex"

	"github.com/oprfsrp/osrp/bigint"
	"github.com/oprfsrp/osrp/hash"
	"github.com/oprfsrp/osrp/internal/params"
)

// sessionProof computes the client proof M (and, identically, the server's expected M'):
// H( H(N) xor H(g), H(username), salt, A, B, K ) (spec §4.5 step 6 / §4.6 step 5). Both
// SRPClient.DeriveSession and SRPServer.DeriveSession compute the exact same quantity from their
// own view of A, B, and K, so they share this helper rather than drifting apart.
func sessionProof(p *params.Params, username string, salt, publicA, publicB, k bigint.Int) bigint.Int {
	hn := hash.H(hash.BigInt(p.N))
	hg := hash.H(hash.BigInt(p.G))
	hUsername := hash.H(hash.Str(username))

	return hash.H(
		hash.BigInt(hn.Xor(hg)),
		hash.BigInt(hUsername),
		hash.BigInt(salt),
		hash.BigInt(publicA),
		hash.BigInt(publicB),
		hash.BigInt(k),
	)
}

// constantTimeHexEqual reports whether a and b decode to the same bytes, using a constant-time
// comparison over the decoded bytes per spec §7 ("constant-time equality is required for M and
// P checks"). Malformed hex or a length mismatch is treated as inequality.
func constantTimeHexEqual(a, b string) bool {
	ab, errA := hex.DecodeString(a)
	bb, errB := hex.DecodeString(b)

	if errA != nil || errB != nil || len(ab) != len(bb) {
		return false
	}

	return subtle.ConstantTimeCompare(ab, bb) == 1
}
