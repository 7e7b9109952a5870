// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The O-SRP Authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package params holds the process-wide, immutable SRP-6a group: the RFC 5054 3072-bit safe
// prime N, generator g=5, and multiplier k=H(N,g). It is initialized once via sync.Once and
// never mutated afterwards.
package params

import (
	"sync"

	"github.com/oprfsrp/osrp/bigint"
	"github.com/oprfsrp/osrp/hash"
)

// HashOutputBytes is the fixed digest width used by H and by every random value the protocol
// draws at this width (salts, ephemerals).
const HashOutputBytes = 32

// rfc5054N3072Hex is the RFC 5054 3072-bit safe prime, as published in appendix A of the RFC.
const rfc5054N3072Hex = "" +
	"FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD129024E088A67CC74020BBEA63B139B22514A0879" +
	"8E3404DDEF9519B3CD3A431B302B0A6DF25F14374FE1356D6D51C245E485B576625E7EC6F44C42E9A637ED6B" +
	"0BFF5CB6F406B7EDEE386BFB5A899FA5AE9F24117C4B1FE649286651ECE45B3DC2007CB8A163BF0598DA48361" +
	"C55D39A69163FA8FD24CF5F83655D23DCA3AD961C62F356208552BB9ED529077096966D670C354E4ABC9804F1" +
	"746C08CA18217C32905E462E36CE3BE39E772C180E86039B2783A2EC07A28FB5C55DF06F4C52C9DE2BCBF6955" +
	"817183995497CEA956AE515D2261898FA051015728E5A8AAAC42DAD33170D04507A33A85521ABDF1CBA64ECF" +
	"B850458DBEF0A8AEA71575D060C7DB3970F85A6E1E4C7ABF5AE8CDB0933D71E8C94E04A25619DCEE3D2261AD2" +
	"EE6BF12FFA06D98A0864D87602733EC86A64521F2B18177B200CBBE117577A615D6C770988C0BAD946E208E2" +
	"4FA074E5AB3143DB5BFCE0FD108E4B82D120A93AD2CAFFFFFFFFFFFFFFFF"

var (
	once sync.Once
	p    *Params
)

// Params is the process-wide SRP group. Construct it via Get.
type Params struct {
	N               bigint.Int
	G               bigint.Int
	K               bigint.Int
	HashOutputBytes int
}

// Get returns the singleton SRP group, initializing it on first call.
func Get() *Params {
	once.Do(func() {
		n, err := bigint.FromHex(rfc5054N3072Hex)
		if err != nil {
			panic("params: invalid embedded RFC 5054 prime: " + err.Error())
		}

		g, err := bigint.FromHex("05")
		if err != nil {
			panic("params: invalid generator: " + err.Error())
		}

		k := hash.H(hash.BigInt(n), hash.BigInt(g))

		p = &Params{
			N:               n,
			G:               g,
			K:               k,
			HashOutputBytes: HashOutputBytes,
		}
	})

	return p
}
