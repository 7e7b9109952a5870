// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The O-SRP Authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package osrp

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/oprfsrp/osrp/bigint"
	"github.com/oprfsrp/osrp/hash"
	"github.com/oprfsrp/osrp/internal/params"
	"github.com/oprfsrp/osrp/oprf"
)

// ClientEphemeral is the per-login keypair a SRPClient generates and discards after session
// derivation. Secret MUST NOT be reused across attempts or logged.
type ClientEphemeral struct {
	Public string // A, hex
	Secret string // a, hex
}

// ClientSession is the outcome of SRPClient.DeriveSession: the shared session key and the
// client's proof of it.
type ClientSession struct {
	K string // hex
	M string // hex
}

// SRPClient implements the client half of the protocol: salt and verifier derivation, OPRF
// blinding, ephemeral generation, and session/proof computation (spec §4.5). It holds no
// long-lived secret of its own; every method is a pure function of its arguments plus the
// process-wide group parameters.
type SRPClient struct {
	conf *Configuration
	oprf *oprf.Client
}

// NewClient returns a new SRPClient for conf. A nil conf uses DefaultConfiguration.
func NewClient(conf *Configuration) (*SRPClient, error) {
	if conf == nil {
		conf = DefaultConfiguration()
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}

	return &SRPClient{
		conf: conf,
		oprf: oprf.NewClient(conf.OPRFCiphersuite),
	}, nil
}

// GenerateSalt returns a fresh random salt, hex-encoded.
func (c *SRPClient) GenerateSalt() (string, error) {
	salt, err := bigint.Random(params.Get().HashOutputBytes)
	if err != nil {
		return "", fmt.Errorf("osrp: generating salt: %w", err)
	}

	return salt.ToHex(), nil
}

// DerivePrivateKey computes sk = H(salt, H(username ":" password)), hex-encoded.
func (c *SRPClient) DerivePrivateKey(saltHex, username, password string) (string, error) {
	salt, err := bigint.FromHex(saltHex)
	if err != nil {
		return "", ErrBadInput.Join(err)
	}

	identity := hash.H(hash.Str(username + ":" + password))
	sk := hash.H(hash.BigInt(salt), hash.BigInt(identity))

	return sk.ToHex(), nil
}

// DerivePrivateVerifier computes v' = g^sk mod N and returns its raw big-endian bytes - the
// value fed into the OPRF as input.
func (c *SRPClient) DerivePrivateVerifier(skHex string) ([]byte, error) {
	sk, err := bigint.FromHex(skHex)
	if err != nil {
		return nil, ErrBadInput.Join(err)
	}

	p := params.Get()

	return p.G.ModPow(sk, p.N).ToBytes(), nil
}

// BlindEvalOPRFInput blinds vPrimeBytes for one OPRF server round trip, returning the state to
// finalize with and the serialized request to send.
func (c *SRPClient) BlindEvalOPRFInput(vPrimeBytes []byte) (*oprf.BlindState, []byte, error) {
	state, req, err := c.oprf.Blind(vPrimeBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrOPRF, err)
	}

	return state, req, nil
}

// FinalizeOPRF consumes state and the server's response, returning the PRF output as lowercase
// hex.
func (c *SRPClient) FinalizeOPRF(state *oprf.BlindState, response []byte) (string, error) {
	out, err := c.oprf.Finalize(state, response)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOPRF, err)
	}

	return hex.EncodeToString(out), nil
}

// DeriveVerifierHash concatenates the given hex strings with no separator, reinterprets the
// concatenation as one BigInt, and returns H of it as hex. This is the exact "hash one integer
// formed by hex concatenation" contract of spec §4.5 - not a length-prefixed hash of n separate
// values - and MUST be replicated byte-for-byte for interop (see spec §9).
func (c *SRPClient) DeriveVerifierHash(parts ...string) (string, error) {
	n, err := bigint.FromHex(strings.Join(parts, ""))
	if err != nil {
		return "", ErrBadInput.Join(err)
	}

	return hash.H(hash.BigInt(n)).ToHex(), nil
}

// DerivePublicVerifier computes v = g^x mod N.
func (c *SRPClient) DerivePublicVerifier(xHex string) (string, error) {
	x, err := bigint.FromHex(xHex)
	if err != nil {
		return "", ErrBadInput.Join(err)
	}

	p := params.Get()

	return p.G.ModPow(x, p.N).ToHex(), nil
}

// GenerateEphemeral draws a fresh client ephemeral (a, A = g^a mod N). a MUST NOT be reused
// across login attempts.
func (c *SRPClient) GenerateEphemeral() (*ClientEphemeral, error) {
	p := params.Get()

	a, err := bigint.Random(p.HashOutputBytes)
	if err != nil {
		return nil, fmt.Errorf("osrp: generating client ephemeral: %w", err)
	}

	A := p.G.ModPow(a, p.N)

	c.conf.logger().Debug("generated client ephemeral")

	return &ClientEphemeral{Public: A.ToHex(), Secret: a.ToHex()}, nil
}

// DeriveSession computes the shared session key and client proof from the client's own
// ephemeral secret, the server's public ephemeral B, the user's salt and username, and the
// private key x (spec §4.5, step 6). It fails with ErrInvalidServerEphemeral if B is congruent
// to 0 mod N, before any further computation.
func (c *SRPClient) DeriveSession(aHex, publicBHex, saltHex, username, xHex string) (*ClientSession, error) {
	p := params.Get()

	a, err := bigint.FromHex(aHex)
	if err != nil {
		return nil, ErrBadInput.Join(err)
	}

	B, err := bigint.FromHex(publicBHex)
	if err != nil {
		return nil, ErrBadInput.Join(err)
	}

	salt, err := bigint.FromHex(saltHex)
	if err != nil {
		return nil, ErrBadInput.Join(err)
	}

	x, err := bigint.FromHex(xHex)
	if err != nil {
		return nil, ErrBadInput.Join(err)
	}

	if B.Mod(p.N).IsZero() {
		return nil, ErrInvalidServerEphemeral
	}

	A := p.G.ModPow(a, p.N)
	u := hash.H(hash.BigInt(A), hash.BigInt(B))

	kgx := p.K.Mul(p.G.ModPow(x, p.N)).Mod(p.N)
	base := B.Add(p.N).Sub(kgx).Mod(p.N)
	exp := a.Add(u.Mul(x))

	s := base.ModPow(exp, p.N)
	k := hash.H(hash.BigInt(s))
	m := sessionProof(p, username, salt, A, B, k)

	return &ClientSession{K: k.ToHex(), M: m.ToHex()}, nil
}

// VerifySession checks the server's proof against the session computed by DeriveSession,
// failing with ErrBadServerProof on mismatch using a constant-time byte comparison. publicAHex
// is the client's own public ephemeral A, not the secret a.
func (c *SRPClient) VerifySession(publicAHex string, session *ClientSession, serverProofHex string) error {
	A, err := bigint.FromHex(publicAHex)
	if err != nil {
		return ErrBadInput.Join(err)
	}

	m, err := bigint.FromHex(session.M)
	if err != nil {
		return ErrBadInput.Join(err)
	}

	k, err := bigint.FromHex(session.K)
	if err != nil {
		return ErrBadInput.Join(err)
	}

	expected := hash.H(hash.BigInt(A), hash.BigInt(m), hash.BigInt(k))

	if !constantTimeHexEqual(expected.ToHex(), serverProofHex) {
		return ErrBadServerProof
	}

	return nil
}
