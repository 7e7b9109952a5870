// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The O-SRP Authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package osrp

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/oprfsrp/osrp/bigint"
	"github.com/oprfsrp/osrp/hash"
	"github.com/oprfsrp/osrp/internal/params"
	"github.com/oprfsrp/osrp/internal/ratelimit"
	"github.com/oprfsrp/osrp/oprf"
)

// ServerEphemeral is the per-login keypair a SRPServer generates and discards after session
// derivation. Secret MUST NOT be reused across attempts or logged.
type ServerEphemeral struct {
	Public string // B, hex
	Secret string // b, hex
}

// ServerSession is the outcome of SRPServer.DeriveSession: the shared session key and the
// server's proof of it.
type ServerSession struct {
	K string // hex
	P string // hex
}

// SRPServer implements the server half of the protocol (spec §4.6): it owns the OPRF server
// role and the per-username rate limiter, generates ephemerals against a stored verifier, and
// verifies the client's proof before ever emitting its own.
type SRPServer struct {
	conf       *Configuration
	oprfServer *oprf.Server
	limiter    *ratelimit.Limiter
}

// NewServer constructs a SRPServer. A nil conf uses DefaultConfiguration; opts are applied on
// top of it. If conf.OPRFPrivateKey is unset, a fresh private key is generated - retrieve it
// with OPRFPrivateKey for operator backup, since losing it invalidates every verifier derived
// under it.
func NewServer(conf *Configuration, opts ...ServerOption) (*SRPServer, error) {
	if conf == nil {
		conf = DefaultConfiguration()
	}

	for _, opt := range opts {
		opt(conf)
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}

	oprfServer, err := oprf.NewServer(conf.OPRFCiphersuite, conf.OPRFPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOPRF, err)
	}

	return &SRPServer{
		conf:       conf,
		oprfServer: oprfServer,
		limiter:    ratelimit.New(conf.RateWindow, conf.RateMaxRequests),
	}, nil
}

// OPRFPrivateKey returns the server's OPRF private key, for operator backup (spec §4.6).
// Callers MUST treat this the same as any other long-term secret.
func (s *SRPServer) OPRFPrivateKey() []byte {
	return s.oprfServer.PrivateKey()
}

// PerformOPRFEval checks and records against the per-username rate limiter, then
// deserializes, blind-evaluates, and serializes the OPRF round trip (spec §4.6, step 1).
func (s *SRPServer) PerformOPRFEval(username string, serializedRequest []byte) ([]byte, error) {
	if !s.limiter.CheckAndRecord(username, ratelimit.Now()) {
		s.conf.logger().Warn("oprf evaluation denied by rate limiter", "username", username)
		glog.V(2).Infof("osrp: rate limiter denied oprf evaluation for username=%s", username)

		return nil, ErrRateLimited
	}

	glog.V(2).Infof("osrp: rate limiter accepted oprf evaluation for username=%s", username)

	req, err := s.oprfServer.DeserializeRequest(serializedRequest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOPRF, err)
	}

	eval, err := s.oprfServer.BlindEvaluate(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOPRF, err)
	}

	return s.oprfServer.SerializeResponse(eval), nil
}

// GenerateEphemeral draws a fresh server ephemeral (b, B = (k*v + g^b) mod N) bound to the
// stored public verifier v. It rejects v == 0 with ErrBadInput.
func (s *SRPServer) GenerateEphemeral(vHex string) (*ServerEphemeral, error) {
	v, err := bigint.FromHex(vHex)
	if err != nil {
		return nil, ErrBadInput.Join(err)
	}

	if v.IsZero() {
		return nil, ErrBadInput.Join(ErrCodeBadInput.New("verifier must be nonzero"))
	}

	p := params.Get()

	b, err := bigint.Random(p.HashOutputBytes)
	if err != nil {
		return nil, fmt.Errorf("osrp: generating server ephemeral: %w", err)
	}

	B := p.K.Mul(v).Add(p.G.ModPow(b, p.N)).Mod(p.N)

	return &ServerEphemeral{Public: B.ToHex(), Secret: b.ToHex()}, nil
}

// DeriveSession recomputes B from the server's own ephemeral secret and the stored verifier
// (never trusting a transmitted B), checks the client's proof in constant time, and - only on
// success - returns the shared session key and the server's proof P (spec §4.6, steps 1-6). On
// a client-proof mismatch it fails with ErrBadClientProof and does not compute P.
func (s *SRPServer) DeriveSession(bHex, publicAHex, saltHex, username, vHex, clientProofHex string) (*ServerSession, error) {
	p := params.Get()

	b, err := bigint.FromHex(bHex)
	if err != nil {
		return nil, ErrBadInput.Join(err)
	}

	A, err := bigint.FromHex(publicAHex)
	if err != nil {
		return nil, ErrBadInput.Join(err)
	}

	salt, err := bigint.FromHex(saltHex)
	if err != nil {
		return nil, ErrBadInput.Join(err)
	}

	v, err := bigint.FromHex(vHex)
	if err != nil {
		return nil, ErrBadInput.Join(err)
	}

	if A.Mod(p.N).IsZero() {
		return nil, ErrInvalidClientEphemeral
	}

	B := p.K.Mul(v).Add(p.G.ModPow(b, p.N)).Mod(p.N)
	u := hash.H(hash.BigInt(A), hash.BigInt(B))

	av := A.Mul(v.ModPow(u, p.N)).Mod(p.N)
	s1 := av.ModPow(b, p.N)
	k := hash.H(hash.BigInt(s1))

	expectedM := sessionProof(p, username, salt, A, B, k)

	if !constantTimeHexEqual(expectedM.ToHex(), clientProofHex) {
		return nil, ErrBadClientProof
	}

	serverP := hash.H(hash.BigInt(A), hash.BigInt(expectedM), hash.BigInt(k))

	return &ServerSession{K: k.ToHex(), P: serverP.ToHex()}, nil
}
