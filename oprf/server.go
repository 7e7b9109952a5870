// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The O-SRP Authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package oprf

import (
	"fmt"

	group "github.com/bytemare/crypto"
)

// Request is a client's blinded OPRF input, opaque to the server beyond its group membership.
type Request struct {
	element *group.Element
}

// Serialize returns the wire encoding of the request.
func (r *Request) Serialize() []byte {
	return r.element.Encode()
}

// Evaluation is the server's blind evaluation of a Request, opaque to the client until
// unblinded by Client.Finalize.
type Evaluation struct {
	element *group.Element
}

// Serialize returns the wire encoding of the evaluation.
func (e *Evaluation) Serialize() []byte {
	return e.element.Encode()
}

// Server holds a long-lived OPRF private key and evaluates blinded requests under it. It has
// no other mutable state; concurrent calls are safe iff the underlying group arithmetic is,
// which github.com/bytemare/crypto guarantees for its exported operations.
type Server struct {
	suite      Ciphersuite
	privateKey *group.Scalar
}

// NewServer constructs a Server for suite. If privateKey is nil, a fresh uniformly random key
// is generated; otherwise privateKey must be the KeyLength-byte encoding of a nonzero scalar.
func NewServer(suite Ciphersuite, privateKey []byte) (*Server, error) {
	g := suite.group()

	if privateKey == nil {
		return &Server{suite: suite, privateKey: g.NewScalar().Random()}, nil
	}

	sk := g.NewScalar()
	if err := sk.Decode(privateKey); err != nil {
		return nil, fmt.Errorf("%w: invalid private key: %w", ErrCryptoError, err)
	}

	return &Server{suite: suite, privateKey: sk}, nil
}

// PrivateKey returns the server's key, for operator backup per spec §4.6 ("exposed read-only
// for operator backup"). Callers MUST treat this the same as any other long-term secret.
func (s *Server) PrivateKey() []byte {
	return s.privateKey.Encode()
}

// DeserializeRequest parses a wire-encoded Request.
func (s *Server) DeserializeRequest(b []byte) (*Request, error) {
	el := s.suite.group().NewElement()
	if err := el.Decode(b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	return &Request{element: el}, nil
}

// BlindEvaluate evaluates the blinded request under the server's private key.
func (s *Server) BlindEvaluate(req *Request) (*Evaluation, error) {
	if req.element.IsIdentity() {
		return nil, fmt.Errorf("%w: blinded element is the group identity", ErrCryptoError)
	}

	return &Evaluation{element: req.element.Multiply(s.privateKey)}, nil
}

// SerializeResponse is a convenience alias for Evaluation.Serialize, matching spec §4.3's
// three-step shape (deserialize request -> blind-evaluate -> serialize response).
func (s *Server) SerializeResponse(e *Evaluation) []byte {
	return e.Serialize()
}
