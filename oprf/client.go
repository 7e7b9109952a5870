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
	"regexp"

	group "github.com/bytemare/crypto"
)

var hexLooking = regexp.MustCompile(`^[0-9a-fA-F]+$`)

// canonicalizeInput implements spec §4.4's hex auto-detection: an even-length input matching
// ^[0-9a-fA-F]+$ is decoded as hex; any other input (odd-length hex included) is used as its
// bytes unchanged. This is an intentional, documented ambiguity carried over from the reference
// implementation (spec §9). Blind applies it to every input, raw bytes included: there is no
// separate raw-bytes path, so a byte input made up only of ASCII hex digits, of even length, is
// hex-decoded as well.
func canonicalizeInput(input []byte) []byte {
	if len(input)%2 == 0 && hexLooking.Match(input) {
		decoded := make([]byte, len(input)/2)

		for i := range decoded {
			hi := fromHexDigit(input[2*i])
			lo := fromHexDigit(input[2*i+1])
			decoded[i] = hi<<4 | lo
		}

		return decoded
	}

	return input
}

func fromHexDigit(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}

// BlindState is the opaque, use-once client state a Blind/Finalize round trip carries. It MUST
// NOT be persisted or serialized off-process (spec §3). Finalize consumes it exactly once;
// re-use is a programming error surfaced as ErrBlindStateConsumed.
type BlindState struct {
	suite    Ciphersuite
	blind    *group.Scalar
	input    []byte
	consumed bool
}

// Client blinds inputs and finalizes server evaluations. It holds no long-lived secret; each
// Blind call produces an independent BlindState.
type Client struct {
	suite Ciphersuite
}

// NewClient returns a Client for suite.
func NewClient(suite Ciphersuite) *Client {
	return &Client{suite: suite}
}

// Blind masks input - first passed through canonicalizeInput's hex auto-detection, whatever its
// origin - and returns the state to finalize with plus the serialized request to send to an
// OPRFServer.
func (c *Client) Blind(input []byte) (*BlindState, []byte, error) {
	canon := canonicalizeInput(input)

	g := c.suite.group()
	blind := g.NewScalar().Random()

	p := g.HashToGroup(canon, c.suite.hashToGroupDST())
	blinded := p.Multiply(blind)

	state := &BlindState{suite: c.suite, blind: blind, input: canon}

	return state, blinded.Encode(), nil
}

// Finalize consumes state exactly once, unblinds response, and returns the PRF output bytes.
func (c *Client) Finalize(state *BlindState, response []byte) ([]byte, error) {
	if state.consumed {
		return nil, ErrBlindStateConsumed
	}

	state.consumed = true

	g := c.suite.group()

	el := g.NewElement()
	if err := el.Decode(response); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}

	unblinded := el.InvertMult(state.blind)

	return finalizeTranscript(state.input, unblinded.Encode()), nil
}
