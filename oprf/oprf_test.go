// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The O-SRP Authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package oprf_test

import (
	"bytes"
	"testing"

	"github.com/oprfsrp/osrp/oprf"
)

func TestRoundTrip(t *testing.T) {
	server, err := oprf.NewServer(oprf.P256SHA256, nil)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}

	client := oprf.NewClient(oprf.P256SHA256)

	state, reqBytes, err := client.Blind([]byte("private-verifier-bytes"))
	if err != nil {
		t.Fatalf("Blind: %v", err)
	}

	req, err := server.DeserializeRequest(reqBytes)
	if err != nil {
		t.Fatalf("DeserializeRequest: %v", err)
	}

	eval, err := server.BlindEvaluate(req)
	if err != nil {
		t.Fatalf("BlindEvaluate: %v", err)
	}

	out, err := client.Finalize(state, server.SerializeResponse(eval))
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if len(out) == 0 {
		t.Fatal("Finalize returned empty output")
	}
}

func TestBlindStateIsUseOnce(t *testing.T) {
	server, _ := oprf.NewServer(oprf.P256SHA256, nil)
	client := oprf.NewClient(oprf.P256SHA256)

	state, reqBytes, _ := client.Blind([]byte("input"))
	req, _ := server.DeserializeRequest(reqBytes)
	eval, _ := server.BlindEvaluate(req)
	resp := server.SerializeResponse(eval)

	if _, err := client.Finalize(state, resp); err != nil {
		t.Fatalf("first Finalize: %v", err)
	}

	if _, err := client.Finalize(state, resp); err == nil {
		t.Fatal("second Finalize on the same BlindState must fail")
	}
}

func TestDifferentKeysYieldDifferentOutputs(t *testing.T) {
	s1, _ := oprf.NewServer(oprf.P256SHA256, nil)
	s2, _ := oprf.NewServer(oprf.P256SHA256, nil)

	c1 := oprf.NewClient(oprf.P256SHA256)
	c2 := oprf.NewClient(oprf.P256SHA256)

	state1, req1, _ := c1.Blind([]byte("same-input"))
	state2, req2, _ := c2.Blind([]byte("same-input"))

	r1, _ := s1.DeserializeRequest(req1)
	r2, _ := s2.DeserializeRequest(req2)

	e1, _ := s1.BlindEvaluate(r1)
	e2, _ := s2.BlindEvaluate(r2)

	out1, _ := c1.Finalize(state1, s1.SerializeResponse(e1))
	out2, _ := c2.Finalize(state2, s2.SerializeResponse(e2))

	if bytes.Equal(out1, out2) {
		t.Fatal("two independent server keys must not yield identical outputs")
	}
}

func TestDeserializeRequestRejectsGarbage(t *testing.T) {
	server, _ := oprf.NewServer(oprf.P256SHA256, nil)

	if _, err := server.DeserializeRequest([]byte("not a group element")); err == nil {
		t.Fatal("expected ErrBadRequest for malformed request bytes")
	}
}

func TestPrivateKeyInjection(t *testing.T) {
	server1, err := oprf.NewServer(oprf.P256SHA256, nil)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}

	key := server1.PrivateKey()

	server2, err := oprf.NewServer(oprf.P256SHA256, key)
	if err != nil {
		t.Fatalf("NewServer with injected key: %v", err)
	}

	client := oprf.NewClient(oprf.P256SHA256)

	state, reqBytes, _ := client.Blind([]byte("x"))
	req, _ := server1.DeserializeRequest(reqBytes)
	eval1, _ := server1.BlindEvaluate(req)

	req2, _ := server2.DeserializeRequest(reqBytes)
	eval2, _ := server2.BlindEvaluate(req2)

	if !bytes.Equal(eval1.Serialize(), eval2.Serialize()) {
		t.Fatal("two servers sharing the same injected key must evaluate identically")
	}

	_ = state
}
