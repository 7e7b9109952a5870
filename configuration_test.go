// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The O-SRP Authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package osrp

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfigurationMatchesScenarios(t *testing.T) {
	conf := DefaultConfiguration()

	if conf.RateWindow != 60*time.Second {
		t.Errorf("RateWindow = %v, want 60s", conf.RateWindow)
	}

	if conf.RateMaxRequests != 3 {
		t.Errorf("RateMaxRequests = %d, want 3", conf.RateMaxRequests)
	}
}

func TestNewServerRejectsNonPositiveRateWindow(t *testing.T) {
	conf := DefaultConfiguration()
	conf.RateWindow = 0

	if _, err := NewServer(conf); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("got %v, want ErrConfiguration", err)
	}
}

func TestNewServerRejectsNonPositiveRateMax(t *testing.T) {
	conf := DefaultConfiguration()
	conf.RateMaxRequests = 0

	if _, err := NewServer(conf); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("got %v, want ErrConfiguration", err)
	}
}

func TestNewServerRejectsWrongLengthOPRFPrivateKey(t *testing.T) {
	if _, err := NewServer(nil, WithOPRFPrivateKey([]byte("too-short"))); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("got %v, want ErrConfiguration", err)
	}
}

func TestWithOPRFPrivateKeyIsHonored(t *testing.T) {
	seed, err := NewServer(nil)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}

	key := seed.OPRFPrivateKey()

	s1, err := NewServer(nil, WithOPRFPrivateKey(key))
	if err != nil {
		t.Fatalf("NewServer with injected key: %v", err)
	}

	s2, err := NewServer(nil, WithOPRFPrivateKey(key))
	if err != nil {
		t.Fatalf("NewServer with injected key: %v", err)
	}

	client := newTestClient(t)

	state, req, err := client.BlindEvalOPRFInput([]byte("shared-key-probe"))
	if err != nil {
		t.Fatalf("BlindEvalOPRFInput: %v", err)
	}

	resp1, err := s1.PerformOPRFEval("u", req)
	if err != nil {
		t.Fatalf("PerformOPRFEval: %v", err)
	}

	out1, err := client.FinalizeOPRF(state, resp1)
	if err != nil {
		t.Fatalf("FinalizeOPRF: %v", err)
	}

	state2, req2, err := client.BlindEvalOPRFInput([]byte("shared-key-probe"))
	if err != nil {
		t.Fatalf("BlindEvalOPRFInput: %v", err)
	}

	resp2, err := s2.PerformOPRFEval("u", req2)
	if err != nil {
		t.Fatalf("PerformOPRFEval: %v", err)
	}

	out2, err := client.FinalizeOPRF(state2, resp2)
	if err != nil {
		t.Fatalf("FinalizeOPRF: %v", err)
	}

	if out1 != out2 {
		t.Fatal("two servers sharing the same injected OPRF key must produce identical outputs")
	}
}
