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
	"fmt"
	"testing"
)

func TestErrorCodeIsMatchesWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", ErrBadClientProof)

	if !errors.Is(wrapped, ErrCodeBadClientProof) {
		t.Fatal("errors.Is against the bare ErrorCode should match a wrapped *Error of that code")
	}

	if !errors.Is(wrapped, ErrBadClientProof) {
		t.Fatal("errors.Is against the sentinel *Error should match a wrapped *Error of the same code")
	}
}

func TestErrorCodeDistinctCodesDoNotMatch(t *testing.T) {
	if errors.Is(ErrBadClientProof, ErrCodeBadServerProof) {
		t.Fatal("distinct error codes must not match")
	}
}

func TestErrorMessageDefaultsToCodeName(t *testing.T) {
	e := ErrCodeRateLimited.New("")

	if e.Message != ErrCodeRateLimited.String() {
		t.Errorf("Message = %q, want %q", e.Message, ErrCodeRateLimited.String())
	}
}

func TestErrorJoinPreservesIs(t *testing.T) {
	joined := ErrRateLimited.Join(errors.New("username=testuser"))

	if !errors.Is(joined, ErrCodeRateLimited) {
		t.Fatal("Join should preserve errors.Is against the original code")
	}
}
