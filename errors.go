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
	"log/slog"
	"strings"
)

// ErrorCode categorizes an O-SRP failure per the taxonomy of spec §7.
type ErrorCode byte //nolint:errname // this is an error code, not an error type.

const (
	// ErrCodeUnknown represents an unclassified error.
	ErrCodeUnknown ErrorCode = iota

	// ErrCodeConfiguration indicates an invalid Configuration.
	ErrCodeConfiguration

	// ErrCodeBadInput indicates malformed hex, non-hex characters, or a wrong argument kind to H.
	ErrCodeBadInput

	// ErrCodeInvalidClientEphemeral indicates A mod N == 0.
	ErrCodeInvalidClientEphemeral

	// ErrCodeInvalidServerEphemeral indicates B mod N == 0.
	ErrCodeInvalidServerEphemeral

	// ErrCodeBadClientProof indicates the server-side client-proof check failed.
	ErrCodeBadClientProof

	// ErrCodeBadServerProof indicates the client-side server-proof check failed.
	ErrCodeBadServerProof

	// ErrCodeRateLimited indicates an OPRF evaluation request was denied by the rate limiter.
	ErrCodeRateLimited

	// ErrCodeNoInverse indicates a BigInt modular inverse is undefined.
	ErrCodeNoInverse

	// ErrCodeOPRF indicates a failure surfaced from the OPRF layer (bad request, bad response,
	// or an underlying group/crypto error).
	ErrCodeOPRF
)

// String returns the ErrorCode's name in space-separated form.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeConfiguration:
		return "configuration error"
	case ErrCodeBadInput:
		return "bad input"
	case ErrCodeInvalidClientEphemeral:
		return "invalid client ephemeral"
	case ErrCodeInvalidServerEphemeral:
		return "invalid server ephemeral"
	case ErrCodeBadClientProof:
		return "bad client proof"
	case ErrCodeBadServerProof:
		return "bad server proof"
	case ErrCodeRateLimited:
		return "rate limited"
	case ErrCodeNoInverse:
		return "no modular inverse"
	case ErrCodeOPRF:
		return "oprf error"
	default:
		return "unknown error"
	}
}

// Error implements the error interface for ErrorCode directly, so a bare ErrorCode value is
// itself a usable sentinel.
func (c ErrorCode) Error() string { return c.String() }

// New constructs an *Error of this code. An empty message defaults to the code's name.
func (c ErrorCode) New(message string, errs ...error) *Error {
	if message == "" {
		message = c.String()
	}

	return &Error{Code: c, Message: message, Err: errors.Join(errs...)}
}

// Is lets a bare ErrorCode found in an error chain match a target that is the same ErrorCode or
// an *Error carrying that code. Matching errors.Is(err, SomeErrorCode) against an *Error in the
// chain is done by (*Error).Is.
func (c ErrorCode) Is(target error) bool {
	var code ErrorCode
	if errors.As(target, &code) {
		return c == code
	}

	var e *Error
	if errors.As(target, &e) {
		return c == e.Code
	}

	return false
}

// Error is a code-carrying O-SRP error. Session secrets are never attached to Err; only
// non-secret context (usernames, counts, the other party's malformed input) may be joined in.
type Error struct {
	Err     error
	Message string
	Code    ErrorCode
}

// Error implements the error interface, returning only the concise message. Call Unwrap to
// retrieve the underlying cause, if any.
func (e *Error) Error() string { return e.Message }

// Unwrap implements errors.Unwrap.
func (e *Error) Unwrap() error { return e.Err }

// Join returns a new error combining e with errs, for adding non-secret context at a call site.
func (e *Error) Join(errs ...error) error {
	return errors.Join(e, errors.Join(errs...))
}

// Is implements errors.Is against either a bare ErrorCode (matched on Code alone), or another
// *Error with the same Code and the same Message, compared case-insensitively.
func (e *Error) Is(target error) bool {
	var code ErrorCode
	if errors.As(target, &code) {
		return e.Code == code
	}

	var other *Error
	if errors.As(target, &other) {
		return e.Code == other.Code && strings.EqualFold(e.Message, other.Message)
	}

	return false
}

// LogValue implements slog.LogValuer. It emits the code, name and message, plus the wrapped
// cause's Error() string when Err is set; Err carries only non-secret context (see Error).
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("code", int(e.Code)),
		slog.String("code_name", e.Code.String()),
		slog.String("message", e.Message),
	}

	if e.Err != nil {
		attrs = append(attrs, slog.String("cause", e.Err.Error()))
	}

	return slog.GroupValue(attrs...)
}

var (
	// ErrConfiguration indicates the Configuration passed to NewClient/NewServer is invalid.
	ErrConfiguration = ErrCodeConfiguration.New("")

	// ErrBadInput indicates malformed hex, non-hex characters, or an unsupported argument kind.
	ErrBadInput = ErrCodeBadInput.New("")

	// ErrInvalidClientEphemeral indicates the client's A is congruent to 0 mod N.
	ErrInvalidClientEphemeral = ErrCodeInvalidClientEphemeral.New("")

	// ErrInvalidServerEphemeral indicates the server's B is congruent to 0 mod N.
	ErrInvalidServerEphemeral = ErrCodeInvalidServerEphemeral.New("")

	// ErrBadClientProof indicates the server rejected the client's proof M.
	ErrBadClientProof = ErrCodeBadClientProof.New("")

	// ErrBadServerProof indicates the client rejected the server's proof P.
	ErrBadServerProof = ErrCodeBadServerProof.New("")

	// ErrRateLimited indicates an OPRF evaluation request was denied by the per-username
	// sliding-window limiter.
	ErrRateLimited = ErrCodeRateLimited.New("")

	// ErrNoInverse indicates a BigInt modular inverse is undefined for the given modulus.
	ErrNoInverse = ErrCodeNoInverse.New("")

	// ErrOPRF indicates a failure surfaced from the OPRF layer.
	ErrOPRF = ErrCodeOPRF.New("")
)
