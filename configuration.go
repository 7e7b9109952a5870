// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The O-SRP Authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package osrp

import (
	"log/slog"
	"time"

	"github.com/oprfsrp/osrp/oprf"
)

// Configuration holds the recognized options of spec §6: the rate limiter's window and budget,
// the OPRF ciphersuite and optional injected private key, and the ambient logger. The group
// parameters (N, g) are fixed at build time (internal/params) and are deliberately absent here -
// spec §6 is explicit that changing them breaks interop with any existing verifier store.
type Configuration struct {
	// Logger receives non-secret operational events. Defaults to slog.Default() if nil.
	Logger *slog.Logger

	// OPRFPrivateKey, if non-nil, is used as the server's OPRF private key instead of generating
	// a fresh one. Must be KeyLength bytes.
	OPRFPrivateKey []byte

	// RateWindow is the sliding-window length for per-username OPRF evaluations.
	RateWindow time.Duration

	// RateMaxRequests is the maximum number of successful OPRF evaluations per username per
	// RateWindow.
	RateMaxRequests int

	// OPRFCiphersuite selects the OPRF group and hash. Only oprf.P256SHA256 is defined.
	OPRFCiphersuite oprf.Ciphersuite
}

// DefaultConfiguration returns the configuration scenario S1-S6 assume: a 60-second window
// admitting 3 OPRF evaluations per username, P-256/SHA-256, and the default logger.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		RateWindow:      60 * time.Second,
		RateMaxRequests: 3,
		OPRFCiphersuite: oprf.P256SHA256,
		Logger:          slog.Default(),
	}
}

func (c *Configuration) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}

	return c.Logger
}

func (c *Configuration) validate() error {
	if c.RateWindow <= 0 {
		return ErrConfiguration.Join(ErrCodeConfiguration.New("rate_window_ms must be positive"))
	}

	if c.RateMaxRequests <= 0 {
		return ErrConfiguration.Join(ErrCodeConfiguration.New("rate_max_requests must be positive"))
	}

	if c.OPRFPrivateKey != nil && len(c.OPRFPrivateKey) != oprf.KeyLength {
		return ErrConfiguration.Join(ErrCodeConfiguration.New("oprf_private_key has the wrong scalar length"))
	}

	if c.OPRFCiphersuite == 0 {
		c.OPRFCiphersuite = oprf.P256SHA256
	}

	return nil
}

// ServerOption overrides a field of the Configuration passed to NewServer.
type ServerOption func(*Configuration)

// WithOPRFPrivateKey injects an externally managed OPRF private key, per spec §6's
// oprf_private_key option. Rotating this key invalidates every verifier derived under the old
// one (spec §3).
func WithOPRFPrivateKey(key []byte) ServerOption {
	return func(c *Configuration) { c.OPRFPrivateKey = key }
}

// WithRateLimit overrides the sliding-window rate-limiter parameters.
func WithRateLimit(window time.Duration, maxRequests int) ServerOption {
	return func(c *Configuration) {
		c.RateWindow = window
		c.RateMaxRequests = maxRequests
	}
}

// WithLogger overrides the ambient logger.
func WithLogger(l *slog.Logger) ServerOption {
	return func(c *Configuration) { c.Logger = l }
}
