// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The O-SRP Authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package ratelimit implements the per-username sliding-window counter that gates OPRF
// evaluation (spec §4.7). A single Limiter may be shared by many concurrent SRPServer sessions.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter gates requests per username within a sliding window. The zero value is not valid;
// use New.
type Limiter struct {
	mu      sync.Mutex
	entries map[string][]int64
	window  int64
	max     int
}

// New returns a Limiter allowing at most max requests per username within window.
func New(window time.Duration, max int) *Limiter {
	return &Limiter{
		entries: make(map[string][]int64),
		window:  window.Milliseconds(),
		max:     max,
	}
}

// CheckAndRecord trims timestamps for username older than now-window, and - if fewer than max
// remain - records now and returns true. It returns false, recording nothing, if the window is
// already saturated. now is a millisecond timestamp; callers own their clock source (spec §4.7
// prefers monotonic, tolerates wall-clock that never rewinds observably within a window).
func (l *Limiter) CheckAndRecord(username string, nowMs int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := nowMs - l.window
	ts := l.entries[username]

	i := 0
	for i < len(ts) && ts[i] < cutoff {
		i++
	}

	ts = ts[i:]

	if len(ts) >= l.max {
		if len(ts) == 0 {
			delete(l.entries, username)
		} else {
			l.entries[username] = ts
		}

		return false
	}

	ts = append(ts, nowMs)
	l.entries[username] = ts

	return true
}

// Now returns the current time as a millisecond timestamp, the unit CheckAndRecord expects.
func Now() int64 {
	return time.Now().UnixMilli()
}
