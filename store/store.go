// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The O-SRP Authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package store defines the storage boundary for user records (spec §6: "Persistent storage of
// user records" is out of scope for the core; we specify only the record shape and this
// interface) and ships an in-memory reference implementation suitable for tests.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/oprfsrp/osrp"
)

// ErrNotFound is returned when a username has no stored record.
var ErrNotFound = errors.New("store: user record not found")

// ErrAlreadyExists is returned by Put when a username already has a stored record.
var ErrAlreadyExists = errors.New("store: user record already exists")

// UserRecordStore persists and retrieves the UserRecord created at registration and read at
// login (spec §3, §6). Implementations MUST be safe for concurrent use: a single SRPServer may
// service many sessions concurrently.
type UserRecordStore interface {
	// Put stores record, failing with ErrAlreadyExists if the username is already registered.
	Put(ctx context.Context, record osrp.UserRecord) error

	// Get retrieves the record for username, failing with ErrNotFound if none exists.
	Get(ctx context.Context, username string) (osrp.UserRecord, error)
}

// MemoryUserRecordStore is an in-memory UserRecordStore. It is suitable for tests and
// demonstrations; it has no persistence and no eviction policy.
type MemoryUserRecordStore struct {
	mu      sync.RWMutex
	records map[string]osrp.UserRecord
}

// NewMemoryUserRecordStore returns an empty MemoryUserRecordStore.
func NewMemoryUserRecordStore() *MemoryUserRecordStore {
	return &MemoryUserRecordStore{records: make(map[string]osrp.UserRecord)}
}

// Put implements UserRecordStore.
func (m *MemoryUserRecordStore) Put(_ context.Context, record osrp.UserRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[record.Username]; exists {
		return ErrAlreadyExists
	}

	m.records[record.Username] = record

	return nil
}

// Get implements UserRecordStore.
func (m *MemoryUserRecordStore) Get(_ context.Context, username string) (osrp.UserRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[username]
	if !ok {
		return osrp.UserRecord{}, ErrNotFound
	}

	return record, nil
}
