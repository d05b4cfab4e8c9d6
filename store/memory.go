// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package store

import (
	"context"
	"sync"
)

// Memory is a store in memory.
type Memory struct {
	mu   sync.Mutex
	keys map[string]string
}

// NewMemory returns an empty store in memory.
func NewMemory() *Memory {
	return &Memory{
		keys: make(map[string]string),
	}
}

// Get returns the value of a key.
func (m *Memory) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.keys[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set sets the value of a key.
func (m *Memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.keys[key] = value
	return nil
}

// Delete removes a key.
func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.keys, key)
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
