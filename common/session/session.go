/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package session provides an in-memory implementation of
// interfaces.Session. It is the default token store for the client SDK;
// callers that need persistence can supply their own implementation
// (see cli/credentials for a bbolt-backed one).
package session

import (
	"sync"

	"github.com/OpsGate/OpsGate/common/interfaces"
)

var _ interfaces.Session = (*Memory)(nil)

type Memory struct {
	mu    sync.RWMutex
	token string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *Memory) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
}
