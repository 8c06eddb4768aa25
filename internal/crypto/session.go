// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"runtime"
	"sync"
)

// Session owns a derived key for the duration of one unlock. The key is
// held only in memory; Close zeroes it and makes the session unusable.
// Callers hand the session to engine calls instead of passing raw key
// bytes around, so there is exactly one place to discard.
type Session struct {
	mu     sync.RWMutex
	key    []byte
	closed bool
}

// NewSession wraps key in a Session. The session takes ownership: the
// caller must not retain or reuse the slice.
func NewSession(key []byte) *Session {
	return &Session{key: key}
}

// Key returns the derived key for an engine call, or [ErrSessionClosed]
// after Close. The returned slice is the session's own; callers must not
// hold it past the call that needs it.
func (s *Session) Key() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrSessionClosed
	}
	return s.key, nil
}

// Close zeroes the key and marks the session closed. Safe to call more
// than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	SecureZero(s.key)
	s.key = nil
	s.closed = true
}

// SecureZero overwrites b with zeros to clear sensitive material from
// memory. runtime.KeepAlive prevents the compiler from eliding the wipe.
// Defense in depth only: Go gives no hard guarantee against copies.
func SecureZero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
