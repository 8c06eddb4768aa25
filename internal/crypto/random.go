// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// osRandomSource is the production [RandomSource], backed by the OS CSPRNG
// exposed through crypto/rand.
type osRandomSource struct {
	reader io.Reader
}

// NewOSRandomSource returns a [RandomSource] reading from crypto/rand.Reader.
func NewOSRandomSource() RandomSource {
	return &osRandomSource{reader: rand.Reader}
}

// Bytes implements [RandomSource]. It reads exactly n bytes from the CSPRNG
// and fails if the read comes up short.
func (s *osRandomSource) Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(s.reader, b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}

// Index implements [RandomSource] with exact rejection sampling: a 32-bit
// draw is rejected and redrawn while it falls into the excess range above
// the largest multiple of max that fits in 32 bits. This removes modulo
// bias entirely instead of merely shrinking it.
func (s *osRandomSource) Index(max int) (int, error) {
	if max <= 0 {
		return 0, nil
	}

	// Largest multiple of max representable in uint32.
	limit := (1 << 32) / uint64(max) * uint64(max)

	var buf [4]byte
	for {
		if _, err := io.ReadFull(s.reader, buf[:]); err != nil {
			return 0, fmt.Errorf("read random index: %w", err)
		}
		v := uint64(binary.BigEndian.Uint32(buf[:]))
		if v < limit {
			return int(v % uint64(max)), nil
		}
	}
}
