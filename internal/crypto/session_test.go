package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestSession_KeyAvailableUntilClose(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, 32)
	s := NewSession(key)

	got, err := s.Key()
	if err != nil {
		t.Fatalf("Key error: %v", err)
	}
	if !bytes.Equal(got, bytes.Repeat([]byte{0x42}, 32)) {
		t.Fatalf("key mismatch before close")
	}

	s.Close()

	if _, err := s.Key(); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("Key after Close error = %v, want ErrSessionClosed", err)
	}
}

func TestSession_CloseZeroesKey(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, 32)
	s := NewSession(key)

	s.Close()

	// The session owned this slice; after Close it must be wiped.
	if !bytes.Equal(key, make([]byte, 32)) {
		t.Fatalf("expected key material to be zeroed on close")
	}
}

func TestSession_CloseIsIdempotent(t *testing.T) {
	s := NewSession(bytes.Repeat([]byte{0x01}, 32))

	s.Close()
	s.Close() // must not panic

	if _, err := s.Key(); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
}

func TestSecureZero(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}
	SecureZero(b)
	if !bytes.Equal(b, make([]byte, 5)) {
		t.Fatalf("SecureZero left residue: %v", b)
	}
}
