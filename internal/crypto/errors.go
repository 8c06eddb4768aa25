package crypto

import "errors"

var (
	// ErrEmptyPlaintext is returned when Encrypt is called with an empty or
	// whitespace-only value. Empty semantic content is represented by
	// omitting the field, never by encrypting an empty string.
	ErrEmptyPlaintext = errors.New("plaintext is empty or whitespace-only")

	// ErrMalformedCiphertext is returned when a ciphertext or IV cannot be
	// decoded or is structurally too short. Raised before any cipher work.
	ErrMalformedCiphertext = errors.New("malformed ciphertext or iv")

	// ErrDecryptionFailed is returned when GCM tag verification fails:
	// wrong key, altered ciphertext, or altered IV. The causes are
	// deliberately not distinguished.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKeyLength is returned when a key of the wrong size is
	// supplied to the cipher.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrSessionClosed is returned when a closed session's key is requested.
	ErrSessionClosed = errors.New("session is closed")
)
