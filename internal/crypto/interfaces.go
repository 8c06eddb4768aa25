package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mocks.go -package=mock

import "github.com/MKhiriev/go-secret-vault/models"

// RandomSource is the injected source of cryptographic randomness.
// Production code uses the OS CSPRNG via [NewOSRandomSource]; tests may
// substitute a deterministic source. Nothing in this module reads
// randomness any other way.
type RandomSource interface {
	// Bytes returns n cryptographically secure random bytes.
	Bytes(n int) ([]byte, error)

	// Index returns a uniformly distributed integer in [0, max),
	// free of modulo bias. max <= 0 returns 0 without drawing randomness.
	Index(max int) (int, error)
}

// KeyChain turns a master password into the two derived values of the
// zero-knowledge scheme: the vault encryption key (never leaves the client)
// and the auth hash (the only value a server ever sees).
//
//	Salt     = GenerateSalt()                      (once per vault)
//	Key      = DeriveKey(password, salt)           (every unlock)
//	AuthHash = HashPasswordForAuth(password, salt) (login verifier)
type KeyChain interface {
	// GenerateSalt produces a fresh random salt, base64-encoded.
	// The salt is not a secret; it exists so identical passwords
	// derive different keys.
	GenerateSalt() (string, error)

	// DeriveKey stretches the master password into a 256-bit encryption
	// key. Deterministic for identical inputs. The key exists only in
	// client memory and is never transmitted or persisted.
	DeriveKey(password, salt string) ([]byte, error)

	// HashPasswordForAuth derives the server-side login verifier.
	// It is domain-separated from DeriveKey: possession of the hash
	// allows neither recovering nor substituting for the encryption key.
	HashPasswordForAuth(password, salt string) (string, error)
}

// Cipher performs authenticated encryption of a single text value under a
// derived key, drawing a fresh nonce per call.
type Cipher interface {
	// Encrypt rejects empty or whitespace-only plaintext with
	// [ErrEmptyPlaintext], then encrypts under key with AES-256-GCM and a
	// fresh random nonce. Ciphertext and nonce are returned separately,
	// base64-encoded.
	Encrypt(plaintext string, key []byte) (models.EncryptedBlob, error)

	// Decrypt reverses Encrypt. It fails with an error (never a garbage
	// result) when the key is wrong, the ciphertext or IV was altered in
	// any byte, or either input is empty or malformed.
	Decrypt(ciphertext, iv string, key []byte) (string, error)
}
