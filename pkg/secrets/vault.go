package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

const (
	keySize = 32 // AES-256
	tagSize = 16 // GCM authentication tag
)

// DecryptionError is returned when a secret envelope is malformed or
// fails authentication.
type DecryptionError struct {
	Reason string
	Err    error
}

func (e *DecryptionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to decrypt secret: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("failed to decrypt secret: %s", e.Reason)
}

func (e *DecryptionError) Unwrap() error {
	return e.Err
}

// deriveKey produces the fixed-size AES key from caller-supplied key
// material: truncate to 32 bytes when longer, right-pad with '0' bytes
// when shorter. The rule is deterministic so the same key material
// always yields the same key.
func deriveKey(encryptionKey string) []byte {
	key := make([]byte, keySize)
	copied := copy(key, encryptionKey)
	for i := copied; i < keySize; i++ {
		key[i] = '0'
	}
	return key
}

// Generate mints a random secret of length bytes, rendered as a hex
// string, and returns it encrypted under the supplied key as an
// "ivHex:cipherHex:tagHex" envelope. A fresh random IV is used per
// call. The plaintext secret is recoverable via Decrypt.
func Generate(encryptionKey string, length int) (string, error) {
	if encryptionKey == "" {
		return "", fmt.Errorf("encryption key cannot be empty")
	}
	if length <= 0 {
		return "", fmt.Errorf("secret length must be positive, got %d", length)
	}

	raw := make([]byte, length)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	secret := hex.EncodeToString(raw)

	return Encrypt(encryptionKey, secret)
}

// Encrypt seals the given plaintext under the supplied key using
// AES-256-GCM and returns the "ivHex:cipherHex:tagHex" envelope.
func Encrypt(encryptionKey, plaintext string) (string, error) {
	if encryptionKey == "" {
		return "", fmt.Errorf("encryption key cannot be empty")
	}

	block, err := aes.NewCipher(deriveKey(encryptionKey))
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to create GCM: %w", err)
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("failed to generate IV: %w", err)
	}

	// Seal appends the authentication tag to the ciphertext; split it
	// back out so the envelope carries the three parts separately.
	sealed := gcm.Seal(nil, iv, []byte(plaintext), nil)
	ciphertext := sealed[:len(sealed)-tagSize]
	tag := sealed[len(sealed)-tagSize:]

	return fmt.Sprintf("%s:%s:%s",
		hex.EncodeToString(iv),
		hex.EncodeToString(ciphertext),
		hex.EncodeToString(tag)), nil
}

// Decrypt opens an "ivHex:cipherHex:tagHex" envelope produced by
// Generate or Encrypt and returns the plaintext secret. It returns a
// *DecryptionError when the envelope is malformed or the
// authentication tag does not verify.
func Decrypt(encryptionKey, envelope string) (string, error) {
	if encryptionKey == "" {
		return "", fmt.Errorf("encryption key cannot be empty")
	}

	parts := strings.Split(envelope, ":")
	if len(parts) != 3 {
		return "", &DecryptionError{Reason: fmt.Sprintf("malformed envelope: expected 3 segments, got %d", len(parts))}
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil {
		return "", &DecryptionError{Reason: "malformed envelope: invalid IV hex", Err: err}
	}
	ciphertext, err := hex.DecodeString(parts[1])
	if err != nil {
		return "", &DecryptionError{Reason: "malformed envelope: invalid ciphertext hex", Err: err}
	}
	tag, err := hex.DecodeString(parts[2])
	if err != nil {
		return "", &DecryptionError{Reason: "malformed envelope: invalid tag hex", Err: err}
	}

	block, err := aes.NewCipher(deriveKey(encryptionKey))
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to create GCM: %w", err)
	}

	if len(iv) != gcm.NonceSize() {
		return "", &DecryptionError{Reason: fmt.Sprintf("malformed envelope: IV must be %d bytes, got %d", gcm.NonceSize(), len(iv))}
	}

	sealed := append(ciphertext, tag...)
	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return "", &DecryptionError{Reason: "authentication failed", Err: err}
	}

	return string(plaintext), nil
}
