// Package cryptox seals small records at rest. The persisted session is
// encrypted with AES-GCM under a key derived (argon2id) from a machine-local
// secret so a copied database file alone does not leak the credential.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/argon2"

	"github.com/avolkov/chargecli/internal/common"
)

const (
	nonceSize  = 12
	keySize    = 32
	saltSize   = 16
	secretSize = 32
)

var ErrCiphertextTooShort = errors.New("ciphertext too short")

// DeriveKey stretches secret with salt into a 32-byte AES key.
func DeriveKey(secret []byte, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, keySize)
}

// SealedBox performs authenticated encryption of byte records.
type SealedBox struct {
	aead cipher.AEAD
}

// NewSealedBox builds a box around an AES-256-GCM cipher for the given key.
func NewSealedBox(key []byte) (*SealedBox, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init gcm: %w", err)
	}
	return &SealedBox{aead: aead}, nil
}

// Seal encrypts plaintext and returns nonce||ciphertext. A fresh random
// nonce is generated per call.
func (b *SealedBox) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return b.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts a nonce||ciphertext blob produced by Seal.
func (b *SealedBox) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < nonceSize {
		return nil, ErrCiphertextTooShort
	}
	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]
	plaintext, err := b.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("open sealed record: %w", err)
	}
	return plaintext, nil
}

// LoadOrCreateSecret reads the machine secret file, generating it on first
// run (0600, salt||secret). The returned key is derived from its contents.
func LoadOrCreateSecret(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		data = common.GenerateRandByteArray(saltSize + secretSize)
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return nil, fmt.Errorf("write secret file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("read secret file: %w", err)
	}

	if len(data) != saltSize+secretSize {
		return nil, fmt.Errorf("secret file %s has unexpected size %d", path, len(data))
	}

	salt, secret := data[:saltSize], data[saltSize:]
	return DeriveKey(secret, salt), nil
}
