// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const saltSize = 16

var (
	// ErrEmptyPassphrase is returned by NewSealer for an empty passphrase.
	ErrEmptyPassphrase = errors.New("empty passphrase")
	// ErrOpenFailed means the blob cannot be opened with this passphrase.
	ErrOpenFailed = errors.New("sealed data cannot be opened")
)

type argonSealer struct {
	passphrase []byte

	// Argon2id parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewSealer returns a [Sealer] keyed by passphrase through Argon2id with the
// OWASP (2024) parameters: 1 iteration, 64 MiB, 4 threads, 32-byte key.
func NewSealer(passphrase string) (Sealer, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	return &argonSealer{
		passphrase:   []byte(passphrase),
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
		argonKeyLen:  32,
	}, nil
}

func (s *argonSealer) deriveKey(salt []byte) []byte {
	return argon2.IDKey(s.passphrase, salt, s.argonTime, s.argonMemory, s.argonThreads, s.argonKeyLen)
}

func (s *argonSealer) gcm(salt []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(s.deriveKey(salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

func (s *argonSealer) Seal(plaintext []byte) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := s.gcm(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, plaintext, salt)

	return base64.StdEncoding.EncodeToString(blob), nil
}

func (s *argonSealer) Open(sealed string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrOpenFailed, err)
	}
	if len(blob) < saltSize {
		return nil, fmt.Errorf("%w: blob too short", ErrOpenFailed)
	}

	salt := blob[:saltSize]
	gcm, err := s.gcm(salt)
	if err != nil {
		return nil, err
	}

	rest := blob[saltSize:]
	if len(rest) < gcm.NonceSize() {
		return nil, fmt.Errorf("%w: blob too short", ErrOpenFailed)
	}
	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, salt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}

	return plaintext, nil
}
