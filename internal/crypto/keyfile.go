// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters used to stretch the key-file secret into the working
// key material. Matches the OWASP (2024) recommendation: 1 iteration, 64 MiB,
// 4 threads.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024 // 64 MiB
	argonThreads = 4

	// derivedLen covers the AES-256 key (32), the CTR IV (16) and the
	// index-hash key (32) carved out of a single derivation.
	derivedLen = 80
)

// KeyMaterial is the process-wide cryptographic state: the AES-256 key and
// fixed IV used by [Cipher], and the key of the deterministic index hash.
// It is derived once at startup and never rotated at runtime.
type KeyMaterial struct {
	CipherKey []byte
	IV        []byte
	HashKey   []byte
}

// keyFile is the on-disk JSON form of the generated master secret. Only the
// random inputs are persisted; the working keys are re-derived on every start
// so a leaked key file alone still requires the Argon2id pass to exploit.
type keyFile struct {
	Salt   string `json:"salt"`
	Secret string `json:"secret"`
}

// LoadOrGenerateKeyMaterial returns the deployment key material stored at
// path, generating and persisting a fresh key file on first run.
//
// The derivation is deterministic: the same key file always yields the same
// cipher key, IV and hash key, which is what makes the stored hash index and
// the at-rest ciphertext stable across restarts and process replicas sharing
// the file.
func LoadOrGenerateKeyMaterial(path string) (*KeyMaterial, error) {
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		return deriveFromFile(raw)
	case errors.Is(err, os.ErrNotExist):
		return generateKeyFile(path)
	default:
		return nil, fmt.Errorf("read key file: %w", err)
	}
}

// generateKeyFile creates a new random salt and secret, persists them at path
// with owner-only permissions, and returns the derived material.
func generateKeyFile(path string) (*KeyMaterial, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	secret := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, secret); err != nil {
		return nil, fmt.Errorf("generate secret: %w", err)
	}

	kf := keyFile{
		Salt:   base64.StdEncoding.EncodeToString(salt),
		Secret: base64.StdEncoding.EncodeToString(secret),
	}

	raw, err := json.Marshal(kf)
	if err != nil {
		return nil, fmt.Errorf("marshal key file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create key dir: %w", err)
	}

	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return nil, fmt.Errorf("write key file: %w", err)
	}

	return derive(secret, salt), nil
}

// deriveFromFile parses a persisted key file and derives the working keys.
func deriveFromFile(raw []byte) (*KeyMaterial, error) {
	var kf keyFile
	if err := json.Unmarshal(raw, &kf); err != nil {
		return nil, fmt.Errorf("parse key file: %w", err)
	}

	salt, err := base64.StdEncoding.DecodeString(kf.Salt)
	if err != nil {
		return nil, fmt.Errorf("decode salt: %w", err)
	}

	secret, err := base64.StdEncoding.DecodeString(kf.Secret)
	if err != nil {
		return nil, fmt.Errorf("decode secret: %w", err)
	}

	if len(salt) == 0 || len(secret) == 0 {
		return nil, errors.New("key file is missing salt or secret")
	}

	return derive(secret, salt), nil
}

// derive stretches secret+salt into the three working keys with Argon2id.
func derive(secret, salt []byte) *KeyMaterial {
	buf := argon2.IDKey(secret, salt, argonTime, argonMemory, argonThreads, derivedLen)

	return &KeyMaterial{
		CipherKey: buf[:32],
		IV:        buf[32:48],
		HashKey:   buf[48:80],
	}
}
