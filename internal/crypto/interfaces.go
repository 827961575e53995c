// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

// Package crypto implements the symmetric encryption and deterministic
// hashing primitives behind cipherhold's encrypted-at-rest storage.
//
// Two distinct concerns live here:
//
//   - confidentiality: AES-256-CTR encryption of catalog strings and blob
//     content, usable both on byte slices and as stream-to-stream transforms
//     for payloads that must not be buffered in full;
//   - lookups: a keyed deterministic digest of the plaintext, stored next to
//     every ciphertext column so that equality checks (path exists? name
//     taken?) never require decrypting candidate rows.
//
// Key material is process-wide configuration: loaded (or generated and
// persisted) once at startup and read-only thereafter. The deployment uses a
// single fixed key/IV pair, so identical plaintexts produce identical
// ciphertexts — a documented property of the at-rest format that the hash
// index does not rely on.
package crypto

import "io"

// Cipher is the symmetric encryption and index-hashing service used by the
// blob store and the catalog repositories.
//
// Encrypt/Decrypt are pure transforms under the fixed deployment key and
// cannot fail once the Cipher is constructed. DecryptFromBase64 returns an
// error only for malformed Base64 input.
type Cipher interface {
	// Encrypt returns the ciphertext of plaintext.
	Encrypt(plaintext []byte) []byte

	// Decrypt returns the plaintext of ciphertext.
	Decrypt(ciphertext []byte) []byte

	// EncryptToBase64 encrypts plaintext and returns the ciphertext in
	// standard Base64 encoding, the form stored in catalog columns.
	EncryptToBase64(plaintext string) string

	// DecryptFromBase64 reverses EncryptToBase64.
	DecryptFromBase64(encoded string) (string, error)

	// EncryptStream returns a writer that encrypts everything written to it
	// and forwards the ciphertext to dst. The returned writer performs no
	// buffering; closing it does not close dst.
	EncryptStream(dst io.Writer) io.Writer

	// DecryptStream returns a reader that pulls ciphertext from src and
	// yields plaintext. Decryption is lazy: bytes are transformed only as
	// the caller reads.
	DecryptStream(src io.Reader) io.Reader

	// Hash returns the hex-encoded deterministic digest of plaintext used
	// as the catalog lookup index. The digest is stable across process
	// restarts for the same key material.
	Hash(plaintext string) string
}
