// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/cipherhold/cipherhold/models"
)

// aesCipher is the private implementation of [Cipher]. It holds the AES block
// cipher built from the deployment key plus the fixed IV and the index-hash
// key. A fresh CTR stream is created per operation, always starting from the
// same IV, which makes the transform deterministic and self-inverse.
type aesCipher struct {
	block   cipher.Block
	iv      []byte
	hashKey []byte
}

// NewCipher constructs a [Cipher] from the given key material.
// Returns an error if the cipher key is not a valid AES-256 key or the IV
// does not match the AES block size.
func NewCipher(material *KeyMaterial) (Cipher, error) {
	block, err := aes.NewCipher(material.CipherKey)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	if len(material.IV) != block.BlockSize() {
		return nil, fmt.Errorf("iv length %d does not match block size %d", len(material.IV), block.BlockSize())
	}

	return &aesCipher{
		block:   block,
		iv:      material.IV,
		hashKey: material.HashKey,
	}, nil
}

// newStream returns a CTR keystream positioned at the start of the fixed IV.
// CTR encryption and decryption are the same XOR transform.
func (c *aesCipher) newStream() cipher.Stream {
	return cipher.NewCTR(c.block, c.iv)
}

// Encrypt implements [Cipher].
func (c *aesCipher) Encrypt(plaintext []byte) []byte {
	out := make([]byte, len(plaintext))
	c.newStream().XORKeyStream(out, plaintext)
	return out
}

// Decrypt implements [Cipher].
func (c *aesCipher) Decrypt(ciphertext []byte) []byte {
	out := make([]byte, len(ciphertext))
	c.newStream().XORKeyStream(out, ciphertext)
	return out
}

// EncryptToBase64 implements [Cipher].
func (c *aesCipher) EncryptToBase64(plaintext string) string {
	return base64.StdEncoding.EncodeToString(c.Encrypt([]byte(plaintext)))
}

// DecryptFromBase64 implements [Cipher].
func (c *aesCipher) DecryptFromBase64(encoded string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	return string(c.Decrypt(blob)), nil
}

// EncryptStream implements [Cipher].
func (c *aesCipher) EncryptStream(dst io.Writer) io.Writer {
	return cipher.StreamWriter{S: c.newStream(), W: dst}
}

// DecryptStream implements [Cipher].
func (c *aesCipher) DecryptStream(src io.Reader) io.Reader {
	return cipher.StreamReader{S: c.newStream(), R: src}
}

// Hash implements [Cipher]. It computes an HMAC-SHA256 digest of plaintext
// under the index-hash key and returns it hex-encoded. The hash key is part
// of the persisted key material, so the digest is stable across restarts and
// usable as a persistent index column.
func (c *aesCipher) Hash(plaintext string) string {
	mac := hmac.New(sha256.New, c.hashKey)
	mac.Write([]byte(plaintext))
	return hex.EncodeToString(mac.Sum(nil))
}

// SealField builds the [models.EncryptedField] pair persisted for plaintext:
// Base64 ciphertext for retrieval plus the deterministic digest for lookup.
// Every catalog write of a name/path/tag field must go through this helper so
// the two members can never drift apart.
func SealField(c Cipher, plaintext string) models.EncryptedField {
	return models.EncryptedField{
		Cipher: c.EncryptToBase64(plaintext),
		Hash:   c.Hash(plaintext),
	}
}

// OpenField recovers the plaintext of a stored [models.EncryptedField].
func OpenField(c Cipher, field models.EncryptedField) (string, error) {
	return c.DecryptFromBase64(field.Cipher)
}
