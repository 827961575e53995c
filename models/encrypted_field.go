// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package models

// EncryptedField is the pair stored in place of every plaintext string that
// reaches the catalog: the Base64 ciphertext of the value and a deterministic
// digest of the plaintext. Equality lookups (path exists? name taken?) match
// on Hash only, so candidate rows never have to be decrypted; Cipher is read
// back solely for display.
//
// Both members must be recomputed together on every write. A row whose Hash
// does not correspond to its Cipher is unreachable by lookup and is considered
// corrupted.
type EncryptedField struct {
	// Cipher is the Base64 (standard encoding) ciphertext of the plaintext.
	Cipher string `json:"cipher"`

	// Hash is the hex-encoded deterministic digest of the plaintext.
	Hash string `json:"hash"`
}
