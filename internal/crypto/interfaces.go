// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

// FieldCipher encrypts and decrypts individual sensitive text fields
// (credential passwords, secret keys, note bodies) under the process-wide
// application key.
//
// Both operations are pure transformations over an immutable key: there is
// no session or handshake, and implementations are safe for unlimited
// concurrent use.
//
// The contract the storage layer relies on:
//   - Encrypt("") == "" and Decrypt("") == "" — an absent value is stored
//     as an absent value, never as ciphertext of an empty string.
//   - Decrypt(Encrypt(x)) == x for every non-empty UTF-8 x.
//   - Decrypt never fails: any undecryptable input (corrupt token, foreign
//     data, ciphertext written under a different application secret) yields
//     the fixed DecryptionErrorText placeholder instead of an error, so a
//     single unreadable field can never abort reading a whole record.
type FieldCipher interface {
	// Encrypt turns plaintext into a printable ciphertext token. A fresh
	// random nonce is used per call, so encrypting the same plaintext twice
	// yields different tokens. Empty input passes through unchanged.
	Encrypt(plaintext string) string

	// Decrypt recovers the plaintext from a token produced by Encrypt.
	// Empty input passes through unchanged; any failure yields
	// DecryptionErrorText.
	Decrypt(token string) string
}
