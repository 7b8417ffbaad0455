// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the encryption-at-rest core: derivation of the
// process-wide symmetric key from the application secret, and field-level
// authenticated encryption of sensitive record attributes.
package crypto

import "crypto/sha256"

// KeySize is the length in bytes of the derived symmetric key (AES-256).
const KeySize = sha256.Size

// DeriveKey derives the symmetric field-encryption key from the application
// secret: the SHA-256 digest of the secret's UTF-8 bytes, which is exactly
// the 32 bytes AES-256 requires.
//
// The derivation is deterministic — the same secret always yields the same
// key, across calls and across process restarts — so ciphertext written by
// one process stays readable by any process configured with the same secret.
// The key is never persisted; it is recomputed from configuration on startup.
//
// An empty secret derives a key like any other value. Guaranteeing that the
// secret is actually set to a high-entropy value in production is a
// deployment concern, not a runtime error path.
func DeriveKey(secret string) []byte {
	digest := sha256.Sum256([]byte(secret))
	return digest[:]
}
