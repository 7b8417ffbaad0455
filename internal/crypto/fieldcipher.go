// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"io"

	"github.com/MKhiriev/credstore/internal/logger"
)

// DecryptionErrorText is the fixed placeholder returned by Decrypt when a
// stored value cannot be decrypted (corrupt token, tampered ciphertext, or
// a token written under a different application secret). Callers render it
// in place of the real value so the rest of the record stays readable.
const DecryptionErrorText = "[Decryption Error]"

// fieldCipher is the private implementation of [FieldCipher] backed by
// AES-256-GCM. The AEAD is built once from the derived key and shared by
// all calls; it holds no mutable state.
type fieldCipher struct {
	gcm    cipher.AEAD
	logger *logger.Logger
}

// NewFieldCipher constructs a [FieldCipher] keyed by the application secret.
//
// The key is derived once via [DeriveKey] and memoized inside the AEAD;
// the secret itself is not retained. The same secret must be configured on
// every process that reads the same stored data — rotating it makes all
// previously encrypted fields decrypt to [DecryptionErrorText] permanently.
func NewFieldCipher(secret string, log *logger.Logger) FieldCipher {
	// aes.NewCipher and cipher.NewGCM cannot fail for a 32-byte key and the
	// default GCM parameters, so construction has no error path.
	block, _ := aes.NewCipher(DeriveKey(secret))
	gcm, _ := cipher.NewGCM(block)

	return &fieldCipher{
		gcm:    gcm,
		logger: log,
	}
}

// Encrypt implements [FieldCipher]. The token layout is
// base64(nonce ‖ ciphertext ‖ tag) with a random 12-byte nonce, so repeated
// encryption of identical plaintext yields distinct tokens.
func (f *fieldCipher) Encrypt(plaintext string) string {
	if plaintext == "" {
		return ""
	}

	nonce := make([]byte, f.gcm.NonceSize())
	// crypto/rand never returns an error; it crashes the program instead
	// of ever degrading to predictable output.
	_, _ = io.ReadFull(rand.Reader, nonce)

	blob := f.gcm.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(blob)
}

// Decrypt implements [FieldCipher]. Every failure mode collapses to
// [DecryptionErrorText]; the concrete cause is logged at debug level for
// operability but never surfaced to the caller.
func (f *fieldCipher) Decrypt(token string) string {
	if token == "" {
		return ""
	}

	blob, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		f.logger.Debug().Err(err).Msg("field token is not valid base64")
		return DecryptionErrorText
	}

	nonceSize := f.gcm.NonceSize()
	if len(blob) < nonceSize {
		f.logger.Debug().Int("blob_len", len(blob)).Msg("field token shorter than nonce")
		return DecryptionErrorText
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := f.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// Wrong key and tampered ciphertext are indistinguishable here:
		// both fail the GCM authentication tag.
		f.logger.Debug().Err(err).Msg("field token failed authenticated decryption")
		return DecryptionErrorText
	}

	return string(plaintext)
}
