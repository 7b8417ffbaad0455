package crypto

import (
	"bytes"
	"testing"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	k1 := DeriveKey("test-secret-key")
	k2 := DeriveKey("test-secret-key")

	if len(k1) != KeySize {
		t.Fatalf("key length = %d, want %d", len(k1), KeySize)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected identical keys for the same secret")
	}
}

func TestDeriveKey_DifferentSecretsProduceDifferentKeys(t *testing.T) {
	k1 := DeriveKey("secret-a")
	k2 := DeriveKey("secret-b")

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different secrets")
	}
}

func TestDeriveKey_EmptySecretDoesNotFail(t *testing.T) {
	k1 := DeriveKey("")
	k2 := DeriveKey("")

	if len(k1) != KeySize {
		t.Fatalf("key length = %d, want %d", len(k1), KeySize)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected deterministic key for the empty secret")
	}
}

func TestDeriveKey_IndependentDerivationsInteroperate(t *testing.T) {
	// Two ciphers built from independent derivations of the same secret
	// must read each other's tokens: ciphertext written by one process
	// has to be decryptable by another.
	writer := NewFieldCipher("shared-secret", testLogger())
	reader := NewFieldCipher("shared-secret", testLogger())

	token := writer.Encrypt("interop plaintext")

	if got := reader.Decrypt(token); got != "interop plaintext" {
		t.Fatalf("Decrypt = %q, want %q", got, "interop plaintext")
	}
}
