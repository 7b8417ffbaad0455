package crypto

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/MKhiriev/credstore/internal/logger"
)

func testLogger() *logger.Logger {
	return logger.Nop()
}

func TestFieldCipher_RoundTrip(t *testing.T) {
	cipher := NewFieldCipher("test-secret-key", testLogger())

	cases := []string{
		"my_secret_password",
		"a",
		"correct horse battery staple",
		"пароль с юникодом",
		"emoji 🔐🗝️ content",
		strings.Repeat("long-plaintext-", 1000), // 15,000 characters
	}

	for _, plaintext := range cases {
		token := cipher.Encrypt(plaintext)
		if token == "" || token == plaintext {
			t.Fatalf("expected a non-empty token distinct from the plaintext, got %q", token)
		}

		if got := cipher.Decrypt(token); got != plaintext {
			t.Fatalf("Decrypt(Encrypt(%q)) = %q", plaintext, got)
		}
	}
}

func TestFieldCipher_EmptyPassthrough(t *testing.T) {
	cipher := NewFieldCipher("test-secret-key", testLogger())

	if got := cipher.Encrypt(""); got != "" {
		t.Fatalf("Encrypt(\"\") = %q, want empty", got)
	}
	if got := cipher.Decrypt(""); got != "" {
		t.Fatalf("Decrypt(\"\") = %q, want empty", got)
	}
}

func TestFieldCipher_CiphertextIsNonDeterministic(t *testing.T) {
	cipher := NewFieldCipher("test-secret-key", testLogger())

	t1 := cipher.Encrypt("same plaintext")
	t2 := cipher.Encrypt("same plaintext")

	if t1 == t2 {
		t.Fatalf("expected distinct tokens for repeated encryption of the same plaintext")
	}
	if cipher.Decrypt(t1) != "same plaintext" || cipher.Decrypt(t2) != "same plaintext" {
		t.Fatalf("both tokens must decrypt back to the original plaintext")
	}
}

func TestFieldCipher_CorruptTokenYieldsSentinel(t *testing.T) {
	cipher := NewFieldCipher("test-secret-key", testLogger())

	cases := map[string]string{
		"not base64":       "not a valid token",
		"short blob":       base64.StdEncoding.EncodeToString([]byte{0x01, 0x02}),
		"garbage blob":     base64.StdEncoding.EncodeToString([]byte(strings.Repeat("x", 64))),
		"flipped tag byte": flipLastByte(t, cipher.Encrypt("victim")),
	}

	for name, token := range cases {
		if got := cipher.Decrypt(token); got != DecryptionErrorText {
			t.Errorf("%s: Decrypt = %q, want %q", name, got, DecryptionErrorText)
		}
	}
}

func TestFieldCipher_WrongSecretYieldsSentinel(t *testing.T) {
	alice := NewFieldCipher("application-secret-a", testLogger())
	bob := NewFieldCipher("application-secret-b", testLogger())

	token := alice.Encrypt("my_secret_password")

	if got := bob.Decrypt(token); got != DecryptionErrorText {
		t.Fatalf("Decrypt under the wrong secret = %q, want %q", got, DecryptionErrorText)
	}
}

func TestFieldCipher_ConcreteScenario(t *testing.T) {
	cipher := NewFieldCipher("test-secret-key", testLogger())

	token := cipher.Encrypt("my_secret_password")
	if token == "" {
		t.Fatal("expected a non-empty token")
	}
	if token == "my_secret_password" {
		t.Fatal("token must differ from the plaintext")
	}

	if got := cipher.Decrypt(token); got != "my_secret_password" {
		t.Fatalf("Decrypt = %q, want %q", got, "my_secret_password")
	}
}

func TestFieldCipher_ConcurrentUse(t *testing.T) {
	cipher := NewFieldCipher("test-secret-key", testLogger())

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				token := cipher.Encrypt("concurrent plaintext")
				if cipher.Decrypt(token) != "concurrent plaintext" {
					t.Error("round trip failed under concurrency")
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}

// flipLastByte corrupts the final byte of a valid token's blob, which lands
// inside the GCM authentication tag.
func flipLastByte(t *testing.T, token string) string {
	t.Helper()

	blob, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		t.Fatalf("test token is not valid base64: %v", err)
	}
	blob[len(blob)-1] ^= 0xFF

	return base64.StdEncoding.EncodeToString(blob)
}
