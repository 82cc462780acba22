package encoding

import (
	"bytes"
	"testing"
)

// TestBase62RoundTrip tests a Base62 encode/decode cycle.
func TestBase62RoundTrip(t *testing.T) {
	// Create a test value.
	value := []byte{0x00, 0x01, 0x7f, 0xfe, 0xff, 0x42}

	// Encode it.
	encoded := EncodeBase62(value)
	if encoded == "" {
		t.Fatal("encoded value empty")
	}

	// Decode it.
	decoded, err := DecodeBase62(encoded)
	if err != nil {
		t.Fatal("unable to decode value:", err)
	}

	// Verify the round trip.
	if !bytes.Equal(decoded, value) {
		t.Error("decoded value does not match original")
	}
}

// TestBase62DecodeInvalid tests that decoding fails for values containing
// characters outside the alphabet.
func TestBase62DecodeInvalid(t *testing.T) {
	if _, err := DecodeBase62("not-base62!"); err == nil {
		t.Error("invalid value decoded successfully")
	}
}
