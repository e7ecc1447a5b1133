// mediahub/utils/utils_test.go
package utils

import (
	"strings"
	"testing"
)

func TestNewID(t *testing.T) {
	a := NewID("cat")
	b := NewID("cat")
	if !strings.HasPrefix(a, "cat_") {
		t.Errorf("Expected cat_ prefix, got %q", a)
	}
	if a == b {
		t.Error("Consecutive ids must differ")
	}
	if strings.Contains(a, "-") {
		t.Errorf("Id should not contain dashes, got %q", a)
	}
}

func TestDecodeDataURL(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		ct, data, err := DecodeDataURL("data:image/png;base64,aGVsbG8=")
		if err != nil {
			t.Fatalf("DecodeDataURL failed: %v", err)
		}
		if ct != "image/png" || string(data) != "hello" {
			t.Errorf("Got %q %q", ct, data)
		}
	})

	t.Run("NotDataURL", func(t *testing.T) {
		if _, _, err := DecodeDataURL("https://example.com/a.png"); err == nil {
			t.Error("Plain URL should be rejected")
		}
	})

	t.Run("MissingPayload", func(t *testing.T) {
		if _, _, err := DecodeDataURL("data:image/png;base64"); err == nil {
			t.Error("Data URL without payload should be rejected")
		}
	})

	t.Run("BadBase64", func(t *testing.T) {
		if _, _, err := DecodeDataURL("data:image/png;base64,%%%"); err == nil {
			t.Error("Invalid base64 should be rejected")
		}
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "secret" {
		t.Error("Hash must not equal the plaintext")
	}
	if !CheckPassword(hash, "secret") {
		t.Error("Correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("Wrong password accepted")
	}
}

func TestNewToken(t *testing.T) {
	tok := NewToken("staff_1")
	if tok == "" || strings.Contains(tok, ":") {
		t.Errorf("Token should be opaque base64, got %q", tok)
	}
}
