package utils

import (
	"strings"
	"testing"
)

func TestNewShareToken(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		token, err := NewShareToken()
		if err != nil {
			t.Fatalf("NewShareToken() error = %v", err)
		}
		if len(token) != shareTokenLength {
			t.Fatalf("token length = %d, want %d", len(token), shareTokenLength)
		}
		for _, r := range token {
			if !strings.ContainsRune(shareTokenAlphabet, r) {
				t.Fatalf("token %q contains character outside alphabet", token)
			}
		}
		seen[token] = true
	}

	if len(seen) < 95 {
		t.Errorf("expected near-unique tokens, got %d distinct out of 100", len(seen))
	}
}
