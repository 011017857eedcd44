package config

import (
	"errors"
	"strings"
	"testing"
)

// TestValidateKey covers the three credential branches: missing, issued
// length (hex only) and any other length.
func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr error
	}{
		{"empty", "", ErrMissingKey},
		{"32 hex lower", strings.Repeat("a1", 16), nil},
		{"32 hex upper", strings.Repeat("F0", 16), nil},
		{"32 non-hex", strings.Repeat("zz", 16), ErrMalformedKey},
		{"31 non-hex accepted", strings.Repeat("z", 31), nil},
		{"33 non-hex accepted", strings.Repeat("z", 33), nil},
		{"short", "abc", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateKey(tt.key)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateKey(%q) error = %v, want %v", tt.key, err, tt.wantErr)
			}
			if err == nil && got != tt.key {
				t.Errorf("ValidateKey(%q) = %q, want the key unchanged", tt.key, got)
			}
		})
	}
}

func TestConfLoadAPIKey(t *testing.T) {
	c := &Conf{}
	if _, err := c.LoadAPIKey(); !errors.Is(err, ErrMissingKey) {
		t.Fatalf("LoadAPIKey on empty Conf = %v, want ErrMissingKey", err)
	}
	c.APIKey = "0123456789abcdef0123456789abcdef"
	key, err := c.LoadAPIKey()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != c.APIKey {
		t.Errorf("LoadAPIKey = %q, want %q", key, c.APIKey)
	}
}
