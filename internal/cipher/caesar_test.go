package cipher_test

import (
	"testing"

	"github.com/mrivero/cyberbomb/internal/cipher"
	"github.com/stretchr/testify/assert"
)

func TestCaesarShift(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		shift    int
		expected string
	}{
		{
			name:     "shift by one",
			text:     "There is no spoon",
			shift:    1,
			expected: "Uifsf jt op tqppo",
		},
		{
			name:     "wraps past z",
			text:     "xyz XYZ",
			shift:    3,
			expected: "abc ABC",
		},
		{
			name:     "negative shift wraps",
			text:     "abc",
			shift:    -1,
			expected: "zab",
		},
		{
			name:     "non-letters unchanged",
			text:     "clave: 1234!",
			shift:    5,
			expected: "hqfaj: 1234!",
		},
		{
			name:     "shift multiple of 26 is identity",
			text:     "Hello",
			shift:    52,
			expected: "Hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cipher.CaesarShift(tt.text, tt.shift))
		})
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	original := "THE SECRET PASSWORD IS CYBERSECURITY"
	encrypted := cipher.Encrypt(original, 3)
	assert.Equal(t, "WKH VHFUHW SDVVZRUG LV FBEHUVHFXULWB", encrypted)
	assert.Equal(t, original, cipher.Decrypt(encrypted, 3))
}
