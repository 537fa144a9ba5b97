// Package cipher provides the classical-cipher helpers used by the
// cipher challenge levels.
package cipher

// CaesarShift shifts every ASCII letter of text by shift positions,
// wrapping within the alphabet. Non-letters pass through unchanged.
func CaesarShift(text string, shift int) string {
	shift = ((shift % 26) + 26) % 26
	out := make([]rune, 0, len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			out = append(out, 'a'+(r-'a'+rune(shift))%26)
		case r >= 'A' && r <= 'Z':
			out = append(out, 'A'+(r-'A'+rune(shift))%26)
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

// Encrypt applies a forward Caesar shift.
func Encrypt(text string, shift int) string {
	return CaesarShift(text, shift)
}

// Decrypt reverses a Caesar shift applied with the same offset.
func Decrypt(text string, shift int) string {
	return CaesarShift(text, -shift)
}
