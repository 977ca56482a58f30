package toolbar

import "strings"

// ParseMnemonic strips mnemonic markers from s: "&x" marks x as the mnemonic
// rune, "&&" is a literal ampersand. Returns the clean string and the byte
// index of the mnemonic rune in it, or -1. Only the first marker is honored.
func ParseMnemonic(s string) (string, int) {
	if !strings.ContainsRune(s, '&') {
		return s, -1
	}
	sb := strings.Builder{}
	idx := -1
	pending := false
	for _, r := range s {
		if pending {
			pending = false
			if r != '&' && idx < 0 {
				idx = sb.Len()
			}
			sb.WriteRune(r)
			continue
		}
		if r == '&' {
			pending = true
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String(), idx
}

// Text without mnemonic markers, as measured and drawn.
func MnemonicStrip(s string) string {
	s2, _ := ParseMnemonic(s)
	return s2
}
