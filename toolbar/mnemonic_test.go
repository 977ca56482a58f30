package toolbar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMnemonic(t *testing.T) {
	cases := []struct {
		in    string
		clean string
		idx   int
	}{
		{"", "", -1},
		{"Open", "Open", -1},
		{"&Open", "Open", 0},
		{"S&ave", "Save", 1},
		{"a && b", "a & b", -1},
		{"&&&x", "&x", 1},
		{"&a&b", "ab", 0}, // first marker wins
		{"trailing&", "trailing", -1},
		{"&Über", "Über", 0},
	}
	for _, c := range cases {
		clean, idx := ParseMnemonic(c.in)
		require.Equal(t, c.clean, clean, "input %q", c.in)
		require.Equal(t, c.idx, idx, "input %q", c.in)
	}
}

func TestMnemonicStrip(t *testing.T) {
	require.Equal(t, "Save", MnemonicStrip("&Save"))
	require.Equal(t, "a & b", MnemonicStrip("a && b"))
}
