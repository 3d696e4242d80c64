package text

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns s in Unicode NFC, so accented letters coming from
// decomposed sources map onto single code points.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// ToWinAnsi converts s to the Windows-1252 byte string expected by the core
// PDF fonts (Helvetica, Times, Courier). Runes outside the code page become '?'.
func ToWinAnsi(s string) string {
	s = Normalize(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x80 {
			b.WriteByte(byte(r))
			continue
		}
		if c, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('?')
	}
	return b.String()
}
