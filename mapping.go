package textbuf

import (
	"unicode"
	"unicode/utf8"
)

// MapRunes replaces every rune of the buffered text with mapping(r), in place.
//
// The length of the text never changes: if any mapped rune would encode to a
// different number of bytes than the rune it replaces, or is not a valid
// rune, nothing is modified and MapRunes returns false. It also returns false
// when the contents are not valid UTF-8.
//
// mapping is called twice per rune, once to check widths and once to write,
// and should return the same rune both times. If it does not, MapRunes stops
// at the first rune whose width changed and returns false; the runes before
// it stay mapped and the text remains valid UTF-8.
func (b *Buffer) MapRunes(mapping func(rune) rune) bool {
	p := b.buf[:b.n]
	if !utf8.Valid(p) {
		return false
	}

	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if utf8.RuneLen(mapping(r)) != size {
			return false
		}
		i += size
	}

	var enc [utf8.UTFMax]byte
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		m := mapping(r)
		if utf8.RuneLen(m) != size {
			return false
		}
		copy(p[i:i+size], enc[:utf8.EncodeRune(enc[:], m)])
		i += size
	}
	return true
}

// ToUpper maps the buffered text to upper case in place.
// See MapRunes for when it returns false.
func (b *Buffer) ToUpper() bool { return b.MapRunes(unicode.ToUpper) }

// ToLower maps the buffered text to lower case in place.
// See MapRunes for when it returns false.
func (b *Buffer) ToLower() bool { return b.MapRunes(unicode.ToLower) }
