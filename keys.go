package edit

// The command language operates on runes. Ordinary Unicode scalar values
// pass through unchanged; keys with no natural rune representation (arrows,
// function keys, paging) are assigned sentinel values drawn from the UTF-16
// surrogate area, which can never appear as a decoded Unicode scalar. This is
// a common trick for terminal key parsers needing synthetic key constants.
const (
	GKEsc       rune = 0x1b
	GKBackspace rune = 0x7f

	gkSentinel rune = 0xd800 + iota
	GKUp
	GKDown
	GKLeft
	GKRight
	GKPageUp
	GKPageDown
	GKF1
	GKF2
	GKF3
	GKF4
	GKF5
	GKF6
	GKF7
	GKF8
	GKF9
	GKF10
	GKF11
	GKF12
)

// Control-letter input arrives already decoded into the ASCII C0 range
// 1..26.
const (
	ctrlA rune = 1
	ctrlD rune = 4
	ctrlE rune = 5
	ctrlI rune = 9
	ctrlL rune = 12
	ctrlQ rune = 17
	ctrlT rune = 20
	ctrlU rune = 21
	ctrlW rune = 23
	ctrlY rune = 25
)

// isWord reports whether r participates in a "word": ASCII
// alphanumeric/underscore, or the Latin-1 supplement block
// 0xC0..0xFF. This is a known, documented approximation of "alphabetic above
// ASCII" inherited unchanged from the source editor; it is not extended to
// full Unicode categories.
func isWord(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r == '_':
		return true
	case r >= 0xC0 && r <= 0xFF:
		return true
	}
	return false
}

// isSpace reports whether r is ASCII whitespace. Used by the uppercase W/E/B
// word-motion variants, whose predicate is "!isspace" rather than "isword".
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// isBlank reports whether r is a blank (space or tab), used by the
// first-non-blank scans and by indent copying in insert mode.
func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}
