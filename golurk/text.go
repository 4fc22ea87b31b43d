package golurk

import "strings"

// In-game character encoding. Only the subset creatures and trainers can be named with is mapped.
const (
	CHAR_SPACE           = 0x00
	CHAR_0               = 0xA1
	CHAR_EXCL_MARK       = 0xAB
	CHAR_QUESTION_MARK   = 0xAC
	CHAR_PERIOD          = 0xAD
	CHAR_HYPHEN          = 0xAE
	CHAR_ELLIPSIS        = 0xB0
	CHAR_SGL_QUOTE_LEFT  = 0xB3
	CHAR_SGL_QUOTE_RIGHT = 0xB4
	CHAR_MALE            = 0xB5
	CHAR_FEMALE          = 0xB6
	CHAR_COMMA           = 0xB8
	CHAR_SLASH           = 0xBA
	CHAR_A               = 0xBB
	CHAR_a               = 0xD5
	CHAR_COLON           = 0xF0

	EXT_CTRL_CODE_BEGIN = 0xFC
	EXT_CTRL_CODE_JPN   = 0x15
	EXT_CTRL_CODE_ENG   = 0x16
	EOS                 = 0xFF
)

var charEncoding, charDecoding = buildCharTables()

func buildCharTables() (map[rune]byte, [256]rune) {
	encoding := map[rune]byte{}
	var decoding [256]rune
	for i := range decoding {
		decoding[i] = -1
	}

	add := func(r rune, b byte) {
		encoding[r] = b
		decoding[b] = r
	}

	add(' ', CHAR_SPACE)
	for i := range 10 {
		add(rune('0'+i), byte(CHAR_0+i))
	}
	for i := range 26 {
		add(rune('A'+i), byte(CHAR_A+i))
		add(rune('a'+i), byte(CHAR_a+i))
	}
	add('!', CHAR_EXCL_MARK)
	add('?', CHAR_QUESTION_MARK)
	add('.', CHAR_PERIOD)
	add('-', CHAR_HYPHEN)
	add('…', CHAR_ELLIPSIS)
	add('‘', CHAR_SGL_QUOTE_LEFT)
	add('\'', CHAR_SGL_QUOTE_RIGHT)
	add('♂', CHAR_MALE)
	add('♀', CHAR_FEMALE)
	add(',', CHAR_COMMA)
	add('/', CHAR_SLASH)
	add(':', CHAR_COLON)
	// ’ shares a glyph with ' and decodes to the ASCII form
	encoding['’'] = CHAR_SGL_QUOTE_RIGHT

	return encoding, decoding
}

// EncodeName converts s to the in-game encoding in a buffer of exactly n bytes.
// Longer strings are truncated, shorter ones are EOS padded, unmapped runes become '?'.
func EncodeName(s string, n int) []byte {
	buf := make([]byte, n)
	i := 0
	for _, r := range s {
		if i >= n {
			break
		}

		b, ok := charEncoding[r]
		if !ok {
			b = CHAR_QUESTION_MARK
		}
		buf[i] = b
		i++
	}

	for ; i < n; i++ {
		buf[i] = EOS
	}

	return buf
}

// DecodeName reads an encoded string up to EOS. Extended control codes are skipped.
func DecodeName(b []byte) string {
	var sb strings.Builder
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c == EOS {
			break
		}
		if c == EXT_CTRL_CODE_BEGIN {
			i++
			continue
		}

		r := charDecoding[c]
		if r < 0 {
			r = '?'
		}
		sb.WriteRune(r)
	}

	return sb.String()
}

// StringLength counts bytes before the first EOS
func StringLength(b []byte) int {
	for i, c := range b {
		if c == EOS {
			return i
		}
	}

	return len(b)
}

var (
	textBadEgg      = EncodeName("Bad EGG", len("Bad EGG")+1)
	textEggNickname = EncodeName("EGG", len("EGG")+1)
)
