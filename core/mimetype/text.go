package mimetype

import (
	"bytes"
	"unicode/utf8"
)

// textPlainUTF8 is the only type that carries an explicit charset, since the
// heuristic is the one strategy that actually inspected the encoding.
const textPlainUTF8 = "text/plain; charset=utf-8"

// Text classifies a sample as plain text when it is valid UTF-8 and free of
// NUL bytes. It runs after extension and sniff so it only catches mislabeled
// or extensionless text files.
type Text struct{}

// Detect implements Strategy.
func (Text) Detect(_ string, sample []byte) (Type, bool) {
	if len(sample) == 0 {
		return Type{}, false
	}
	if bytes.IndexByte(sample, 0) >= 0 {
		return Type{}, false
	}
	if !utf8.Valid(trimPartialRune(sample)) {
		return Type{}, false
	}
	return Type{Value: textPlainUTF8, Source: SourceHeuristic}, true
}

// trimPartialRune drops a trailing rune the sample boundary cut in half, so
// a truncated prefix of a valid UTF-8 file still classifies. Genuinely
// invalid bytes are left in place for utf8.Valid to reject.
func trimPartialRune(sample []byte) []byte {
	for i := 1; i < utf8.UTFMax && i <= len(sample); i++ {
		b := sample[len(sample)-i]
		if !utf8.RuneStart(b) {
			continue
		}
		if runeLen(b) > i {
			return sample[:len(sample)-i]
		}
		return sample
	}
	return sample
}

// runeLen returns the encoded length a UTF-8 lead byte announces.
func runeLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		// Invalid lead byte; report one so it is not trimmed away.
		return 1
	}
}
