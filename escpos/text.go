package escpos

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// decodeText produces the string form of a TEXT command's raw bytes,
// attempting GBK, then UTF-8, then Latin-1 in that order (spec.md §4.2).
// Latin-1 is a total fallback: every byte 0x00-0xFF is a valid Latin-1
// code point, so decodeText never fails.
func decodeText(raw []byte) string {
	if s, ok := tryGBK(raw); ok {
		return s
	}
	if s, ok := tryUTF8(raw); ok {
		return s
	}
	return decodeLatin1(raw)
}

func tryGBK(raw []byte) (string, bool) {
	decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(raw)
	if err != nil || containsReplacementChar(decoded) {
		return "", false
	}
	return string(decoded), true
}

func tryUTF8(raw []byte) (string, bool) {
	if !utf8.Valid(raw) || containsReplacementChar(raw) {
		return "", false
	}
	return string(raw), true
}

func decodeLatin1(raw []byte) string {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

func containsReplacementChar(b []byte) bool {
	for _, r := range string(b) {
		if r == utf8.RuneError {
			return true
		}
	}
	return false
}
