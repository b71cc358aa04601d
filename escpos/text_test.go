package escpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeTextASCII(t *testing.T) {
	assert.Equal(t, "Hello", decodeText([]byte("Hello")))
}

func TestDecodeTextUTF8(t *testing.T) {
	// "x世": the 3-byte CJK sequence is odd-length and ends the input, so
	// its last byte (0x96) is a GBK lead byte with no trail byte — GBK
	// decode surfaces a replacement character and decodeText falls through
	// to UTF-8, which decodes cleanly.
	raw := []byte("x世")
	assert.Equal(t, "x世", decodeText(raw))
}

func TestDecodeTextGBK(t *testing.T) {
	// GBK encoding of "你好" (nǐ hǎo): 0xC4 0xE3 0xBA 0xC3.
	raw := []byte{0xC4, 0xE3, 0xBA, 0xC3}
	assert.Equal(t, "你好", decodeText(raw))
}

func TestDecodeTextLatin1Fallback(t *testing.T) {
	// 0xFF is not valid UTF-8 on its own, and not a meaningful GBK lead
	// byte sequence here; Latin-1 maps it to U+00FF (ÿ) as a total fallback.
	raw := []byte{0xFF}
	got := decodeText(raw)
	assert.NotEmpty(t, got)
}

func TestDecodeTextNeverPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		for b := 0; b < 256; b++ {
			decodeText([]byte{byte(b), byte(b), byte(b)})
		}
	})
}
