package ascii

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandPrefix(t *testing.T) {
	for _, c := range []byte{ESC, GS, DLE, FS} {
		assert.True(t, CommandPrefix(c))
	}
	for _, c := range []byte{LF, CR, HT, 'A', 0x00, 0x7F} {
		assert.False(t, CommandPrefix(c))
	}
}

func TestPrintable(t *testing.T) {
	assert.True(t, Printable('A'))
	assert.True(t, Printable(' '))
	assert.True(t, Printable(0xAA))
	assert.False(t, Printable(LF))
	assert.False(t, Printable(ESC))
	assert.False(t, Printable(DEL))
}
