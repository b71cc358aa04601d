package escpos

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSinkWritesToEveryWriter(t *testing.T) {
	var a, b bytes.Buffer
	sink := NewLogSink(&a, &b)

	sink.Startup()
	sink.Packet([]byte{0x1B, 0x40})

	assert.Equal(t, a.String(), b.String())
	assert.Contains(t, a.String(), "PKT")
}

func TestLogSinkCommandAndResponseFormat(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(&buf)

	d := New(sink)
	d.Feed([]byte{0x10, 0x04, 0x01})

	out := buf.String()
	assert.Contains(t, out, "PKT  received 3 bytes: 10 04 01")
	assert.Contains(t, out, "CMD  DLE EOT")
	assert.Contains(t, out, "RSP  → response")
	assert.Contains(t, out, "16")
}

func TestNewFileConsoleSinkCreatesTimestampedFile(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	sink, err := NewFileConsoleSink(filepath.Join(dir, "logs"), &console)
	require.NoError(t, err)

	d := New(sink)
	d.Feed([]byte{0x0A})

	entries, err := os.ReadDir(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "escpos_"))
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".log"))

	assert.Contains(t, console.String(), "CMD  LF")
}
