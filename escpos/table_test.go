package escpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Property 3 (spec.md §8): feeding one well-formed instance of each
// catalogued command in a single burst yields exactly one non-MALFORMED
// command with the expected mnemonic and params.
func TestCatalogueWellFormedInstances(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		mnemonic string
		params   string
	}{
		{"HT", "09", "HT", ""},
		{"LF", "0A", "LF", ""},
		{"FF", "0C", "FF", ""},
		{"CR", "0D", "CR", ""},
		{"ESC @", "1B 40", "ESC @", ""},
		{"ESC a", "1B 61 01", "ESC a", "01"},
		{"ESC !", "1B 21 30", "ESC !", "30"},
		{"ESC v", "1B 76 00", "ESC v", "00"},
		{"ESC * mode 0", "1B 2A 00 02 00 AA BB", "ESC *", "00 02 00 AA BB"},
		{"ESC * mode 32", "1B 2A 20 01 00 AA BB CC", "ESC *", "20 01 00 AA BB CC"},
		{"ESC D", "1B 44 05 0A 00", "ESC D", "05 0A 00"},
		{"GS I", "1D 49 01", "GS I", "01"},
		{"GS r", "1D 72 01", "GS r", "01"},
		{"GS a", "1D 61 FF", "GS a", "FF"},
		{"GS V", "1D 56 00", "GS V", "00"},
		{"GS v 0", "1D 76 30 00 01 00 01 00 AA", "GS v 0", "00 01 00 01 00 AA"},
		{"GS ( L", "1D 28 4C 01 00 AA", "GS ( L", "01 00 AA"},
		{"GS k format A", "1D 6B 01 41 42 00", "GS k", "01 41 42 00"},
		{"GS k format B", "1D 6B 07 02 41 42", "GS k", "07 02 41 42"},
		{"DLE EOT", "10 04 01", "DLE EOT", "01"},
		{"DLE ENQ", "10 05 01", "DLE ENQ", "01"},
		{"FS p", "1C 70 01 02", "FS p", "01 02"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := New(nil)
			commands, _ := d.Feed(hexBytes(t, tc.input))
			require.Len(t, commands, 1, "expected exactly one command")
			assert.False(t, commands[0].Malformed)
			assert.Equal(t, tc.mnemonic, commands[0].Mnemonic)
			assert.Equal(t, hexBytes(t, tc.params), commands[0].Params)
			assert.Equal(t, hexBytes(t, tc.input), commands[0].Raw)
		})
	}
}
