package escpos

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// AuditSink receives the structured records a Decoder produces while
// decoding: one Packet call per Feed invocation (before decoding begins),
// one Command call per emitted Command (including TEXT and MALFORMED), and
// one Response call per generated response byte string (spec.md §4.4).
//
// Implementations must not block the Decoder for long; Feed calls Packet,
// Command, and Response synchronously and in order.
type AuditSink interface {
	Startup()
	Packet(data []byte)
	Command(cmd Command)
	Response(raw []byte, description string)
}

func isoMillis(t time.Time) string {
	return t.Format("2006-01-02T15:04:05.000Z07:00")
}

func hexDump(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = hex.EncodeToString([]byte{c})
	}
	return strings.Join(parts, " ")
}

func paramSummary(cmd Command) string {
	if cmd.Mnemonic == "TEXT" {
		return fmt.Sprintf("%q", cmd.Text)
	}
	if len(cmd.Params) == 0 {
		return "-"
	}
	return hexDump(cmd.Params)
}

func formatPacket(t time.Time, data []byte) string {
	return fmt.Sprintf("%s PKT  received %d bytes: %s\n", isoMillis(t), len(data), hexDump(data))
}

func formatCommand(t time.Time, cmd Command) string {
	return fmt.Sprintf("%s CMD  %-12s %-25s %s | %s\n",
		isoMillis(t), cmd.Mnemonic, cmd.DisplayName, paramSummary(cmd), hexDump(cmd.Raw))
}

func formatResponse(t time.Time, raw []byte, description string) string {
	return fmt.Sprintf("%s RSP  → response %s | %s\n", isoMillis(t), description, hexDump(raw))
}
