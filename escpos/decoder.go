package escpos

import (
	"time"

	"escposemu/ascii"
)

// stateTag discriminates the decoder's current parser state. Per-variant
// bookkeeping lives in the fields below it rather than in separate structs,
// but the tag keeps the invariant "carry-over holds exactly the bytes
// belonging to the in-progress state" easy to reason about.
type stateTag int

const (
	stateIdle stateTag = iota
	stateEscPrefix
	stateGsPrefix
	stateDlePrefix
	stateFsPrefix
	stateFixedParam
	stateVariableParam
)

// gsHold tracks the second byte of a GS-prefixed opcode while decoding
// still needs a third byte to resolve it (GS v 0, GS ( L).
type gsHold int

const (
	gsHoldNone gsHold = iota
	gsHoldV
	gsHoldParen
)

// Decoder incrementally parses an ESC/POS byte stream fed across one or
// more Feed calls. It is not safe for concurrent use; the caller must
// serialise writes per session (spec.md §5).
type Decoder struct {
	sink AuditSink

	state  stateTag
	gsHold gsHold

	// pending is the carry-over buffer: every byte of the in-progress
	// command consumed since the last emitted command. Plain text bytes are
	// held in text instead. All previously emitted Raw fields, followed by
	// pending and text, always add up to the bytes fed so far.
	pending []byte
	// opcodeLen is the number of leading bytes in pending that belong to
	// the opcode itself (as opposed to collected parameter/data bytes).
	opcodeLen int

	// text accumulates a run of plain bytes seen while Idle.
	text []byte

	entry    opcodeEntry
	needed   int // FixedParam: total parameter bytes required
	variable variableState
}

// New constructs a Decoder that audits through sink. sink may be nil to
// disable auditing entirely.
func New(sink AuditSink) *Decoder {
	d := &Decoder{sink: sink}
	if d.sink != nil {
		d.sink.Startup()
	}
	return d
}

// Reset discards carry-over, the text accumulator, and parser state. The
// next Feed call begins as though the Decoder were freshly constructed.
func (d *Decoder) Reset() {
	d.clearPending()
	d.text = nil
}

// Feed decodes data, returning every command completed during this call (in
// the order their final byte was consumed) and every response byte string
// the response generator produced for them. Feed never blocks and never
// panics; malformed input yields a MALFORMED command rather than an error.
func (d *Decoder) Feed(data []byte) ([]Command, [][]byte) {
	if d.sink != nil {
		d.sink.Packet(data)
	}

	var commands []Command
	var responses [][]byte

	for _, b := range data {
		for _, cmd := range d.step(b) {
			commands = append(commands, cmd)
			if d.sink != nil {
				d.sink.Command(cmd)
			}
			if cmd.Malformed {
				continue
			}
			for _, item := range GenerateResponses(cmd) {
				responses = append(responses, item.Bytes)
				if d.sink != nil {
					d.sink.Response(item.Bytes, item.Description)
				}
			}
		}
	}

	return commands, responses
}

func (d *Decoder) step(b byte) []Command {
	switch d.state {
	case stateIdle:
		return d.stepIdle(b)
	case stateEscPrefix:
		return d.stepPrefixByte(b, escTable, "ESC")
	case stateGsPrefix:
		return d.stepGsPrefix(b)
	case stateDlePrefix:
		return d.stepPrefixByte(b, dleTable, "DLE")
	case stateFsPrefix:
		return d.stepPrefixByte(b, fsTable, "FS")
	case stateFixedParam:
		return d.stepFixedParam(b)
	case stateVariableParam:
		return d.stepVariableParam(b)
	default:
		return nil
	}
}

func (d *Decoder) stepIdle(b byte) []Command {
	if entry, ok := singleByteCommands[b]; ok {
		var out []Command
		if flushed, has := d.flushText(); has {
			out = append(out, flushed)
		}
		d.pending = append(d.pending, b)
		cmd := d.finalizeCommand(entry, len(d.pending))
		d.clearPending()
		return append(out, cmd)
	}

	if ascii.CommandPrefix(b) {
		var out []Command
		if flushed, has := d.flushText(); has {
			out = append(out, flushed)
		}
		d.pending = append(d.pending, b)
		switch b {
		case ascii.ESC:
			d.state = stateEscPrefix
		case ascii.GS:
			d.state = stateGsPrefix
			d.gsHold = gsHoldNone
		case ascii.DLE:
			d.state = stateDlePrefix
		case ascii.FS:
			d.state = stateFsPrefix
		}
		return out
	}

	d.text = append(d.text, b)
	return nil
}

// stepPrefixByte resolves the byte following a single-byte prefix (ESC,
// DLE, FS) against table, the two-byte opcode's lookup table.
func (d *Decoder) stepPrefixByte(b byte, table map[byte]opcodeEntry, prefixName string) []Command {
	entry, ok := table[b]
	d.pending = append(d.pending, b)
	if !ok {
		cmd := malformedCommand(d.pending, "未知指令 Unknown "+prefixName+" opcode")
		d.clearPending()
		return []Command{cmd}
	}
	d.opcodeLen = len(d.pending)
	return d.startCommand(entry)
}

// stepGsPrefix resolves the byte(s) following GS (0x1D). GS v and GS ( each
// need a third byte, peeked here before committing to a policy, exactly as
// spec.md §4.1 describes.
func (d *Decoder) stepGsPrefix(b byte) []Command {
	if d.gsHold != gsHoldNone {
		hold := d.gsHold
		d.gsHold = gsHoldNone
		next := gsThirdByteV
		if hold == gsHoldParen {
			next = gsThirdByteParen
		}
		entry, ok := next[b]
		d.pending = append(d.pending, b)
		if !ok {
			cmd := malformedCommand(d.pending, "未知指令 Unknown GS opcode")
			d.clearPending()
			return []Command{cmd}
		}
		d.opcodeLen = len(d.pending)
		return d.startCommand(entry)
	}

	switch b {
	case 'v':
		d.pending = append(d.pending, b)
		d.gsHold = gsHoldV
		return nil
	case '(':
		d.pending = append(d.pending, b)
		d.gsHold = gsHoldParen
		return nil
	}

	entry, ok := gsTable[b]
	d.pending = append(d.pending, b)
	if !ok {
		cmd := malformedCommand(d.pending, "未知指令 Unknown GS opcode")
		d.clearPending()
		return []Command{cmd}
	}
	d.opcodeLen = len(d.pending)
	return d.startCommand(entry)
}

// startCommand commits to entry's policy once the opcode is fully resolved,
// emitting immediately for zero-length fixed commands.
func (d *Decoder) startCommand(entry opcodeEntry) []Command {
	d.entry = entry
	if entry.policy == policyFixed {
		d.needed = entry.fixedLen
		if d.needed == 0 {
			cmd := d.finalizeCommand(entry, d.opcodeLen)
			d.clearPending()
			return []Command{cmd}
		}
		d.state = stateFixedParam
		return nil
	}

	d.variable = variableState{policy: entry.policy, dataLen: -1}
	d.state = stateVariableParam
	return nil
}

func (d *Decoder) stepFixedParam(b byte) []Command {
	d.pending = append(d.pending, b)
	if len(d.pending)-d.opcodeLen < d.needed {
		return nil
	}
	cmd := d.finalizeCommand(d.entry, d.opcodeLen)
	d.clearPending()
	return []Command{cmd}
}

func (d *Decoder) stepVariableParam(b byte) []Command {
	d.pending = append(d.pending, b)
	done, malformed := applyVariablePolicy(d, b)
	if !done {
		return nil
	}
	var cmd Command
	if malformed {
		cmd = malformedCommand(d.pending, "变长指令头非法 Malformed variable-length command header")
	} else {
		cmd = d.finalizeCommand(d.entry, d.opcodeLen)
	}
	d.clearPending()
	return []Command{cmd}
}

func (d *Decoder) flushText() (Command, bool) {
	if len(d.text) == 0 {
		return Command{}, false
	}
	raw := d.text
	d.text = nil
	return Command{
		Timestamp:   time.Now(),
		Mnemonic:    "TEXT",
		DisplayName: "文本 Text",
		Text:        decodeText(raw),
		Raw:         raw,
	}, true
}

func (d *Decoder) finalizeCommand(entry opcodeEntry, opcodeLen int) Command {
	raw := append([]byte(nil), d.pending...)
	params := append([]byte(nil), raw[opcodeLen:]...)
	return Command{
		Timestamp:   time.Now(),
		Mnemonic:    entry.mnemonic,
		DisplayName: entry.displayName,
		Params:      params,
		Raw:         raw,
	}
}

func (d *Decoder) clearPending() {
	d.pending = nil
	d.state = stateIdle
	d.opcodeLen = 0
	d.entry = opcodeEntry{}
	d.needed = 0
	d.variable = variableState{}
	d.gsHold = gsHoldNone
}
