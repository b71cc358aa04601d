package escpos

// paramPolicy describes how many parameter bytes follow an opcode and how
// that count is determined.
type paramPolicy int

const (
	// policyFixed consumes exactly fixedLen additional bytes (0 allowed).
	policyFixed paramPolicy = iota
	// policyTerminatedByNUL consumes bytes up to and including a 0x00
	// sentinel.
	policyTerminatedByNUL
	// policyEscStarBitImage implements ESC * (select bit-image mode):
	// m, nL, nH header; data length is n=nL|(nH<<8) for m in {0,1}, n*3 for
	// m in {32,33}; any other m is malformed.
	policyEscStarBitImage
	// policyGsVZeroRaster implements GS v 0 (print raster bit image):
	// m, xL, xH, yL, yH header; data length is (xL|xH<<8) * (yL|yH<<8).
	policyGsVZeroRaster
	// policyGsParenL implements GS ( L (function B commands): pL, pH
	// header; data length is pL|(pH<<8).
	policyGsParenL
	// policyGsKBarcode implements GS k (print barcode): branches on the
	// first parameter byte m. m<=6 is TerminatedByNUL from the following
	// byte; m>6 (Format B) reads an explicit length byte n, then n bytes.
	policyGsKBarcode
	// policyGsVCut implements GS V (cut paper): branches on m. Modes
	// {0,1,48,49} take no further bytes; modes {65,66} take one more byte;
	// any other m is a single-byte malformed record.
	policyGsVCut
)

// opcodeEntry describes one recognised opcode.
type opcodeEntry struct {
	mnemonic    string
	displayName string
	policy      paramPolicy
	fixedLen    int // meaningful only when policy == policyFixed
}

// singleByteCommands classifies control characters that are self-contained
// commands when seen in the Idle state.
var singleByteCommands = map[byte]opcodeEntry{
	0x09: {mnemonic: "HT", displayName: "水平定位 Horizontal tab", policy: policyFixed, fixedLen: 0},
	0x0A: {mnemonic: "LF", displayName: "换行 Line feed", policy: policyFixed, fixedLen: 0},
	0x0C: {mnemonic: "FF", displayName: "换页 Form feed", policy: policyFixed, fixedLen: 0},
	0x0D: {mnemonic: "CR", displayName: "回车 Carriage return", policy: policyFixed, fixedLen: 0},
}

// escTable resolves the byte following an ESC (0x1B) prefix.
var escTable = map[byte]opcodeEntry{
	'@': {mnemonic: "ESC @", displayName: "初始化打印机 Initialize printer", policy: policyFixed, fixedLen: 0},
	'a': {mnemonic: "ESC a", displayName: "选择对齐方式 Select justification", policy: policyFixed, fixedLen: 1},
	'!': {mnemonic: "ESC !", displayName: "选择打印模式 Select print mode", policy: policyFixed, fixedLen: 1},
	'v': {mnemonic: "ESC v", displayName: "传送纸传感器状态 Transmit paper sensor status", policy: policyFixed, fixedLen: 1},
	'*': {mnemonic: "ESC *", displayName: "选择位图模式 Select bit-image mode", policy: policyEscStarBitImage},
	'D': {mnemonic: "ESC D", displayName: "设置制表位 Set horizontal tab positions", policy: policyTerminatedByNUL},
}

// gsTable resolves the byte following a GS (0x1D) prefix for opcodes that
// are fully determined by that second byte alone. 'v' and '(' require a
// third byte and are resolved separately in decoder.go.
var gsTable = map[byte]opcodeEntry{
	'I': {mnemonic: "GS I", displayName: "传送打印机ID Transmit printer ID", policy: policyFixed, fixedLen: 1},
	'r': {mnemonic: "GS r", displayName: "传送状态 Transmit status", policy: policyFixed, fixedLen: 1},
	'a': {mnemonic: "GS a", displayName: "使能/禁用自动状态返回 Enable/disable ASB", policy: policyFixed, fixedLen: 1},
	'k': {mnemonic: "GS k", displayName: "打印条码 Print barcode", policy: policyGsKBarcode},
	'V': {mnemonic: "GS V", displayName: "切纸 Cut paper", policy: policyGsVCut},
}

// gsThirdByteV resolves the byte following "GS v" (0x1D 0x76): only mode
// '0' is recognised, yielding GS v 0 (raster bit image).
var gsThirdByteV = map[byte]opcodeEntry{
	'0': {mnemonic: "GS v 0", displayName: "光栅位图打印 Print raster bit image", policy: policyGsVZeroRaster},
}

// gsThirdByteParen resolves the byte following "GS (" (0x1D 0x28): only
// 'L' is recognised, yielding GS ( L (function B commands).
var gsThirdByteParen = map[byte]opcodeEntry{
	'L': {mnemonic: "GS ( L", displayName: "扩展功能命令 Function B command", policy: policyGsParenL},
}

// dleTable resolves the byte following a DLE (0x10) prefix.
var dleTable = map[byte]opcodeEntry{
	0x04: {mnemonic: "DLE EOT", displayName: "实时状态传送 Real-time status transmission", policy: policyFixed, fixedLen: 1},
	0x05: {mnemonic: "DLE ENQ", displayName: "实时请求 Real-time request", policy: policyFixed, fixedLen: 1},
}

// fsTable resolves the byte following an FS (0x1C) prefix.
var fsTable = map[byte]opcodeEntry{
	'p': {mnemonic: "FS p", displayName: "打印NV位图 Print NV bit image", policy: policyFixed, fixedLen: 2},
}
