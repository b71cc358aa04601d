package escpos

// variableState tracks the incremental decode of a variable-length
// parameter policy (spec.md §4.1). header bytes are read from d.pending
// directly (offset by d.opcodeLen) rather than duplicated here; this struct
// only holds the counters needed to know when the header is complete and
// what it implied about the trailing data length.
type variableState struct {
	policy paramPolicy

	// dataLen is the resolved length of the trailing data block, or -1
	// while still reading header bytes.
	dataLen int

	// GS k (barcode) bookkeeping: the policy branches on the first
	// parameter byte, so it needs a little more state than a simple
	// header-length count.
	barcodeFormatB     bool
	barcodeLenByteSeen bool
}

// applyVariablePolicy is called after b has already been appended to
// d.pending. It reports whether the command is now complete, and if so,
// whether it should be emitted as MALFORMED.
func applyVariablePolicy(d *Decoder, b byte) (done, malformed bool) {
	switch d.variable.policy {
	case policyTerminatedByNUL:
		return stepTerminatedByNUL(d, b)
	case policyEscStarBitImage:
		return stepEscStarBitImage(d, b)
	case policyGsVZeroRaster:
		return stepGsVZeroRaster(d, b)
	case policyGsParenL:
		return stepGsParenL(d, b)
	case policyGsKBarcode:
		return stepGsKBarcode(d, b)
	case policyGsVCut:
		return stepGsVCut(d, b)
	default:
		return true, true
	}
}

func stepTerminatedByNUL(_ *Decoder, b byte) (done, malformed bool) {
	return b == 0x00, false
}

// stepEscStarBitImage implements ESC * (select bit-image mode): header is
// m, nL, nH; data length is n=nL|(nH<<8) for m in {0,1}, n*3 for m in
// {32,33}; any other m is malformed.
func stepEscStarBitImage(d *Decoder, _ byte) (done, malformed bool) {
	v := &d.variable
	collected := len(d.pending) - d.opcodeLen

	if v.dataLen < 0 {
		if collected < 3 {
			return false, false
		}
		header := d.pending[d.opcodeLen : d.opcodeLen+3]
		m, nL, nH := header[0], header[1], header[2]
		n := int(nL) | int(nH)<<8
		switch m {
		case 0, 1:
			v.dataLen = n
		case 32, 33:
			v.dataLen = n * 3
		default:
			return true, true
		}
		return v.dataLen == 0, false
	}

	return collected-3 >= v.dataLen, false
}

// stepGsVZeroRaster implements GS v 0 (print raster bit image): header is
// m, xL, xH, yL, yH; data length is (xL|xH<<8) * (yL|yH<<8).
func stepGsVZeroRaster(d *Decoder, _ byte) (done, malformed bool) {
	v := &d.variable
	collected := len(d.pending) - d.opcodeLen

	if v.dataLen < 0 {
		if collected < 5 {
			return false, false
		}
		header := d.pending[d.opcodeLen : d.opcodeLen+5]
		width := int(header[1]) | int(header[2])<<8
		height := int(header[3]) | int(header[4])<<8
		v.dataLen = width * height
		return v.dataLen == 0, false
	}

	return collected-5 >= v.dataLen, false
}

// stepGsParenL implements GS ( L (function B commands): header is pL, pH;
// data length is pL|(pH<<8).
func stepGsParenL(d *Decoder, _ byte) (done, malformed bool) {
	v := &d.variable
	collected := len(d.pending) - d.opcodeLen

	if v.dataLen < 0 {
		if collected < 2 {
			return false, false
		}
		header := d.pending[d.opcodeLen : d.opcodeLen+2]
		v.dataLen = int(header[0]) | int(header[1])<<8
		return v.dataLen == 0, false
	}

	return collected-2 >= v.dataLen, false
}

// stepGsKBarcode implements GS k (print barcode): the first parameter byte
// m selects Format A (m<=6, data terminated by 0x00) or Format B (m>6, an
// explicit length byte n followed by n data bytes).
func stepGsKBarcode(d *Decoder, b byte) (done, malformed bool) {
	v := &d.variable
	collected := len(d.pending) - d.opcodeLen

	if collected == 1 {
		v.barcodeFormatB = b > 6
		return false, false
	}

	if !v.barcodeFormatB {
		return b == 0x00, false
	}

	if !v.barcodeLenByteSeen {
		v.barcodeLenByteSeen = true
		v.dataLen = int(b)
		return v.dataLen == 0, false
	}

	return collected-2 >= v.dataLen, false
}

// stepGsVCut implements GS V (cut paper): modes {0,1,48,49} take no further
// bytes, modes {65,66} take one more byte, any other mode is a single-byte
// malformed record.
func stepGsVCut(d *Decoder, b byte) (done, malformed bool) {
	v := &d.variable
	collected := len(d.pending) - d.opcodeLen

	if collected == 1 {
		switch b {
		case 0, 1, 48, 49:
			return true, false
		case 65, 66:
			v.dataLen = 1
			return false, false
		default:
			return true, true
		}
	}

	return true, false
}
