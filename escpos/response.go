package escpos

// responseItem pairs a synthesized response byte string with a short
// description used only for the audit trail (spec.md §4.4's "RSP" lines).
type responseItem struct {
	Bytes       []byte
	Description string
}

// GenerateResponses is a pure function from one decoded command to zero or
// more canned responses, per the rule table in spec.md §4.3. Unlisted
// parameter values and MALFORMED commands never produce a response. For
// well-formed commands without a scripted response the caller supplies a
// default ACK; MALFORMED-only bursts get none (see ble.Notifier).
func GenerateResponses(cmd Command) []responseItem {
	if cmd.Malformed {
		return nil
	}

	switch cmd.Mnemonic {
	case "DLE EOT":
		return dleEOTResponse(cmd)
	case "GS I":
		return gsIResponse(cmd)
	case "GS r":
		return gsRResponse(cmd)
	case "ESC v":
		return []responseItem{{Bytes: []byte{0x00}, Description: "纸传感器正常 Paper sensor normal"}}
	default:
		return nil
	}
}

func dleEOTResponse(cmd Command) []responseItem {
	if len(cmd.Params) != 1 {
		return nil
	}
	switch cmd.Params[0] {
	case 1:
		return []responseItem{{Bytes: []byte{0x16}, Description: "联机无错误 Printer online, no errors"}}
	case 2:
		return []responseItem{{Bytes: []byte{0x12}, Description: "离线状态正常 Offline status OK"}}
	case 3:
		return []responseItem{{Bytes: []byte{0x12}, Description: "无错误 No error"}}
	case 4:
		return []responseItem{{Bytes: []byte{0x12}, Description: "纸张到位 Paper present"}}
	default:
		return nil
	}
}

func gsIResponse(cmd Command) []responseItem {
	if len(cmd.Params) != 1 {
		return nil
	}
	switch cmd.Params[0] {
	case 1:
		return []responseItem{{Bytes: []byte("BT-B36"), Description: "型号标识 Model identifier"}}
	case 2:
		return []responseItem{{Bytes: []byte{0x02}, Description: "打印机类型码 Printer type code"}}
	case 3:
		return []responseItem{{Bytes: []byte("0.1.3"), Description: "固件版本 Firmware version"}}
	default:
		return nil
	}
}

func gsRResponse(cmd Command) []responseItem {
	if len(cmd.Params) != 1 {
		return nil
	}
	switch cmd.Params[0] {
	case 1:
		return []responseItem{{Bytes: []byte{0x00}, Description: "纸状态正常 Paper status normal"}}
	case 2:
		return []responseItem{{Bytes: []byte{0x00}, Description: "钱箱状态正常 Cash-drawer status"}}
	default:
		return nil
	}
}
