package rdm

// CommandFrame is a read/write projection of an RDM command frame over a
// shared byte slice. It never copies; every accessor reads or writes the
// backing slice directly at the documented big-endian offset — no
// assumption about host alignment, explicit shift-and-or throughout.
//
// A CommandFrame has at most one logical owner at a time: the dispatcher
// holds it exclusively between "frame available" and "reply emitted".
type CommandFrame struct {
	b []byte
}

// AsCommandFrame projects b as a command frame. b is aliased, not copied.
func AsCommandFrame(b []byte) CommandFrame { return CommandFrame{b: b} }

func (f CommandFrame) StartCode() byte    { return f.b[offStartCode] }
func (f CommandFrame) SubStartCode() byte { return f.b[offSubStartCode] }

func (f CommandFrame) MessageLength() byte     { return f.b[offMessageLength] }
func (f CommandFrame) SetMessageLength(v byte) { f.b[offMessageLength] = v }

func (f CommandFrame) DestinationUID() UID     { return uidFromBytes(f.b[offDestUID : offDestUID+UIDSize]) }
func (f CommandFrame) SetDestinationUID(u UID) { putUID(f.b[offDestUID:offDestUID+UIDSize], u) }

func (f CommandFrame) SourceUID() UID     { return uidFromBytes(f.b[offSrcUID : offSrcUID+UIDSize]) }
func (f CommandFrame) SetSourceUID(u UID) { putUID(f.b[offSrcUID:offSrcUID+UIDSize], u) }

func (f CommandFrame) TransactionNumber() byte { return f.b[offTransactionNum] }

func (f CommandFrame) PortIDOrResponseType() byte     { return f.b[offPortIDOrResp] }
func (f CommandFrame) SetPortIDOrResponseType(v byte) { f.b[offPortIDOrResp] = v }

func (f CommandFrame) MessageCount() byte     { return f.b[offMessageCount] }
func (f CommandFrame) SetMessageCount(v byte) { f.b[offMessageCount] = v }

func (f CommandFrame) SubDevice() uint16 {
	return uint16(f.b[offSubDevice])<<8 | uint16(f.b[offSubDevice+1])
}

func (f CommandFrame) CommandClass() byte     { return f.b[offCommandClass] }
func (f CommandFrame) SetCommandClass(v byte) { f.b[offCommandClass] = v }

func (f CommandFrame) ParamID() uint16 {
	return uint16(f.b[offParamID])<<8 | uint16(f.b[offParamID+1])
}

func (f CommandFrame) ParamDataLength() byte     { return f.b[offParamDataLen] }
func (f CommandFrame) SetParamDataLength(v byte) { f.b[offParamDataLen] = v }

// ParamData returns the param_data region, sized by ParamDataLength. The
// returned slice aliases the backing buffer.
func (f CommandFrame) ParamData() []byte {
	n := int(f.ParamDataLength())
	return f.b[offParamData : offParamData+n]
}

// ParamDataCap returns the full param_data capacity available in the
// backing buffer (up to MaxParamDataLength), for handlers that write
// before setting the final length.
func (f CommandFrame) ParamDataCap() []byte {
	return f.b[offParamData : offParamData+MaxParamDataLength]
}

// SetParamData writes data into param_data and updates both
// param_data_length and message_length to maintain the invariant
// message_length == RDM_MESSAGE_MINIMUM_SIZE + param_data_length.
func (f CommandFrame) SetParamData(data []byte) {
	n := copy(f.ParamDataCap(), data)
	f.SetParamDataLength(byte(n))
	f.SetMessageLength(byte(RDMMessageMinimumSize + n))
}

// SetEmptyParamData clears param_data and sets message_length back to the
// bare header size.
func (f CommandFrame) SetEmptyParamData() {
	f.SetParamDataLength(0)
	f.SetMessageLength(byte(RDMMessageMinimumSize))
}

// ChecksumOffset returns the byte offset of the checksum field, which
// depends on param_data_length.
func (f CommandFrame) ChecksumOffset() int {
	return offParamData + int(f.ParamDataLength())
}

// Checksum returns the transmitted 16-bit checksum field.
func (f CommandFrame) Checksum() uint16 {
	o := f.ChecksumOffset()
	return uint16(f.b[o])<<8 | uint16(f.b[o+1])
}

// SetChecksum writes the 16-bit checksum field.
func (f CommandFrame) SetChecksum(v uint16) {
	o := f.ChecksumOffset()
	f.b[o] = byte(v >> 8)
	f.b[o+1] = byte(v)
}

// ComputeChecksum returns the 16-bit unsigned sum of every byte from
// start_code through the end of param_data (checksum itself excluded).
func (f CommandFrame) ComputeChecksum() uint16 {
	var sum uint16
	end := f.ChecksumOffset()
	for _, b := range f.b[:end] {
		sum += uint16(b)
	}
	return sum
}

// ReplyLength returns the full reply length in bytes (header + param_data +
// 2-byte checksum), for handing to the bus driver's send call.
func (f CommandFrame) ReplyLength() int {
	return f.ChecksumOffset() + 2
}

// DiscoveryResponseFrame is a write-only projection used to build the
// non-standard discovery response layout (preamble + masked UID +
// checksum) in place over the shared frame buffer.
type DiscoveryResponseFrame struct {
	b []byte
}

// AsDiscoveryResponseFrame projects b (which must have at least
// DiscoveryResponseSize bytes) as a discovery response frame.
func AsDiscoveryResponseFrame(b []byte) DiscoveryResponseFrame {
	return DiscoveryResponseFrame{b: b[:DiscoveryResponseSize]}
}

// Build writes the full discovery response for uid into the frame:
// 7x0xFE + 0xAA preamble, the masked UID (each byte twice, once ORed
// with 0xAA, once with 0x55), and the checksum (6*0xFF + sum of UID
// bytes) split the same way across 4 bytes.
func (f DiscoveryResponseFrame) Build(uid UID) {
	for i := 0; i < 7; i++ {
		f.b[i] = 0xFE
	}
	f.b[7] = 0xAA

	var uidBytes [UIDSize]byte
	putUID(uidBytes[:], uid)

	checksum := uint16(6 * 0xFF)
	for i, ub := range uidBytes {
		f.b[8+2*i] = ub | 0xAA
		f.b[8+2*i+1] = ub | 0x55
		checksum += uint16(ub)
	}

	hi := byte(checksum >> 8)
	lo := byte(checksum)
	f.b[20] = hi | 0xAA
	f.b[21] = hi | 0x55
	f.b[22] = lo | 0xAA
	f.b[23] = lo | 0x55
}
