package rdm

// handleDiscUniqueBranch implements the binary-search discovery branch.
// Muted responders never answer a branch search; an unmuted responder
// answers only if its UID falls within [low, high]. Malformed discovery
// frames (wrong param_data_length) are silently dropped — discovery-class
// errors are never NACKed.
func (r *Responder) handleDiscUniqueBranch(f CommandFrame) {
	if r.muted {
		return
	}
	if f.ParamDataLength() != 2*UIDSize {
		return
	}

	data := f.ParamData()
	low := uidFromBytes(data[0:UIDSize])
	high := uidFromBytes(data[UIDSize : 2*UIDSize])

	myUID := r.info.UID()
	if myUID < low || myUID > high {
		return
	}

	r.log.Debugf("rdm: disc unique branch match, uid=%s", myUID)

	buf := r.bus.FrameBuffer()
	disc := AsDiscoveryResponseFrame(buf)
	disc.Build(myUID)

	if err := r.bus.SendDiscoveryResponse(DiscoveryResponseSize); err != nil {
		r.fault.ReportFault(err)
	}
}

// handleDiscMute implements DISC_MUTE / DISC_UN_MUTE. Both transition
// unconditionally (from either state) and ACK with a 2-byte zero Control
// Field. This keeps the source's GET/SET RESPONSE-style ACK framing over
// the DISCOVERY_COMMAND frame rather than reshaping it into a
// DISCOVERY_COMMAND_RESPONSE class byte; worth re-validating against a
// compliance test, not changed here.
func (r *Responder) handleDiscMute(f CommandFrame, mute bool) {
	if f.ParamDataLength() != 0 {
		return
	}

	r.muted = mute

	f.SetParamData([]byte{0x00, 0x00})
	r.ack(f)
}
