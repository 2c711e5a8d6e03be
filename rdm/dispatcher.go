package rdm

import "github.com/dmxlabs/rdm-responder/rdmerr"

// dispatch runs the addressing check, command-class branch, parameter
// lookup, handler call, and reply emission in order. It never answers a
// frame twice and every NACK path returns immediately.
func (r *Responder) dispatch(f CommandFrame) {
	myUID := r.info.UID()
	dest := f.DestinationUID()

	isBroadcast := dest == UIDAll
	isVendorcast := dest.IsVendorcast(myUID.ManufacturerID())
	isForMe := dest == myUID || isVendorcast

	if !isForMe && !isBroadcast {
		r.log.Debugf("rdm: dropping frame not addressed to us (dest=%s)", dest)
		return
	}

	class := f.CommandClass()

	if class == ClassDiscoveryCommand {
		r.dispatchDiscovery(f)
		return
	}

	if class != ClassGetCommand && class != ClassSetCommand {
		r.nack(f, rdmerr.ReasonUnsupportedCommandClas)
		return
	}

	subDevice := f.SubDevice()
	if subDevice != 0 && subDevice != 0xFFFF {
		r.nack(f, rdmerr.ReasonSubDeviceOutOfRange)
		return
	}

	pid := f.ParamID()
	entry, ok := lookupPID(pid)
	if !ok {
		r.nack(f, rdmerr.ReasonUnknownPID)
		return
	}

	wasBroadcast := isBroadcast || isVendorcast

	if class == ClassGetCommand {
		r.dispatchGet(f, entry, wasBroadcast, subDevice)
		return
	}

	r.dispatchSet(f, entry, wasBroadcast)
}

func (r *Responder) dispatchGet(f CommandFrame, entry pidEntry, wasBroadcast bool, subDevice uint16) {
	if wasBroadcast {
		// GET is silently dropped under broadcast/vendorcast — a
		// controller never broadcasts a GET expecting replies from every
		// responder on the bus.
		return
	}
	if subDevice == 0xFFFF {
		r.nack(f, rdmerr.ReasonSubDeviceOutOfRange)
		return
	}
	if entry.get == nil {
		r.nack(f, rdmerr.ReasonUnsupportedCommandClas)
		return
	}
	if int(f.ParamDataLength()) != entry.getArgSize {
		r.nack(f, rdmerr.ReasonFormatError)
		return
	}

	err := entry.get(r, f)
	if err != nil {
		r.nackErr(f, err)
		return
	}
	r.ack(f)
}

func (r *Responder) dispatchSet(f CommandFrame, entry pidEntry, wasBroadcast bool) {
	if entry.set == nil {
		if !wasBroadcast {
			r.nack(f, rdmerr.ReasonUnsupportedCommandClas)
		}
		return
	}

	err := entry.set(r, f, wasBroadcast)

	if wasBroadcast {
		// A SET under broadcast/vendorcast never produces a reply,
		// success or failure — the dispatcher mutates state (or rejects
		// it) silently. This also covers RESET_DEVICE, whose handler has
		// already emitted any reply itself before this point;
		// errAlreadyReplied short-circuits the rest of this function
		// regardless of branch.
		return
	}
	if err == errAlreadyReplied {
		return
	}
	if err != nil {
		r.nackErr(f, err)
		return
	}
	r.ack(f)
}

func (r *Responder) dispatchDiscovery(f CommandFrame) {
	switch f.ParamID() {
	case PIDDiscUniqueBranch:
		r.handleDiscUniqueBranch(f)
	case PIDDiscMute:
		r.handleDiscMute(f, true)
	case PIDDiscUnMute:
		r.handleDiscMute(f, false)
	default:
		// Unknown discovery sub-command: discovery-class errors are
		// never NACKed; silently drop.
	}
}
