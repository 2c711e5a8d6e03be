package rdm

import "github.com/dmxlabs/rdm-responder/rdmerr"

// writeString copies up to MaxParamDataLength bytes of s into the frame's
// param_data and sets param_data_length to exactly that many bytes — the common
// "emit a label-like string" shape shared by several GET handlers,
// matching the original source's handle_string pattern.
func writeString(f CommandFrame, s string) {
	f.SetParamData([]byte(s))
}

// getSupportedParameters emits the 2-byte big-endian PIDs of every table
// entry with includeInSupportedPs = true, in table order.
func getSupportedParameters(r *Responder, f CommandFrame) error {
	out := f.ParamDataCap()
	n := 0
	for _, e := range pidTable {
		if !e.includeInSupportedPs {
			continue
		}
		out[n] = byte(e.pid >> 8)
		out[n+1] = byte(e.pid)
		n += 2
	}
	f.SetParamDataLength(byte(n))
	f.SetMessageLength(byte(RDMMessageMinimumSize + n))
	return nil
}

// getDeviceInfo packs the fixed 19-byte RDM DEVICE_INFO structure:
// protocol version, model ID, product category, software version ID,
// DMX footprint, current/count personality, DMX start address,
// sub-device count, sensor count.
func getDeviceInfo(r *Responder, f CommandFrame) error {
	out := f.ParamDataCap()

	out[0] = 1 // RDM protocol version major
	out[1] = 0 // RDM protocol version minor

	modelID := r.info.DeviceModelID()
	out[2] = byte(modelID >> 8)
	out[3] = byte(modelID)

	category := r.info.ProductCategory()
	out[4] = byte(category >> 8)
	out[5] = byte(category)

	swID := r.info.SoftwareVersionID()
	out[6] = byte(swID >> 24)
	out[7] = byte(swID >> 16)
	out[8] = byte(swID >> 8)
	out[9] = byte(swID)

	footprint := r.info.CurrentFootprint()
	out[10] = byte(footprint >> 8)
	out[11] = byte(footprint)

	out[12] = r.info.CurrentPersonality()
	out[13] = r.info.PersonalityCount()

	addr := r.info.DMXStartAddress()
	out[14] = byte(addr >> 8)
	out[15] = byte(addr)

	out[16] = 0 // sub-device count, high byte (no sub-devices, non-goal)
	out[17] = 0 // sub-device count, low byte
	out[18] = 0 // sensor count (sensors are a non-goal)

	f.SetParamDataLength(19)
	f.SetMessageLength(byte(RDMMessageMinimumSize + 19))
	return nil
}

func getDeviceModelDescription(r *Responder, f CommandFrame) error {
	writeString(f, r.hw.BoardModel())
	return nil
}

func getManufacturerLabel(r *Responder, f CommandFrame) error {
	writeString(f, r.info.ManufacturerLabel())
	return nil
}

func getDeviceLabel(r *Responder, f CommandFrame) error {
	writeString(f, r.info.Label())
	return nil
}

// setDeviceLabel rejects payloads over 32 bytes with FORMAT_ERROR rather
// than truncating.
func setDeviceLabel(r *Responder, f CommandFrame, wasBroadcast bool) error {
	if f.ParamDataLength() > 32 {
		return rdmerr.ErrFormatError
	}
	label := string(f.ParamData())
	r.info.SetLabel(label)
	r.pers.PersistLabel(label)
	f.SetEmptyParamData()
	return nil
}

func getFactoryDefaults(r *Responder, f CommandFrame) error {
	var b byte
	if r.info.IsFactoryDefaults() {
		b = 1
	}
	f.SetParamData([]byte{b})
	return nil
}

func setFactoryDefaults(r *Responder, f CommandFrame, wasBroadcast bool) error {
	if f.ParamDataLength() != 0 {
		return rdmerr.ErrFormatError
	}
	r.info.Init()
	f.SetEmptyParamData()
	return nil
}

func getLanguage(r *Responder, f CommandFrame) error {
	lang := r.info.SupportedLanguage()
	f.SetParamData(lang[:])
	return nil
}

// setLanguage accepts exactly the device's single built-in language; any
// other 2-byte value is DATA_OUT_OF_RANGE, not FORMAT_ERROR, since the
// length is correct but the value isn't — an intentional choice of
// reason code carried over from the source.
func setLanguage(r *Responder, f CommandFrame, wasBroadcast bool) error {
	if f.ParamDataLength() != 2 {
		return rdmerr.ErrFormatError
	}
	var got [2]byte
	copy(got[:], f.ParamData())
	if got != r.info.SupportedLanguage() {
		return rdmerr.ErrDataOutOfRange
	}
	r.info.SetSupportedLanguage(got)
	f.SetEmptyParamData()
	return nil
}

func getSoftwareVersionLabel(r *Responder, f CommandFrame) error {
	writeString(f, r.info.SoftwareVersion())
	return nil
}

func getBootSoftwareVersionID(r *Responder, f CommandFrame) error {
	v := r.hw.FirmwareRevision()
	f.SetParamData([]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
	return nil
}

func getBootSoftwareVersionLabel(r *Responder, f CommandFrame) error {
	writeString(f, r.hw.FirmwareCopyright())
	return nil
}

func getPersonality(r *Responder, f CommandFrame) error {
	f.SetParamData([]byte{r.info.CurrentPersonality(), r.info.PersonalityCount()})
	return nil
}

func setPersonality(r *Responder, f CommandFrame, wasBroadcast bool) error {
	if f.ParamDataLength() != 1 {
		return rdmerr.ErrFormatError
	}
	idx := f.ParamData()[0]
	if idx == 0 || idx > r.info.PersonalityCount() {
		return rdmerr.ErrDataOutOfRange
	}
	r.info.SetCurrentPersonality(idx)
	r.pers.PersistPersonality(idx)
	f.SetEmptyParamData()
	return nil
}

func getPersonalityDescription(r *Responder, f CommandFrame) error {
	idx := f.ParamData()[0]
	p, ok := r.info.Personality(idx)
	if !ok {
		return rdmerr.ErrDataOutOfRange
	}

	desc := p.Description
	if len(desc) > 32 {
		desc = desc[:32]
	}

	out := f.ParamDataCap()
	out[0] = idx
	out[1] = byte(p.SlotCount >> 8)
	out[2] = byte(p.SlotCount)
	n := copy(out[3:], desc)

	total := 3 + n
	f.SetParamDataLength(byte(total))
	f.SetMessageLength(byte(RDMMessageMinimumSize + total))
	return nil
}

func getDMXStartAddress(r *Responder, f CommandFrame) error {
	addr := r.info.DMXStartAddress()
	f.SetParamData([]byte{byte(addr >> 8), byte(addr)})
	return nil
}

func setDMXStartAddress(r *Responder, f CommandFrame, wasBroadcast bool) error {
	if f.ParamDataLength() != 2 {
		return rdmerr.ErrFormatError
	}
	data := f.ParamData()
	addr := uint16(data[0])<<8 | uint16(data[1])
	if addr == 0 || addr > 512 {
		return rdmerr.ErrDataOutOfRange
	}
	r.info.SetDMXStartAddress(addr)
	r.pers.PersistStartAddress(addr)
	f.SetEmptyParamData()
	return nil
}

func getDeviceHours(r *Responder, f CommandFrame) error {
	hours := uint32(r.clock.UptimeSeconds() / 3600)
	f.SetParamData([]byte{byte(hours >> 24), byte(hours >> 16), byte(hours >> 8), byte(hours)})
	return nil
}

// setDeviceHours always NACKs WRITE_PROTECT: device hours is a read-only
// counter derived from uptime.
func setDeviceHours(r *Responder, f CommandFrame, wasBroadcast bool) error {
	f.SetEmptyParamData()
	return rdmerr.ErrWriteProtect
}

func getRealTimeClock(r *Responder, f CommandFrame) error {
	t := r.clock.WallClock()
	year := uint16(t.Year())
	out := f.ParamDataCap()
	out[0] = byte(year >> 8)
	out[1] = byte(year)
	out[2] = byte(t.Month())
	out[3] = byte(t.Day())
	out[4] = byte(t.Hour())
	out[5] = byte(t.Minute())
	out[6] = byte(t.Second())
	f.SetParamDataLength(7)
	f.SetMessageLength(byte(RDMMessageMinimumSize + 7))
	return nil
}

func getIdentifyDevice(r *Responder, f CommandFrame) error {
	var b byte
	if r.identify {
		b = 1
	}
	f.SetParamData([]byte{b})
	return nil
}

// setIdentifyDevice accepts exactly one byte, 0 or 1. This module always
// sets message_length explicitly on success, correcting the original
// source's omission.
func setIdentifyDevice(r *Responder, f CommandFrame, wasBroadcast bool) error {
	if f.ParamDataLength() != 1 {
		return rdmerr.ErrFormatError
	}
	v := f.ParamData()[0]
	if v != 0 && v != 1 {
		return rdmerr.ErrDataOutOfRange
	}
	r.identify = v == 1
	f.SetEmptyParamData()
	return nil
}

// setResetDevice ACKs (if not broadcast) before triggering the
// unrecoverable hardware reboot, matching the original source's ordering
// exactly: a reboot that "never returns" on real hardware would otherwise
// swallow the ACK if it were left to the generic post-handler emission
// in dispatchSet. errAlreadyReplied tells the dispatcher not to emit a
// second reply.
func setResetDevice(r *Responder, f CommandFrame, wasBroadcast bool) error {
	f.SetEmptyParamData()
	if !wasBroadcast {
		r.emitAck(f)
	}
	r.hw.Reboot()
	return errAlreadyReplied
}
