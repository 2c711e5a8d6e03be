package rdm

// GetHandler reads the inbound frame (already validated for
// param_data_length by the dispatcher) and returns the error to NACK
// with, or nil to ACK with whatever it wrote into the frame's param_data.
type GetHandler func(r *Responder, f CommandFrame) error

// SetHandler performs the requested mutation (or validates and rejects
// it) and returns the error to NACK with, or nil to ACK. wasBroadcast is
// true when the frame was addressed via UID_ALL or vendorcast; the
// dispatcher suppresses any reply — ACK or NACK — in that case, so
// handlers need not special-case broadcast themselves except where a
// PID's own semantics require it (RESET_DEVICE: see setResetDevice).
type SetHandler func(r *Responder, f CommandFrame, wasBroadcast bool) error

// pidEntry is one row of the static parameter table. Lookup is a linear
// scan keyed on pid — the table's own normative layout.
type pidEntry struct {
	pid                  uint16
	get                  GetHandler
	set                  SetHandler
	getArgSize           int
	includeInSupportedPs bool
}

// pidTable is the immutable, ordered table of parameters this responder
// answers. Order matters: it is the order PIDs appear in a
// SUPPORTED_PARAMETERS reply.
var pidTable = [...]pidEntry{
	{PIDSupportedParameters, getSupportedParameters, nil, 0, false},
	{PIDDeviceInfo, getDeviceInfo, nil, 0, false},
	{PIDDeviceModelDescription, getDeviceModelDescription, nil, 0, true},
	{PIDManufacturerLabel, getManufacturerLabel, nil, 0, true},
	{PIDDeviceLabel, getDeviceLabel, setDeviceLabel, 0, true},
	{PIDFactoryDefaults, getFactoryDefaults, setFactoryDefaults, 0, true},
	{PIDLanguageCapabilities, getLanguage, nil, 0, true},
	{PIDLanguage, getLanguage, setLanguage, 0, true},
	{PIDSoftwareVersionLabel, getSoftwareVersionLabel, nil, 0, false},
	{PIDBootSoftwareVersionID, getBootSoftwareVersionID, nil, 0, true},
	{PIDBootSoftwareVersionLbl, getBootSoftwareVersionLabel, nil, 0, true},
	{PIDDMXPersonality, getPersonality, setPersonality, 0, true},
	{PIDDMXPersonalityDesc, getPersonalityDescription, nil, 1, true},
	{PIDDMXStartAddress, getDMXStartAddress, setDMXStartAddress, 0, false},
	{PIDDeviceHours, getDeviceHours, setDeviceHours, 0, true},
	{PIDRealTimeClock, getRealTimeClock, nil, 0, true},
	{PIDIdentifyDevice, getIdentifyDevice, setIdentifyDevice, 0, false},
	{PIDResetDevice, nil, setResetDevice, 0, true},
}

// lookupPID returns the table entry for pid, or ok=false on a miss.
func lookupPID(pid uint16) (pidEntry, bool) {
	for _, e := range pidTable {
		if e.pid == pid {
			return e, true
		}
	}
	return pidEntry{}, false
}
