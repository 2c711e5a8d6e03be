package rdm

// Personality is a selectable DMX footprint: a slot count and a short
// human-readable description.
type Personality struct {
	SlotCount   uint16
	Description string
}

// DeviceInfoDefaults seeds a fresh DeviceInfo. Callers building a concrete
// responder for a real product should construct their own defaults with
// the right UID, model, and personality table and pass it to NewResponder.
type DeviceInfoDefaults struct {
	UID                UID
	DeviceModelID      uint16
	ProductCategory    uint16
	SoftwareVersionID  uint32
	ManufacturerLabel  string
	SoftwareVersion    string
	SupportedLanguage  [2]byte
	Personalities      []Personality
	DefaultPersonality uint8 // 1-indexed
	DefaultStartAddr   uint16
	DefaultLabel       string
}

// DeviceInfo is the mutable device identity and DMX configuration record.
// It is mutated only from dispatcher context; reads from other contexts
// (e.g. a monitor overlay) are advisory only.
type DeviceInfo struct {
	defaults DeviceInfoDefaults

	label              string
	supportedLanguage  [2]byte
	dmxStartAddress    uint16
	currentPersonality uint8
	factoryDefaults    bool
}

// NewDeviceInfo builds a DeviceInfo from defaults and runs Init().
func NewDeviceInfo(defaults DeviceInfoDefaults) *DeviceInfo {
	d := &DeviceInfo{defaults: defaults}
	d.Init()
	return d
}

// Init restores every mutable field to its factory default and sets the
// factory-defaults flag.
func (d *DeviceInfo) Init() {
	d.label = d.defaults.DefaultLabel
	d.supportedLanguage = d.defaults.SupportedLanguage
	d.dmxStartAddress = d.defaults.DefaultStartAddr
	d.currentPersonality = d.defaults.DefaultPersonality
	d.factoryDefaults = true
}

func (d *DeviceInfo) UID() UID { return d.defaults.UID }

func (d *DeviceInfo) Label() string { return d.label }

// SetLabel sets the device label. Callers must enforce the 32-byte limit
// (the SET handler rejects longer payloads with FORMAT_ERROR rather than
// truncating); this setter accepts whatever it is given.
func (d *DeviceInfo) SetLabel(label string) {
	if d.label == label {
		return
	}
	d.label = label
	d.factoryDefaults = false
}

func (d *DeviceInfo) ManufacturerLabel() string { return d.defaults.ManufacturerLabel }
func (d *DeviceInfo) SoftwareVersion() string   { return d.defaults.SoftwareVersion }

func (d *DeviceInfo) SupportedLanguage() [2]byte { return d.supportedLanguage }

// SetSupportedLanguage accepts only the device's single built-in language;
// callers validate this before calling.
func (d *DeviceInfo) SetSupportedLanguage(lang [2]byte) {
	if d.supportedLanguage == lang {
		return
	}
	d.supportedLanguage = lang
	d.factoryDefaults = false
}

func (d *DeviceInfo) DMXStartAddress() uint16 { return d.dmxStartAddress }

// SetDMXStartAddress sets the start address. Callers validate the [1,512]
// range before calling.
func (d *DeviceInfo) SetDMXStartAddress(addr uint16) {
	if d.dmxStartAddress == addr {
		return
	}
	d.dmxStartAddress = addr
	d.factoryDefaults = false
}

func (d *DeviceInfo) PersonalityCount() uint8 { return uint8(len(d.defaults.Personalities)) }

func (d *DeviceInfo) CurrentPersonality() uint8 { return d.currentPersonality }

// SetCurrentPersonality sets the active personality. Callers validate that
// idx is in [1, PersonalityCount()] before calling.
func (d *DeviceInfo) SetCurrentPersonality(idx uint8) {
	if d.currentPersonality == idx {
		return
	}
	d.currentPersonality = idx
	d.factoryDefaults = false
}

// Personality returns the 1-indexed personality entry, and ok=false if idx
// is out of [1, PersonalityCount()].
func (d *DeviceInfo) Personality(idx uint8) (Personality, bool) {
	if idx == 0 || int(idx) > len(d.defaults.Personalities) {
		return Personality{}, false
	}
	return d.defaults.Personalities[idx-1], true
}

// CurrentFootprint returns the slot count of the currently selected
// personality, used for the DMX footprint field of DEVICE_INFO.
func (d *DeviceInfo) CurrentFootprint() uint16 {
	p, ok := d.Personality(d.currentPersonality)
	if !ok {
		return 0
	}
	return p.SlotCount
}

func (d *DeviceInfo) IsFactoryDefaults() bool { return d.factoryDefaults }

func (d *DeviceInfo) DeviceModelID() uint16     { return d.defaults.DeviceModelID }
func (d *DeviceInfo) ProductCategory() uint16   { return d.defaults.ProductCategory }
func (d *DeviceInfo) SoftwareVersionID() uint32 { return d.defaults.SoftwareVersionID }
