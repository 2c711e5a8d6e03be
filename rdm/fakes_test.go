package rdm_test

import (
	"time"

	"github.com/dmxlabs/rdm-responder/rdm"
)

// fakeBus is a minimal in-memory rdm.BusDriver for exercising the
// dispatcher without any real transport.
type fakeBus struct {
	buf       [rdm.MaxFrameSize]byte
	available bool
	sent      []byte
	sentKind  string // "response" or "discovery"
	sendErr   error
}

func newFakeBus(frame []byte) *fakeBus {
	b := &fakeBus{available: true}
	copy(b.buf[:], frame)
	return b
}

func (b *fakeBus) FrameAvailable() bool { return b.available }
func (b *fakeBus) ClearFrameAvailable() { b.available = false }
func (b *fakeBus) FrameBuffer() []byte  { return b.buf[:] }

func (b *fakeBus) SendResponse(length int) error {
	b.sent = append([]byte(nil), b.buf[:length]...)
	b.sentKind = "response"
	return b.sendErr
}

func (b *fakeBus) SendDiscoveryResponse(length int) error {
	b.sent = append([]byte(nil), b.buf[:length]...)
	b.sentKind = "discovery"
	return b.sendErr
}

// fakeClock is a fixed Clock collaborator for reproducible test output.
type fakeClock struct {
	uptime uint64
	wall   time.Time
}

func (c fakeClock) UptimeSeconds() uint64 { return c.uptime }
func (c fakeClock) WallClock() time.Time  { return c.wall }

// fakeHardware is a Hardware collaborator that records whether Reboot was
// called instead of actually resetting anything.
type fakeHardware struct {
	rebooted bool
}

func (h *fakeHardware) Reboot()                   { h.rebooted = true }
func (h *fakeHardware) FirmwareRevision() uint32  { return 0x01020300 }
func (h *fakeHardware) BoardModel() string        { return "test-board" }
func (h *fakeHardware) FirmwareCopyright() string { return "test-copyright" }

// fakePersistence records the most recent persisted value of each kind.
type fakePersistence struct {
	label       string
	startAddr   uint16
	personality uint8
}

func (p *fakePersistence) PersistLabel(label string)    { p.label = label }
func (p *fakePersistence) PersistStartAddress(a uint16) { p.startAddr = a }
func (p *fakePersistence) PersistPersonality(idx uint8) { p.personality = idx }

const testManufacturerID = 0x7A70

var testUID = rdm.UID(uint64(testManufacturerID)<<32 | 0x01020304)

func testDefaults() rdm.DeviceInfoDefaults {
	return rdm.DeviceInfoDefaults{
		UID:               testUID,
		DeviceModelID:     0x0001,
		ProductCategory:   0x0100,
		SoftwareVersionID: 0x01000000,
		ManufacturerLabel: "Test Manufacturer",
		SoftwareVersion:   "1.2.3",
		SupportedLanguage: [2]byte{'e', 'n'},
		Personalities: []rdm.Personality{
			{SlotCount: 3, Description: "RGB"},
			{SlotCount: 4, Description: "RGBW"},
		},
		DefaultPersonality: 1,
		DefaultStartAddr:   1,
		DefaultLabel:       "Lamp",
	}
}

func newTestResponder(bus rdm.BusDriver, opts ...rdm.Option) *rdm.Responder {
	clock := fakeClock{uptime: 7200, wall: time.Date(2026, time.July, 29, 12, 0, 0, 0, time.UTC)}
	hw := &fakeHardware{}
	return rdm.NewResponder(bus, clock, hw, testDefaults(), opts...)
}

// frame assembles a minimal command frame as raw bytes: header fields
// plus param_data plus a correct checksum, mirroring the wire layout
// byte for byte instead of going through rdm's own frame builder, so the
// test exercises the package from outside in.
func frame(dest rdm.UID, src rdm.UID, class byte, pid uint16, paramData []byte) []byte {
	n := len(paramData)
	b := make([]byte, rdm.RDMMessageMinimumSize+n+2)

	b[0] = rdm.StartCode
	b[1] = rdm.SubStartCode
	b[2] = byte(rdm.RDMMessageMinimumSize + n)

	putUID48(b[3:9], dest)
	putUID48(b[9:15], src)

	b[15] = 0x01 // transaction number
	b[16] = 0x01 // port id
	b[17] = 0x00 // message count
	b[18] = 0x00
	b[19] = 0x00 // sub device (root)
	b[20] = class
	b[21] = byte(pid >> 8)
	b[22] = byte(pid)
	b[23] = byte(n)
	copy(b[24:24+n], paramData)

	var sum uint16
	for _, x := range b[:24+n] {
		sum += uint16(x)
	}
	b[24+n] = byte(sum >> 8)
	b[24+n+1] = byte(sum)

	return b
}

func putUID48(b []byte, u rdm.UID) {
	v := uint64(u)
	b[0] = byte(v >> 40)
	b[1] = byte(v >> 32)
	b[2] = byte(v >> 24)
	b[3] = byte(v >> 16)
	b[4] = byte(v >> 8)
	b[5] = byte(v)
}

const controllerUID = rdm.UID(0xAABB00000001)
