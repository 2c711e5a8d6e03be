package rdm_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/dmxlabs/rdm-responder/rdm"
)

// discUniqueBranch builds a DISC_UNIQUE_BRANCH command frame with the
// given lower/upper bound UIDs as its 12-byte param_data.
func discUniqueBranch(lower, upper rdm.UID) []byte {
	data := make([]byte, 12)
	putUID48(data[0:6], lower)
	putUID48(data[6:12], upper)
	return frame(rdm.UIDAll, controllerUID, rdm.ClassDiscoveryCommand, rdm.PIDDiscUniqueBranch, data)
}

func TestDiscUniqueBranchInRange(t *testing.T) {
	c := qt.New(t)

	uid := rdm.UID(uint64(0x70F0)<<32 | 0x01020304)
	f := discUniqueBranch(rdm.UID(0), rdm.UIDAll)
	bus := newFakeBus(f)
	r := rdm.NewResponder(bus, fakeClock{}, &fakeHardware{}, rdm.DeviceInfoDefaults{
		UID:                uid,
		DefaultPersonality: 1,
		Personalities:      []rdm.Personality{{SlotCount: 1, Description: "x"}},
	})

	r.Poll()

	c.Assert(bus.sentKind, qt.Equals, "discovery")
	c.Assert(len(bus.sent), qt.Equals, rdm.DiscoveryResponseSize)

	for i := 0; i < 7; i++ {
		c.Assert(bus.sent[i], qt.Equals, byte(0xFE))
	}
	c.Assert(bus.sent[7], qt.Equals, byte(0xAA))
	c.Assert(bus.sent[8:20], qt.DeepEquals, expectMaskedUID(uid))
	c.Assert(bus.sent[20:24], qt.DeepEquals, expectMaskedChecksum(uid))
}

// expectMaskedUID and expectMaskedChecksum independently reconstruct the
// discovery response's masked encoding from the ANSI E1.20 formula, rather
// than calling rdm.DiscoveryResponseFrame.Build itself, so this test
// exercises the real masking logic instead of checking it against itself.
func expectMaskedUID(uid rdm.UID) []byte {
	v := uint64(uid)
	raw := [6]byte{
		byte(v >> 40), byte(v >> 32), byte(v >> 24),
		byte(v >> 16), byte(v >> 8), byte(v),
	}
	out := make([]byte, 12)
	for i, b := range raw {
		out[2*i] = b | 0xAA
		out[2*i+1] = b | 0x55
	}
	return out
}

func expectMaskedChecksum(uid rdm.UID) []byte {
	v := uint64(uid)
	raw := [6]byte{
		byte(v >> 40), byte(v >> 32), byte(v >> 24),
		byte(v >> 16), byte(v >> 8), byte(v),
	}
	sum := uint16(6 * 0xFF)
	for _, b := range raw {
		sum += uint16(b)
	}
	hi, lo := byte(sum>>8), byte(sum)
	return []byte{hi | 0xAA, hi | 0x55, lo | 0xAA, lo | 0x55}
}

func TestDiscUniqueBranchOutOfRangeIsSilent(t *testing.T) {
	c := qt.New(t)

	uid := testUID
	lower := rdm.UID(uint64(testManufacturerID)<<32 | 0xF0000000)
	upper := rdm.UIDAll
	f := discUniqueBranch(lower, upper)
	bus := newFakeBus(f)
	r := rdm.NewResponder(bus, fakeClock{}, &fakeHardware{}, rdm.DeviceInfoDefaults{
		UID:                uid,
		DefaultPersonality: 1,
		Personalities:      []rdm.Personality{{SlotCount: 1, Description: "x"}},
	})

	r.Poll()

	c.Assert(bus.sent, qt.IsNil)
}

func TestDiscUniqueBranchWhileMutedIsSilent(t *testing.T) {
	c := qt.New(t)

	muteFrame := frame(testUID, controllerUID, rdm.ClassDiscoveryCommand, rdm.PIDDiscMute, nil)
	bus := newFakeBus(muteFrame)
	r := newTestResponder(bus)
	r.Poll()
	c.Assert(r.Snapshot().Muted, qt.IsTrue)

	bus.sent = nil
	copy(bus.buf[:], discUniqueBranch(rdm.UID(0), rdm.UIDAll))
	bus.available = true

	r.Poll()

	c.Assert(bus.sent, qt.IsNil)
}
