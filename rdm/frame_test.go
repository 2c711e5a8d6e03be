package rdm_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/dmxlabs/rdm-responder/rdm"
)

func TestSetParamDataKeepsMessageLengthInvariant(t *testing.T) {
	c := qt.New(t)

	b := make([]byte, rdm.MaxFrameSize)
	f := rdm.AsCommandFrame(b)
	f.SetParamData([]byte("hello"))

	c.Assert(f.ParamDataLength(), qt.Equals, byte(5))
	c.Assert(f.MessageLength(), qt.Equals, byte(rdm.RDMMessageMinimumSize+5))
	c.Assert(string(f.ParamData()), qt.Equals, "hello")
}

func TestSetEmptyParamDataResetsMessageLength(t *testing.T) {
	c := qt.New(t)

	b := make([]byte, rdm.MaxFrameSize)
	f := rdm.AsCommandFrame(b)
	f.SetParamData([]byte("hello"))
	f.SetEmptyParamData()

	c.Assert(f.ParamDataLength(), qt.Equals, byte(0))
	c.Assert(f.MessageLength(), qt.Equals, byte(rdm.RDMMessageMinimumSize))
}

func TestComputeChecksumMatchesSimpleSum(t *testing.T) {
	c := qt.New(t)

	b := make([]byte, rdm.RDMMessageMinimumSize+2)
	for i := range b[:rdm.RDMMessageMinimumSize] {
		b[i] = byte(i + 1)
	}
	f := rdm.AsCommandFrame(b)

	var want uint16
	for _, x := range b[:rdm.RDMMessageMinimumSize] {
		want += uint16(x)
	}
	c.Assert(f.ComputeChecksum(), qt.Equals, want)
}

func TestUIDManufacturerAndDeviceID(t *testing.T) {
	c := qt.New(t)

	u := rdm.UID(uint64(0x1234)<<32 | 0x56789ABC)
	c.Assert(u.ManufacturerID(), qt.Equals, uint16(0x1234))
	c.Assert(u.DeviceID(), qt.Equals, uint32(0x56789ABC))
	c.Assert(u.String(), qt.Equals, "1234:56789ABC")
}

func TestUIDIsVendorcast(t *testing.T) {
	c := qt.New(t)

	v := rdm.UID(uint64(0xABCD)<<32 | 0xFFFFFFFF)
	c.Assert(v.IsVendorcast(0xABCD), qt.IsTrue)
	c.Assert(v.IsVendorcast(0x1234), qt.IsFalse)

	notVendorcast := rdm.UID(uint64(0xABCD)<<32 | 0x00000001)
	c.Assert(notVendorcast.IsVendorcast(0xABCD), qt.IsFalse)
}
