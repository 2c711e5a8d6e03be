package rdm

import "fmt"

// UIDSize is the length in bytes of an on-wire UID field.
const UIDSize = 6

// UID is a 48-bit Unique Identifier: a 16-bit ESTA manufacturer ID in the
// high bits, and a 32-bit device ID in the low bits.
type UID uint64

// UIDAll is the reserved broadcast UID (all 48 bits set).
const UIDAll UID = 0xFFFFFFFFFFFF

// ManufacturerID returns the high 16 bits of u.
func (u UID) ManufacturerID() uint16 { return uint16(u >> 32) }

// DeviceID returns the low 32 bits of u.
func (u UID) DeviceID() uint32 { return uint32(u) }

// IsVendorcast reports whether u has the given manufacturer ID and a
// device-ID portion of all 0xFF — the "vendorcast" address form that
// addresses every responder from one manufacturer.
func (u UID) IsVendorcast(manufacturerID uint16) bool {
	return u.ManufacturerID() == manufacturerID && u.DeviceID() == 0xFFFFFFFF
}

// String renders u as the conventional MMMM:DDDDDDDD hex form.
func (u UID) String() string {
	return fmt.Sprintf("%04X:%08X", u.ManufacturerID(), u.DeviceID())
}

// uidFromBytes reads a big-endian 6-byte UID field, explicit shift-and-or
// so no assumption is made about host byte order or struct layout.
func uidFromBytes(b []byte) UID {
	_ = b[5]
	return UID(b[0])<<40 | UID(b[1])<<32 | UID(b[2])<<24 | UID(b[3])<<16 | UID(b[4])<<8 | UID(b[5])
}

// putUID writes u as a big-endian 6-byte field into b.
func putUID(b []byte, u UID) {
	_ = b[5]
	b[0] = byte(u >> 40)
	b[1] = byte(u >> 32)
	b[2] = byte(u >> 24)
	b[3] = byte(u >> 16)
	b[4] = byte(u >> 8)
	b[5] = byte(u)
}
