package rdm

import "time"

// BusDriver is the external bus driver collaborator. The core never
// touches a UART or GPIO directly — only through this interface — so the
// dispatcher is portable to a host-side test harness.
type BusDriver interface {
	// FrameAvailable reports whether a new inbound frame is waiting in
	// FrameBuffer.
	FrameAvailable() bool
	// ClearFrameAvailable acknowledges the current frame has been taken
	// for processing.
	ClearFrameAvailable()
	// FrameBuffer returns the shared byte region (>= MaxFrameSize) that
	// holds the inbound frame, and into which the reply is built in
	// place.
	FrameBuffer() []byte
	// SendResponse transmits bytes [0:length) of FrameBuffer as an RDM
	// response, honoring RDM turnaround timing.
	SendResponse(length int) error
	// SendDiscoveryResponse transmits bytes [0:length) of FrameBuffer as
	// the non-standard discovery response (no start code).
	SendDiscoveryResponse(length int) error
}

// Clock is the external wall-clock/uptime collaborator.
type Clock interface {
	UptimeSeconds() uint64
	WallClock() time.Time
}

// Persistence is the external persistence collaborator, optional in the
// core: a mutating setter calls the matching method after it updates
// Device Info, and a no-op Persistence is a valid default.
type Persistence interface {
	PersistLabel(label string)
	PersistStartAddress(addr uint16)
	PersistPersonality(idx uint8)
}

// NoopPersistence implements Persistence by doing nothing.
type NoopPersistence struct{}

func (NoopPersistence) PersistLabel(string)        {}
func (NoopPersistence) PersistStartAddress(uint16) {}
func (NoopPersistence) PersistPersonality(uint8)   {}

// Hardware is the external hardware-control collaborator.
type Hardware interface {
	// Reboot triggers a hardware reset. On real hardware it never
	// returns; a test double may return normally after recording the
	// call.
	Reboot()
	FirmwareRevision() uint32
	BoardModel() string
	FirmwareCopyright() string
}

// FaultReporter receives unrecoverable bus-driver errors for upward
// reporting; a nil-safe no-op is the default.
type FaultReporter interface {
	ReportFault(err error)
}

type noopFaultReporter struct{}

func (noopFaultReporter) ReportFault(error) {}
