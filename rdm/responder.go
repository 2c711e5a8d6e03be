// Package rdm implements the core of an ANSI E1.20 (RDM) responder: frame
// addressing, the discovery mute state machine, GET/SET parameter
// dispatch, and in-place reply shaping.
package rdm

import (
	"github.com/dmxlabs/rdm-responder/internal/rlog"
)

// Responder is the single mutable instance that owns Device Info, the
// discovery mute flag, and the identify flag, and whose Poll method is
// the only mutator of any of them — every piece of state that would
// otherwise be a global in a single-instance responder lives here.
type Responder struct {
	bus   BusDriver
	clock Clock
	hw    Hardware
	pers  Persistence
	fault FaultReporter
	log   rlog.Logger

	info *DeviceInfo

	muted    bool
	identify bool

	running bool // re-entrancy guard, checked only by Poll/Handle
}

// Option configures optional collaborators on NewResponder.
type Option func(*Responder)

// WithPersistence wires a Persistence collaborator; default is a no-op.
func WithPersistence(p Persistence) Option { return func(r *Responder) { r.pers = p } }

// WithFaultReporter wires a FaultReporter collaborator; default is a
// no-op.
func WithFaultReporter(f FaultReporter) Option { return func(r *Responder) { r.fault = f } }

// WithLogger wires a debug logger; default discards everything.
func WithLogger(l rlog.Logger) Option { return func(r *Responder) { r.log = l } }

// NewResponder builds a Responder over the given bus driver, clock,
// hardware-control collaborator, and device info defaults.
func NewResponder(bus BusDriver, clock Clock, hw Hardware, info DeviceInfoDefaults, opts ...Option) *Responder {
	r := &Responder{
		bus:   bus,
		clock: clock,
		hw:    hw,
		pers:  NoopPersistence{},
		fault: noopFaultReporter{},
		log:   rlog.Discard,
		info:  NewDeviceInfo(info),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Info returns the underlying Device Info store, for read access by
// handlers and (advisory, non-mutating) external readers such as a
// monitor overlay.
func (r *Responder) Info() *DeviceInfo { return r.info }

// IsMuted reports the current discovery mute state.
func (r *Responder) IsMuted() bool { return r.muted }

// IsIdentifying reports the current identify state.
func (r *Responder) IsIdentifying() bool { return r.identify }

// Snapshot is a value copy of the externally-visible responder state, for
// advisory reads from outside dispatcher context — a reader taking a
// Snapshot concurrently with a dispatch in progress may observe torn
// multi-byte fields, and must treat that as acceptable.
type Snapshot struct {
	UID                UID
	Label              string
	Muted              bool
	Identifying        bool
	DMXStartAddress    uint16
	CurrentPersonality uint8
	PersonalityCount   uint8
}

// Snapshot returns a value copy of the responder's externally interesting
// state.
func (r *Responder) Snapshot() Snapshot {
	return Snapshot{
		UID:                r.info.UID(),
		Label:              r.info.Label(),
		Muted:              r.muted,
		Identifying:        r.identify,
		DMXStartAddress:    r.info.DMXStartAddress(),
		CurrentPersonality: r.info.CurrentPersonality(),
		PersonalityCount:   r.info.PersonalityCount(),
	}
}

// Poll is the single entry point a bare-metal poll loop calls every
// tick. It tests the bus driver's frame-available flag and, if set,
// clears it and dispatches the frame to completion before returning.
func (r *Responder) Poll() {
	if !r.bus.FrameAvailable() {
		return
	}
	r.bus.ClearFrameAvailable()
	r.Handle(AsCommandFrame(r.bus.FrameBuffer()))
}

// Handle dispatches one already-available frame. It is not reentrant: a
// new frame signaled while Handle is running must be deferred by the bus
// driver until Handle returns.
func (r *Responder) Handle(f CommandFrame) {
	if r.running {
		// Should be unreachable given the poll-loop contract; guard
		// against accidental reentrant calls in tests rather than
		// silently corrupting the shared frame buffer.
		panic("rdm: Handle called reentrantly")
	}
	r.running = true
	defer func() { r.running = false }()

	r.dispatch(f)
}
