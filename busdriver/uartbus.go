// Package busdriver implements rdm.BusDriver over a half-duplex RS-485
// transceiver wired to a UART, using a PIO state machine to generate the
// DMX512-A break and mark-after-break that a plain UART cannot produce on
// its own (a UART's shortest idle condition is one stop bit, far too short
// for DMX's >=88us break).
package busdriver

import (
	"errors"
	"machine"
	"time"

	pio "github.com/tinygo-org/pio/rp2-pio"
)

// Timing constants from the DMX512-A / RDM physical layer. Mark-after-break
// is held a little over the 8us minimum to give slow receivers margin.
const (
	breakDuration       = 176 * time.Microsecond
	markAfterBreak      = 12 * time.Microsecond
	responderTurnaround = 176 * time.Microsecond
	discoveryTurnaround = 176 * time.Microsecond
)

var (
	// ErrFrameTooLarge is returned when a caller asks SendResponse or
	// SendDiscoveryResponse to transmit more than the frame buffer holds.
	ErrFrameTooLarge = errors.New("busdriver: frame longer than buffer")
)

// UARTBus drives the responder's half-duplex RS-485 link: a UART for
// byte-level TX/RX and a PIO state machine dedicated to break/mark-after-
// break generation on the same TX pin. The direction pin must be wired so
// that High enables the RS-485 driver (transmit) and Low enables the
// receiver.
type UARTBus struct {
	uart *machine.UART
	dir  machine.Pin
	sm   pio.StateMachine

	rxBuf     [512]byte // inbound DMX/RDM slot buffer
	frame     [520]byte // command-frame working buffer, aliased by the rdm package
	available bool
	rxLen     int
}

// Config configures a UARTBus. SM is the PIO state machine claimed and
// loaded with a break-generator program by the caller before Configure
// runs; UARTBus only starts and restarts it, it does not assemble it.
type Config struct {
	UART *machine.UART
	DirectionPin machine.Pin
	SM   pio.StateMachine
}

// New creates an unconfigured UARTBus. The UART and direction pin must
// already be configured by the caller (baud rate 250000, 8N2, per
// DMX512-A); New records references and drives the direction pin low.
func New(cfg Config) *UARTBus {
	cfg.DirectionPin.Low() // start in receive mode
	return &UARTBus{
		uart: cfg.UART,
		dir:  cfg.DirectionPin,
		sm:   cfg.SM,
	}
}

// Configure enables the break-generator state machine and arms the UART
// receiver for inbound DMX/RDM traffic.
func (u *UARTBus) Configure() {
	u.sm.SetEnabled(true)
	u.dir.Low()
}

// FrameAvailable reports whether a complete, checksummed RDM command frame
// has been assembled into FrameBuffer since the last ClearFrameAvailable.
func (u *UARTBus) FrameAvailable() bool {
	return u.available
}

// ClearFrameAvailable acknowledges the current frame has been taken.
func (u *UARTBus) ClearFrameAvailable() {
	u.available = false
	u.rxLen = 0
}

// FrameBuffer returns the shared working buffer the rdm package builds
// replies into in place.
func (u *UARTBus) FrameBuffer() []byte {
	return u.frame[:]
}

// Poll drains whatever bytes the UART has buffered into the receive
// assembler. Call this every tick from the same poll loop that calls
// Responder.Poll, before it — assembly must complete before dispatch looks
// for FrameAvailable.
func (u *UARTBus) Poll() {
	for u.uart.Buffered() > 0 {
		b, err := u.uart.ReadByte()
		if err != nil {
			break
		}
		u.feed(b)
	}
}

// feed appends one received byte to the slot buffer, declaring a frame
// available once enough bytes for the fixed RDM header have arrived and the
// running checksum validates the declared message_length. A real UART
// break/mark-after-break delimits frames at the hardware level; this
// driver additionally restarts rxLen from zero if the start code byte
// doesn't match, discarding DMX (non-RDM) traffic on the same line.
func (u *UARTBus) feed(b byte) {
	if u.rxLen == 0 && b != 0xCC {
		return
	}
	if u.rxLen >= len(u.rxBuf) {
		u.rxLen = 0
		return
	}
	u.rxBuf[u.rxLen] = b
	u.rxLen++

	const minHeader = 24
	if u.rxLen < minHeader {
		return
	}
	msgLen := int(u.rxBuf[2])
	total := msgLen + 2
	if u.rxLen < total {
		return
	}
	u.rxLen = 0
	var sum uint16
	for _, x := range u.rxBuf[:msgLen] {
		sum += uint16(x)
	}
	if sum != uint16(u.rxBuf[msgLen])<<8|uint16(u.rxBuf[msgLen+1]) {
		return // bad checksum: drop the frame
	}
	copy(u.frame[:total], u.rxBuf[:total])
	u.available = true
}

// SendResponse turns the RS-485 driver on, transmits bytes [0:length) of
// FrameBuffer with a UART break preceding them, waits for the line to
// drain, then returns the driver to receive mode.
func (u *UARTBus) SendResponse(length int) error {
	return u.send(length, responderTurnaround)
}

// SendDiscoveryResponse is identical to SendResponse; the discovery
// response carries no start code but uses the same physical-layer framing.
func (u *UARTBus) SendDiscoveryResponse(length int) error {
	return u.send(length, discoveryTurnaround)
}

func (u *UARTBus) send(length int, turnaround time.Duration) error {
	if length > len(u.frame) {
		return ErrFrameTooLarge
	}
	time.Sleep(turnaround)

	u.dir.High()
	defer u.dir.Low()

	u.sm.SetEnabled(false)
	time.Sleep(breakDuration)
	time.Sleep(markAfterBreak)
	u.sm.SetEnabled(true)

	_, err := u.uart.Write(u.frame[:length])
	return err
}
