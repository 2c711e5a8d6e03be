package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/google/shlex"

	"github.com/dmxlabs/rdm-responder/rdm"
)

// fakeBus is an in-memory rdm.BusDriver: FrameBuffer is a plain byte slice,
// SendResponse/SendDiscoveryResponse just record what was sent for the REPL
// to print back, instead of touching a UART.
type fakeBus struct {
	buf  [rdm.MaxFrameSize]byte
	have bool
	last []byte
}

func newFakeBus() *fakeBus { return &fakeBus{} }

func (b *fakeBus) FrameAvailable() bool { return b.have }
func (b *fakeBus) ClearFrameAvailable() { b.have = false }
func (b *fakeBus) FrameBuffer() []byte  { return b.buf[:] }

func (b *fakeBus) SendResponse(length int) error {
	b.last = append([]byte(nil), b.buf[:length]...)
	return nil
}

func (b *fakeBus) SendDiscoveryResponse(length int) error {
	b.last = append([]byte(nil), b.buf[:length]...)
	return nil
}

// inject loads raw hex bytes into the frame buffer and marks a frame
// available, as if a UART had just assembled one.
func (b *fakeBus) inject(frame []byte) {
	copy(b.buf[:], frame)
	b.have = true
}

// runREPL reads whitespace-tokenized commands from in, using shlex so a
// quoted device-label argument with embedded spaces round-trips correctly.
func runREPL(in *bufio.Scanner, bus *fakeBus, r *rdm.Responder) {
	out := os.Stderr
	for in.Scan() {
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		args, err := shlex.Split(line)
		if err != nil {
			fmt.Fprintln(out, "parse error:", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		runCommand(out, bus, r, args)
	}
}

func runCommand(out *os.File, bus *fakeBus, r *rdm.Responder, args []string) {
	switch args[0] {
	case "help":
		fmt.Fprintln(out, "commands: help | snapshot | raw <hex-bytes> | get-label | set-label <text>")

	case "snapshot":
		s := r.Snapshot()
		fmt.Fprintf(out, "uid=%s label=%q muted=%v identify=%v addr=%d personality=%d/%d\n",
			s.UID, s.Label, s.Muted, s.Identifying, s.DMXStartAddress, s.CurrentPersonality, s.PersonalityCount)

	case "raw":
		if len(args) != 2 {
			fmt.Fprintln(out, "usage: raw <hex-bytes>")
			return
		}
		frame, err := hex.DecodeString(args[1])
		if err != nil {
			fmt.Fprintln(out, "bad hex:", err)
			return
		}
		bus.inject(frame)
		r.Poll()
		printReply(out, bus)

	case "get-label":
		frame := buildGetDeviceLabel(r.Info().UID())
		bus.inject(frame)
		r.Poll()
		printReply(out, bus)

	case "set-label":
		if len(args) != 2 {
			fmt.Fprintln(out, "usage: set-label <text>")
			return
		}
		frame := buildSetDeviceLabel(r.Info().UID(), args[1])
		bus.inject(frame)
		r.Poll()
		printReply(out, bus)

	default:
		fmt.Fprintln(out, "unknown command:", args[0])
	}
}

func printReply(out *os.File, bus *fakeBus) {
	if bus.last == nil {
		fmt.Fprintln(out, "(no reply)")
		return
	}
	fmt.Fprintln(out, "reply:", hex.EncodeToString(bus.last))
	bus.last = nil
}

// buildGetDeviceLabel and buildSetDeviceLabel hand-assemble a minimal
// command frame for the two commands the REPL offers as shortcuts over
// raw hex, using a fixed simulator controller UID as the source.
const simulatorControllerUID = uint64(0xAABB00000001)

func buildGetDeviceLabel(dest rdm.UID) []byte {
	f := newCommandFrame(dest, rdm.ClassGetCommand, rdm.PIDDeviceLabel, nil)
	return f
}

func buildSetDeviceLabel(dest rdm.UID, label string) []byte {
	f := newCommandFrame(dest, rdm.ClassSetCommand, rdm.PIDDeviceLabel, []byte(label))
	return f
}

func newCommandFrame(dest rdm.UID, class byte, pid uint16, paramData []byte) []byte {
	// Full-size backing buffer: SetParamData writes through ParamDataCap,
	// which spans MaxParamDataLength bytes.
	b := make([]byte, rdm.MaxFrameSize)
	f := rdm.AsCommandFrame(b)

	b[0] = rdm.StartCode
	b[1] = rdm.SubStartCode
	f.SetDestinationUID(dest)
	f.SetSourceUID(rdm.UID(simulatorControllerUID))
	f.SetCommandClass(class)
	putParamID(b, pid)
	if len(paramData) > 0 {
		f.SetParamData(paramData)
	} else {
		f.SetEmptyParamData()
	}
	f.SetChecksum(f.ComputeChecksum())
	return b[:f.ReplyLength()]
}

func putParamID(b []byte, pid uint16) {
	// offset 21:22, mirrors rdm.offParamID — duplicated here since the
	// offset constants are unexported within the rdm package.
	b[21] = byte(pid >> 8)
	b[22] = byte(pid)
}
