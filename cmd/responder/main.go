// Command responder runs an RDM responder core against an in-memory bus,
// driven interactively from stdin, for exercising the dispatch and
// handler logic on a host without any real RS-485 hardware attached.
package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/dmxlabs/rdm-responder/internal/rlog"
	"github.com/dmxlabs/rdm-responder/rdm"
)

func main() {
	bus := newFakeBus()
	clock := fixedClock{start: time.Now()}
	hw := simHardware{}

	defaults := rdm.DeviceInfoDefaults{
		UID:               0x7A7000000001,
		DeviceModelID:     1,
		ProductCategory:   0x0100,
		SoftwareVersionID: 0x01000000,
		ManufacturerLabel: "dmxlabs",
		SoftwareVersion:   "1.0.0-sim",
		SupportedLanguage: [2]byte{'e', 'n'},
		Personalities: []rdm.Personality{
			{SlotCount: 4, Description: "RGBW"},
		},
		DefaultPersonality: 1,
		DefaultStartAddr:   1,
		DefaultLabel:       "Simulated Responder",
	}

	r := rdm.NewResponder(bus, clock, hw, defaults, rdm.WithLogger(stderrLogger{}))

	fmt.Fprintln(os.Stderr, "rdm responder simulator — type \"help\" for commands")
	runREPL(bufio.NewScanner(os.Stdin), bus, r)
}

type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "debug: "+format+"\n", args...)
}

var _ rlog.Logger = stderrLogger{}

// fixedClock reports real wall-clock time but uptime relative to process
// start, so repeated simulator runs produce stable DEVICE_HOURS deltas.
type fixedClock struct{ start time.Time }

func (c fixedClock) UptimeSeconds() uint64 { return uint64(time.Since(c.start).Seconds()) }
func (c fixedClock) WallClock() time.Time  { return time.Now() }

type simHardware struct{}

func (simHardware) Reboot() { fmt.Fprintln(os.Stderr, "reboot requested (no-op in simulator)") }
func (simHardware) FirmwareRevision() uint32  { return 0x00010000 }
func (simHardware) BoardModel() string        { return "dmxlabs simulator" }
func (simHardware) FirmwareCopyright() string { return "(c) dmxlabs" }
