// Package monitor renders a debug status overlay for a responder onto a
// character display, one fixed text line per concern (uptime, label,
// mute/identify state, last RDM transaction) in the style of a serial
// debug console. It only ever reads rdm.Responder.Snapshot — an advisory,
// torn-tolerant view — and never touches responder state.
package monitor

import (
	"strconv"

	"github.com/dmxlabs/rdm-responder/rdm"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyterm"
)

// Line indices on the overlay, one per reported concern.
const (
	LineUptime  = 1
	LineLabel   = 2
	LineUID     = 3
	LinePort    = 4
	LineRDM     = 6
	LineStatus  = 8
)

// Snapshotter is the subset of rdm.Responder the overlay depends on.
type Snapshotter interface {
	Snapshot() rdm.Snapshot
}

// UptimeFunc reports elapsed seconds, independent of the responder's own
// Clock collaborator so the overlay can be driven in tests without one.
type UptimeFunc func() uint64

// Overlay drives a tinyterm.Terminal laid out over a tinyfont display.
type Overlay struct {
	term *tinyterm.Terminal
	r    Snapshotter
	up   UptimeFunc
}

// New builds an Overlay. font and display set up the terminal's character
// cell geometry exactly as tinyterm.NewTerminal expects.
func New(display tinyterm.Displayer, font *tinyfont.Font, r Snapshotter, up UptimeFunc) *Overlay {
	return &Overlay{
		term: tinyterm.NewTerminal(display),
		r:    r,
		up:   up,
	}
}

// Configure configures and clears the terminal. Each line's label is
// written together with its value by Update.
func (o *Overlay) Configure() {
	o.term.Configure(&tinyterm.Config{})
	o.term.ClearDisplay()
}

// Update repaints every line from a fresh Snapshot. Call this on a slow
// tick (e.g. once per second) — it is far too slow to call from the poll
// loop that also dispatches frames.
func (o *Overlay) Update() {
	s := o.r.Snapshot()

	o.line(LineUptime, "uptime: "+strconv.FormatUint(o.up(), 10)+"s")
	o.line(LineLabel, "label: "+s.Label)
	o.line(LineUID, "uid: "+s.UID.String())
	o.line(LinePort, "addr: "+strconv.Itoa(int(s.DMXStartAddress))+
		" pers: "+strconv.Itoa(int(s.CurrentPersonality))+"/"+strconv.Itoa(int(s.PersonalityCount)))
	o.line(LineStatus, statusLine(s))
}

func statusLine(s rdm.Snapshot) string {
	status := "status: "
	if s.Muted {
		status += "muted "
	} else {
		status += "active "
	}
	if s.Identifying {
		status += "identify"
	}
	return status
}

// LastRDM reports the most recent transaction for the RDM traffic line, in
// the same "command-class + PID" shorthand the original sniffer's
// monitor_rdm_data line used.
func (o *Overlay) LastRDM(commandClass byte, pid uint16) {
	o.line(LineRDM, "rdm: cc="+strconv.FormatUint(uint64(commandClass), 16)+
		" pid="+strconv.FormatUint(uint64(pid), 16))
}

func (o *Overlay) line(row int, text string) {
	o.term.SetCursor(0, int16(row))
	o.term.ClearLine()
	o.term.WriteString(text)
}
