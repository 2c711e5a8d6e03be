package rdm

import (
	"errors"

	"github.com/dmxlabs/rdm-responder/rdmerr"
)

// errAlreadyReplied is returned by a SetHandler that has already emitted
// its own reply (currently only setResetDevice, which must ACK before an
// unrecoverable reboot) so dispatchSet does not emit a second one.
var errAlreadyReplied = errors.New("rdm: handler already replied")

// ack finishes shaping the reply already written into f by the handler
// (param_data / param_data_length / message_length) into an ACK and
// hands it to the bus driver.
func (r *Responder) ack(f CommandFrame) {
	f.SetPortIDOrResponseType(ResponseTypeAck)
	r.emit(f)
}

// nack shapes a NACK_REASON reply whose 2-byte param_data is the given
// reason code (high byte 0x00).
func (r *Responder) nack(f CommandFrame, reason byte) {
	f.SetParamData([]byte{0x00, reason})
	f.SetPortIDOrResponseType(ResponseTypeNackReason)
	r.emit(f)
}

// nackErr extracts the NACK reason from err (falling back to
// UNSUPPORTED_COMMAND_CLASS for a non-rdmerr error, which should not
// happen in practice) and shapes the NACK reply.
func (r *Responder) nackErr(f CommandFrame, err error) {
	reason, ok := rdmerr.AsNack(err)
	if !ok {
		reason = rdmerr.ReasonUnsupportedCommandClas
	}
	r.nack(f, reason)
}

// emitAck is the low-level ACK emission used directly by setResetDevice,
// which must reply before triggering an unrecoverable reboot rather than
// returning control to the generic post-handler emission in dispatchSet.
func (r *Responder) emitAck(f CommandFrame) {
	f.SetEmptyParamData()
	r.ack(f)
}

// emit performs the common reply-shaping steps: swap source/destination
// UID, flip a GET or SET command class to the matching *_RESPONSE class
// (a DISCOVERY_COMMAND class byte is left unchanged), recompute
// message_length (already current via SetParamData/SetEmptyParamData)
// and checksum, and hand the frame to the bus driver.
func (r *Responder) emit(f CommandFrame) {
	src := f.SourceUID()
	dst := f.DestinationUID()
	f.SetDestinationUID(src)
	f.SetSourceUID(dst)

	switch f.CommandClass() {
	case ClassGetCommand:
		f.SetCommandClass(ClassGetCommandResponse)
	case ClassSetCommand:
		f.SetCommandClass(ClassSetCommandResponse)
	}

	f.SetChecksum(f.ComputeChecksum())

	if err := r.bus.SendResponse(f.ReplyLength()); err != nil {
		r.fault.ReportFault(err)
	}
}
