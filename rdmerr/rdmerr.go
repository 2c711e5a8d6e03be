// Package rdmerr defines the sentinel errors a PID handler can return to
// request a NACK_REASON reply instead of an ACK.
package rdmerr

import "errors"

// NackError carries the ANSI E1.20 NACK reason code that should be sent
// in place of an ACK for the current frame.
type NackError struct {
	reason byte
	msg    string
}

func (e *NackError) Error() string { return e.msg }

// NackReason returns the low byte of the 2-byte big-endian NACK reason code
// to place in param_data (the high byte is always 0x00 for the reasons this
// responder uses).
func (e *NackError) NackReason() byte { return e.reason }

// NACK reason codes, ANSI E1.20 Table A-17.
const (
	ReasonUnknownPID             byte = 0x00
	ReasonFormatError            byte = 0x01
	ReasonHardwareFault          byte = 0x02
	ReasonProxyReject            byte = 0x03
	ReasonWriteProtect           byte = 0x04
	ReasonUnsupportedCommandClas byte = 0x05
	ReasonDataOutOfRange         byte = 0x06
	ReasonBufferFull             byte = 0x07
	ReasonPacketSizeUnsupported  byte = 0x08
	ReasonSubDeviceOutOfRange    byte = 0x09
	ReasonProxyBufferFull        byte = 0x0A
)

var (
	// ErrUnknownPID indicates the requested PID is not in the parameter table.
	ErrUnknownPID = &NackError{ReasonUnknownPID, "rdm: unknown pid"}
	// ErrFormatError indicates param_data_length did not match what the
	// PID/command class expects, or the payload was otherwise malformed.
	ErrFormatError = &NackError{ReasonFormatError, "rdm: format error"}
	// ErrWriteProtect indicates a SET was attempted against a read-only PID.
	ErrWriteProtect = &NackError{ReasonWriteProtect, "rdm: write protect"}
	// ErrUnsupportedCommandClass indicates the command class has no handler
	// for this PID (e.g. GET against a set-only PID, or a class that is
	// neither GET nor SET).
	ErrUnsupportedCommandClass = &NackError{ReasonUnsupportedCommandClas, "rdm: unsupported command class"}
	// ErrDataOutOfRange indicates a value was syntactically well formed but
	// outside the allowed range for the PID.
	ErrDataOutOfRange = &NackError{ReasonDataOutOfRange, "rdm: data out of range"}
	// ErrSubDeviceOutOfRange indicates sub_device was neither the root
	// device (0) nor the all-sub-devices wildcard (0xFFFF).
	ErrSubDeviceOutOfRange = &NackError{ReasonSubDeviceOutOfRange, "rdm: sub device out of range"}
)

// AsNack extracts the NACK reason code from err, if err (or something it
// wraps) is a *NackError.
func AsNack(err error) (reason byte, ok bool) {
	var nerr *NackError
	if errors.As(err, &nerr) {
		return nerr.reason, true
	}
	return 0, false
}
