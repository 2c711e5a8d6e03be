package rdm

// Wire-level constants, ANSI E1.20.

const (
	// StartCode is the DMX start code identifying an RDM frame (SC_RDM).
	StartCode byte = 0xCC
	// SubStartCode is the sub-start-code of every RDM command frame.
	SubStartCode byte = 0x01
)

// Command classes.
const (
	ClassDiscoveryCommand         byte = 0x10
	ClassDiscoveryCommandResponse byte = 0x11
	ClassGetCommand               byte = 0x20
	ClassGetCommandResponse       byte = 0x21
	ClassSetCommand               byte = 0x30
	ClassSetCommandResponse       byte = 0x31
)

// Response types, carried in the port_id_or_response_type byte of a reply.
const (
	ResponseTypeAck        byte = 0x00
	ResponseTypeAckTimer   byte = 0x01
	ResponseTypeNackReason byte = 0x02
	ResponseTypeAckOverfl  byte = 0x03
)

// Discovery PIDs.
const (
	PIDDiscUniqueBranch uint16 = 0x0001
	PIDDiscMute         uint16 = 0x0002
	PIDDiscUnMute       uint16 = 0x0003
)

// Parameter IDs handled by this responder.
const (
	PIDSupportedParameters     uint16 = 0x0050
	PIDDeviceInfo              uint16 = 0x0060
	PIDProductDetailIDList     uint16 = 0x0070
	PIDDeviceModelDescription  uint16 = 0x0080
	PIDManufacturerLabel       uint16 = 0x0081
	PIDDeviceLabel             uint16 = 0x0082
	PIDFactoryDefaults         uint16 = 0x0090
	PIDLanguageCapabilities    uint16 = 0x00A0
	PIDLanguage                uint16 = 0x00B0
	PIDSoftwareVersionLabel    uint16 = 0x00C0
	PIDBootSoftwareVersionID   uint16 = 0x00C1
	PIDBootSoftwareVersionLbl  uint16 = 0x00C2
	PIDDMXPersonality          uint16 = 0x00E0
	PIDDMXPersonalityDesc      uint16 = 0x00E1
	PIDDMXStartAddress         uint16 = 0x00F0
	PIDDeviceHours             uint16 = 0x0400
	PIDRealTimeClock           uint16 = 0x0480
	PIDIdentifyDevice          uint16 = 0x1000
	PIDResetDevice             uint16 = 0x1001
)

// RDMMessageMinimumSize is the header length excluding param_data
// (start_code through checksum-excluded end of the fixed header).
const RDMMessageMinimumSize = 24

// MaxParamDataLength is the largest legal param_data_length value.
const MaxParamDataLength = 231

// MaxFrameSize is the largest a command frame can be: header + max
// param_data + 2-byte checksum.
const MaxFrameSize = RDMMessageMinimumSize + MaxParamDataLength + 2

// DiscoveryResponseSize is the fixed size of a discovery response frame:
// 7 preamble bytes + 1 delimiter + 12 masked UID bytes + 4 checksum bytes.
const DiscoveryResponseSize = 7 + 1 + 12 + 4

// Byte offsets within a command frame.
const (
	offStartCode      = 0
	offSubStartCode   = 1
	offMessageLength  = 2
	offDestUID        = 3
	offSrcUID         = 9
	offTransactionNum = 15
	offPortIDOrResp   = 16
	offMessageCount   = 17
	offSubDevice      = 18
	offCommandClass   = 20
	offParamID        = 21
	offParamDataLen   = 23
	offParamData      = 24
)
