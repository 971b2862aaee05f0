package frame

import (
	"encoding/binary"
	"fmt"
)

// Wire format: a 2-byte big-endian payload length followed by exactly that
// many payload bytes. No delimiter, no checksum. An empty payload is the
// two bytes 0x00 0x00.
const (
	HeaderLength     = 2
	MaxPayloadLength = 65535
)

var ErrPayloadTooLarge = fmt.Errorf("payload too large")
var ErrIncompleteInput = fmt.Errorf("incomplete input")

// Encode builds the wire frame for payload. It fails before producing any
// bytes when the payload does not fit the 16-bit length field, so an
// oversized payload can never leave a partial frame on a transport.
func Encode(payload []byte) ([]byte, error) {
	if len(payload) > MaxPayloadLength {
		return nil, fmt.Errorf("%w: %d bytes, maximum is %d", ErrPayloadTooLarge, len(payload), MaxPayloadLength)
	}
	wire := make([]byte, HeaderLength+len(payload))
	binary.BigEndian.PutUint16(wire[:HeaderLength], uint16(len(payload)))
	copy(wire[HeaderLength:], payload)
	return wire, nil
}
