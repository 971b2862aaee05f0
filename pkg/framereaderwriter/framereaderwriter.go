package framereaderwriter

import (
	"time"
)

// FrameReaderWriter moves whole payloads over a stream connection, hiding
// the length-prefix framing. Payload bytes are opaque to this layer; size
// limits and error values come from the frame package.
type FrameReaderWriter interface {
	Write(payload []byte) error
	Read() ([]byte, error)
	SetReadDeadline(deadline time.Time) error
}
