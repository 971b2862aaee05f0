package frame

import (
	"encoding/binary"
	"fmt"
)

// Framer turns an arbitrarily chunked byte stream back into payloads.
// It buffers bytes across Feed calls until a complete frame is available,
// so the same byte stream produces the same payloads no matter how the
// transport slices it.
//
// A Framer is not safe for concurrent use; each connection owns one.
type Framer struct {
	buf []byte
}

func NewFramer() *Framer {
	return &Framer{}
}

// Feed appends chunk to the internal buffer and returns every payload that
// is now complete, in stream order. Returned payloads are copies and stay
// valid after further Feed calls. Feeding an empty chunk is allowed and
// may still return nothing.
func (f *Framer) Feed(chunk []byte) [][]byte {
	f.buf = append(f.buf, chunk...)
	var payloads [][]byte
	for {
		if len(f.buf) < HeaderLength {
			break
		}
		payloadLen := int(binary.BigEndian.Uint16(f.buf[:HeaderLength]))
		if len(f.buf) < HeaderLength+payloadLen {
			break
		}
		payload := make([]byte, payloadLen)
		copy(payload, f.buf[HeaderLength:HeaderLength+payloadLen])
		payloads = append(payloads, payload)
		f.buf = f.buf[HeaderLength+payloadLen:]
	}
	if len(f.buf) == 0 {
		// drop the backing array once fully consumed
		f.buf = nil
	}
	return payloads
}

// Buffered returns the number of bytes held that do not yet form a
// complete frame.
func (f *Framer) Buffered() int {
	return len(f.buf)
}

// Close discards the buffer. If the stream ended mid-frame the leftover
// bytes represent a truncated, undeliverable payload and Close reports
// them as ErrIncompleteInput instead of dropping them silently.
func (f *Framer) Close() error {
	buffered := len(f.buf)
	f.buf = nil
	if buffered > 0 {
		return fmt.Errorf("%w: %d trailing bytes do not form a complete frame", ErrIncompleteInput, buffered)
	}
	return nil
}
