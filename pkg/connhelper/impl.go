package connhelper

import (
	"fmt"
	"io"

	"github.com/anpotashev/frame-common/pkg/frame"
)

type impl struct {
	rw      io.ReadWriter
	framer  *frame.Framer
	pending [][]byte
	buf     []byte
}

const readBufferSize = 4096

func New(rw io.ReadWriter) ConnHelper {
	return &impl{
		rw:     rw,
		framer: frame.NewFramer(),
		buf:    make([]byte, readBufferSize),
	}
}

func (i *impl) Write(payload []byte) error {
	wire, err := frame.Encode(payload)
	if err != nil {
		return err
	}
	_, err = i.rw.Write(wire)
	return err
}

// Read blocks until one complete payload is available. Frames decoded
// beyond the first are queued for the following calls. A stream that ends
// mid-frame yields frame.ErrIncompleteInput; a clean end yields io.EOF.
func (i *impl) Read() ([]byte, error) {
	for len(i.pending) == 0 {
		n, err := i.rw.Read(i.buf)
		if n > 0 {
			i.pending = append(i.pending, i.framer.Feed(i.buf[:n])...)
		}
		if err != nil {
			if len(i.pending) > 0 {
				break
			}
			if closeErr := i.framer.Close(); closeErr != nil {
				return nil, fmt.Errorf("stream ended: %w", closeErr)
			}
			return nil, err
		}
	}
	payload := i.pending[0]
	i.pending = i.pending[1:]
	return payload, nil
}
