package framereaderwriter

import (
	"context"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/anpotashev/frame-common/pkg/frame"
	"github.com/anpotashev/frame-common/pkg/logconfig"
	"github.com/anpotashev/frame-common/pkg/metrics"
)

type impl struct {
	conn    net.Conn
	outChan chan []byte
	inChan  chan []byte
	ctx     context.Context
	cancel  context.CancelFunc
	logger  *slog.Logger
	m       *metrics.Metrics
	readErr error
}

const chanBufferSize = 1024
const readBufferSize = 32 * 1024

// New wraps conn and starts the writer and reader goroutines. The returned
// FrameReaderWriter is live until ctx is cancelled, Write hits a transport
// error, or the peer closes the connection. Pass nil metrics to disable
// counting.
func New(ctx context.Context, logger *slog.Logger, m *metrics.Metrics, conn net.Conn) FrameReaderWriter {
	ctx, cancel := context.WithCancel(ctx)
	result := &impl{
		conn:    conn,
		outChan: make(chan []byte, chanBufferSize),
		inChan:  make(chan []byte, chanBufferSize),
		ctx:     ctx,
		cancel:  cancel,
		logger:  logger.With("pkt", "framereaderwriter"),
		m:       m,
	}
	go result.startListeningOutChan()
	go result.startReading()
	return result
}

func (i *impl) Write(payload []byte) error {
	i.logger.Log(nil, logconfig.TraceLogLevel, "Writing payload to the outChan.", "Length", len(payload))
	select {
	case i.outChan <- payload:
		return nil
	case <-i.ctx.Done():
		i.logger.Warn("Received ctx.done", "Error", i.ctx.Err())
		return i.ctx.Err()
	}
}

func (i *impl) startListeningOutChan() {
	defer func() { _ = i.conn.Close() }()
	for {
		select {
		case payload := <-i.outChan:
			if err := i.writeFrame(payload); err != nil {
				i.logger.Error("Error writing the frame", "Error", err)
				return
			}
		case <-i.ctx.Done():
			i.logger.Warn("Received ctx.done", "Error", i.ctx.Err())
			return
		}
	}
}

// writeFrame encodes and writes the payload as one Write call. Encoding
// fails before anything is written, so an oversized payload never leaves a
// half-frame on the wire.
func (i *impl) writeFrame(payload []byte) error {
	wire, err := frame.Encode(payload)
	if err != nil {
		i.m.RecordEncodeRejection()
		return err
	}
	if _, err := i.conn.Write(wire); err != nil {
		return err
	}
	i.m.RecordFrameSent(len(wire))
	i.logger.Log(nil, logconfig.TraceLogLevel, "Frame sent.", "Length", len(payload))
	return nil
}

func (i *impl) startReading() {
	defer i.cancel()
	framer := frame.NewFramer()
	buf := make([]byte, readBufferSize)
	for {
		n, err := i.conn.Read(buf)
		if n > 0 {
			i.m.RecordBytesReceived(n)
			for _, payload := range framer.Feed(buf[:n]) {
				i.m.RecordFrameReceived()
				i.logger.Log(nil, logconfig.TraceLogLevel, "Read frame payload.", "Length", len(payload))
				select {
				case i.inChan <- payload:
				case <-i.ctx.Done():
					return
				}
			}
		}
		if err != nil {
			if err == io.EOF {
				i.logger.Info("EOF: peer closed connection")
			} else if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				i.logger.Error("Read deadline exceeded", "Error", err)
			} else {
				i.logger.Error("Error reading from the connection", "Error", err)
			}
			if closeErr := framer.Close(); closeErr != nil {
				i.m.RecordTruncatedStream()
				i.logger.Error("Connection ended mid-frame", "Error", closeErr)
				// published before cancel so Read observes it after ctx.Done
				i.readErr = closeErr
			}
			return
		}
	}
}

// Read returns the next decoded payload in arrival order. Payloads decoded
// before the connection died are drained first; after that Read reports
// frame.ErrIncompleteInput when the stream ended mid-frame, or the context
// error.
func (i *impl) Read() ([]byte, error) {
	select {
	case payload := <-i.inChan:
		return payload, nil
	default:
	}
	select {
	case payload := <-i.inChan:
		return payload, nil
	case <-i.ctx.Done():
		// payloads decoded before the connection died win over the error
		select {
		case payload := <-i.inChan:
			return payload, nil
		default:
		}
		if i.readErr != nil {
			return nil, i.readErr
		}
		return nil, i.ctx.Err()
	}
}

func (i *impl) SetReadDeadline(deadline time.Time) error {
	return i.conn.SetReadDeadline(deadline)
}
