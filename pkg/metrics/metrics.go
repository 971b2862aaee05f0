package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts the traffic moved through the frame transport adapters.
// All record methods are safe on a nil receiver, so callers that do not
// export metrics simply pass nil.
type Metrics struct {
	FramesSent       prometheus.Counter
	FramesReceived   prometheus.Counter
	BytesSent        prometheus.Counter
	BytesReceived    prometheus.Counter
	EncodeRejections prometheus.Counter
	TruncatedStreams prometheus.Counter
}

// New creates and registers the metrics with reg. Pass
// prometheus.DefaultRegisterer to expose them via promhttp.Handler.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FramesSent: factory.NewCounter(prometheus.CounterOpts{
			Name: "frame_frames_sent_total",
			Help: "Total number of frames written to the transport",
		}),
		FramesReceived: factory.NewCounter(prometheus.CounterOpts{
			Name: "frame_frames_received_total",
			Help: "Total number of complete frames decoded from the transport",
		}),
		BytesSent: factory.NewCounter(prometheus.CounterOpts{
			Name: "frame_bytes_sent_total",
			Help: "Total wire bytes written, length prefixes included",
		}),
		BytesReceived: factory.NewCounter(prometheus.CounterOpts{
			Name: "frame_bytes_received_total",
			Help: "Total raw bytes read from the transport",
		}),
		EncodeRejections: factory.NewCounter(prometheus.CounterOpts{
			Name: "frame_encode_rejections_total",
			Help: "Total number of payloads rejected for exceeding the frame size limit",
		}),
		TruncatedStreams: factory.NewCounter(prometheus.CounterOpts{
			Name: "frame_truncated_streams_total",
			Help: "Total number of streams that ended in the middle of a frame",
		}),
	}
}

func (m *Metrics) RecordFrameSent(wireLen int) {
	if m == nil {
		return
	}
	m.FramesSent.Inc()
	m.BytesSent.Add(float64(wireLen))
}

func (m *Metrics) RecordBytesReceived(n int) {
	if m == nil {
		return
	}
	m.BytesReceived.Add(float64(n))
}

func (m *Metrics) RecordFrameReceived() {
	if m == nil {
		return
	}
	m.FramesReceived.Inc()
}

func (m *Metrics) RecordEncodeRejection() {
	if m == nil {
		return
	}
	m.EncodeRejections.Inc()
}

func (m *Metrics) RecordTruncatedStream() {
	if m == nil {
		return
	}
	m.TruncatedStreams.Inc()
}
