package connhelper

// ConnHelper is the blocking counterpart of framereaderwriter: no
// goroutines, no channels, one frame in or out per call. It works over any
// io.ReadWriter, so it also fits tests and non-socket transports.
type ConnHelper interface {
	Write(payload []byte) error
	Read() ([]byte, error)
}
