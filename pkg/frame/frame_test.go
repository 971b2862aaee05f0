package frame

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		payload  []byte
		expected []byte
	}{
		{
			name:     "empty payload",
			payload:  []byte{},
			expected: []byte{0x00, 0x00},
		},
		{
			name:     "nil payload",
			payload:  nil,
			expected: []byte{0x00, 0x00},
		},
		{
			name:     "short payload",
			payload:  []byte("ABCDE"),
			expected: []byte{0x00, 0x05, 'A', 'B', 'C', 'D', 'E'},
		},
		{
			name:     "length over one byte",
			payload:  bytes.Repeat([]byte{0xAA}, 258),
			expected: append([]byte{0x01, 0x02}, bytes.Repeat([]byte{0xAA}, 258)...),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wire, err := Encode(tt.payload)
			if err != nil {
				t.Fatalf("Encode returned error: %v", err)
			}
			if !bytes.Equal(wire, tt.expected) {
				t.Errorf("Encode = %v, expected %v", wire, tt.expected)
			}
		})
	}
}

func TestEncodeMaxPayload(t *testing.T) {
	payload := bytes.Repeat([]byte{0x42}, MaxPayloadLength)
	wire, err := Encode(payload)
	if err != nil {
		t.Fatalf("Encode returned error for maximum-size payload: %v", err)
	}
	if len(wire) != HeaderLength+MaxPayloadLength {
		t.Errorf("wire frame length = %d, expected %d", len(wire), HeaderLength+MaxPayloadLength)
	}
	if wire[0] != 0xFF || wire[1] != 0xFF {
		t.Errorf("length field = %02x %02x, expected ff ff", wire[0], wire[1])
	}
}

func TestEncodeOversizedPayload(t *testing.T) {
	payload := make([]byte, MaxPayloadLength+1)
	wire, err := Encode(payload)
	if err == nil {
		t.Fatal("expected error for oversized payload, got none")
	}
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Errorf("expected ErrPayloadTooLarge, got %v", err)
	}
	if wire != nil {
		t.Errorf("expected no wire bytes on failure, got %d bytes", len(wire))
	}
}

func TestEncodeDoesNotAliasPayload(t *testing.T) {
	payload := []byte("hello")
	wire, err := Encode(payload)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	payload[0] = 'X'
	if wire[HeaderLength] != 'h' {
		t.Error("wire frame aliases the caller's payload slice")
	}
}
