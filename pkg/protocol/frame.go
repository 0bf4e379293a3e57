package protocol

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// MaxFrameSize is the largest encoded frame accepted from a client.
const MaxFrameSize = 64 * 1024

// FrameType identifies the type of frame.
type FrameType string

const (
	FrameHello   FrameType = "hello"
	FrameEvent   FrameType = "event"
	FramePatches FrameType = "patches"
	FramePing    FrameType = "ping"
	FramePong    FrameType = "pong"
	FrameError   FrameType = "error"
	FrameClose   FrameType = "close"
)

// Valid reports whether ft is a known frame type.
func (ft FrameType) Valid() bool {
	switch ft {
	case FrameHello, FrameEvent, FramePatches, FramePing, FramePong, FrameError, FrameClose:
		return true
	default:
		return false
	}
}

// Frame errors.
var (
	ErrFrameTooLarge    = errors.New("protocol: frame too large")
	ErrInvalidFrameType = errors.New("protocol: invalid frame type")
	ErrMalformedFrame   = errors.New("protocol: malformed frame")
)

// Frame is one WebSocket message.
type Frame struct {
	Type    FrameType       `json:"t"`
	Seq     uint64          `json:"seq,omitempty"`
	Payload json.RawMessage `json:"d,omitempty"`
}

// NewFrame marshals payload into a frame of the given type. A nil payload
// produces a frame without a d member.
func NewFrame(ft FrameType, payload any) (*Frame, error) {
	f := &Frame{Type: ft}
	if payload == nil {
		return f, nil
	}
	data, err := marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("protocol: marshal %s payload: %w", ft, err)
	}
	f.Payload = data
	return f, nil
}

// Encode returns the frame's wire form.
func (f *Frame) Encode() ([]byte, error) {
	return marshal(f)
}

// marshal is json.Marshal without HTML escaping; patches carry markup.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// DecodeFrame parses and validates a frame received from a client.
func DecodeFrame(data []byte) (*Frame, error) {
	if len(data) > MaxFrameSize {
		return nil, ErrFrameTooLarge
	}
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	if !f.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFrameType, f.Type)
	}
	return &f, nil
}

// Decode unmarshals the frame payload into v.
func (f *Frame) Decode(v any) error {
	if len(f.Payload) == 0 {
		return fmt.Errorf("%w: %s frame has no payload", ErrMalformedFrame, f.Type)
	}
	if err := json.Unmarshal(f.Payload, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	return nil
}
