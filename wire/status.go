// Package wire converts between symbolic MIDI messages and the raw bytes
// sent over a MIDI cable.
//
// Three codec forms are provided: Parse and Render work on a complete,
// already-buffered message; Parser reconstructs messages from a byte stream
// one byte at a time, honoring running status and real-time interruption;
// Writer renders messages to an output, optionally compressing repeated
// status bytes using running status.
package wire

import (
	"errors"

	"github.com/fjl/midiwire/msg"
)

var (
	// ErrBufferTooShort is returned when a buffer is shorter than the wire
	// length of the message being parsed or rendered.
	ErrBufferTooShort = errors.New("wire: buffer too short")

	// ErrNoMessage is returned by Parse when the buffer does not start with
	// a recognized status byte.
	ErrNoMessage = errors.New("wire: no message found")
)

// SysEx delimiter bytes. SysEx bodies are not modeled by this package; the
// delimiters only matter as parser state resets.
const (
	sysExStart = 0xF0
	sysExEnd   = 0xF7
)

// Reserved system real-time status bytes.
const (
	reserved0xF9 = 0xF9
	reserved0xFD = 0xFD
)

// isStatus reports whether b is a status byte (high bit set).
func isStatus(b byte) bool {
	return b&0x80 == 0x80
}

// isSystem reports whether b is a system common or real-time status byte.
func isSystem(b byte) bool {
	return b&0xF0 == 0xF0
}

// splitStatus splits a channel voice status byte into its kind and channel.
func splitStatus(b byte) (msg.Kind, byte) {
	return msg.Kind(b & 0xF0), b & 0x0F
}

// kindOf maps a status byte to its message kind. It returns false for data
// bytes, for the SysEx delimiters and for undefined/reserved status bytes.
func kindOf(b byte) (msg.Kind, bool) {
	if !isStatus(b) {
		return 0, false
	}
	if !isSystem(b) {
		k, _ := splitStatus(b)
		return k, true
	}
	k := msg.Kind(b)
	if k.Len() == 0 {
		return 0, false
	}
	return k, true
}

// MessageLen returns the wire length, status byte included, of the message
// declared by the given status byte. It returns zero if the byte does not
// declare a supported message.
func MessageLen(status byte) int {
	k, ok := kindOf(status)
	if !ok {
		return 0
	}
	return k.Len()
}
