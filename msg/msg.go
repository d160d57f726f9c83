// Package msg defines the symbolic MIDI message model used by the wire codec.
//
// A Message is a small comparable value. Constructors truncate their
// arguments to the width the protocol can carry (4-bit channels, 7-bit data
// values, 14-bit wide values) instead of reporting range errors.
package msg

// Kind identifies a message variant. For channel voice messages it is the
// status byte with the channel nibble cleared; for system messages it is the
// full status byte.
type Kind byte

// Channel voice message kinds.
const (
	KindNoteOff         = Kind(0x80)
	KindNoteOn          = Kind(0x90)
	KindKeyPressure     = Kind(0xA0)
	KindControlChange   = Kind(0xB0)
	KindProgramChange   = Kind(0xC0)
	KindChannelPressure = Kind(0xD0)
	KindPitchBend       = Kind(0xE0)
)

// System common message kinds.
const (
	KindQuarterFrame = Kind(0xF1)
	KindSongPosition = Kind(0xF2)
	KindSongSelect   = Kind(0xF3)
	KindTuneRequest  = Kind(0xF6)
)

// System real-time message kinds.
const (
	KindTimingClock   = Kind(0xF8)
	KindStart         = Kind(0xFA)
	KindContinue      = Kind(0xFB)
	KindStop          = Kind(0xFC)
	KindActiveSensing = Kind(0xFE)
	KindReset         = Kind(0xFF)
)

// IsVoice reports whether k is a channel voice/mode message kind.
func (k Kind) IsVoice() bool {
	return k >= 0x80 && k < 0xF0
}

// IsSystemCommon reports whether k is a system common message kind.
func (k Kind) IsSystemCommon() bool {
	return k >= 0xF0 && k < 0xF8
}

// IsRealtime reports whether k is a system real-time message kind.
func (k Kind) IsRealtime() bool {
	return k >= 0xF8
}

// Len returns the wire length of messages of kind k, including the status
// byte. It returns zero for kinds that do not name a message.
func (k Kind) Len() int {
	switch k {
	case KindNoteOff, KindNoteOn, KindKeyPressure, KindControlChange, KindPitchBend, KindSongPosition:
		return 3
	case KindProgramChange, KindChannelPressure, KindQuarterFrame, KindSongSelect:
		return 2
	case KindTuneRequest, KindTimingClock, KindStart, KindContinue, KindStop, KindActiveSensing, KindReset:
		return 1
	default:
		return 0
	}
}

func (k Kind) String() string {
	switch k {
	case KindNoteOff:
		return "NoteOff"
	case KindNoteOn:
		return "NoteOn"
	case KindKeyPressure:
		return "KeyPressure"
	case KindControlChange:
		return "ControlChange"
	case KindProgramChange:
		return "ProgramChange"
	case KindChannelPressure:
		return "ChannelPressure"
	case KindPitchBend:
		return "PitchBend"
	case KindQuarterFrame:
		return "QuarterFrame"
	case KindSongPosition:
		return "SongPosition"
	case KindSongSelect:
		return "SongSelect"
	case KindTuneRequest:
		return "TuneRequest"
	case KindTimingClock:
		return "TimingClock"
	case KindStart:
		return "Start"
	case KindContinue:
		return "Continue"
	case KindStop:
		return "Stop"
	case KindActiveSensing:
		return "ActiveSensing"
	case KindReset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// Message is a decoded MIDI message. Channel is meaningful for voice kinds
// only; Data1 and Data2 hold zero, one or two 7-bit data bytes in wire
// order. The zero Message is not a valid message.
type Message struct {
	Kind    Kind
	Channel byte
	Data1   byte
	Data2   byte
}

// Status returns the status byte of the message: the kind combined with the
// channel nibble for voice messages, the plain kind byte otherwise.
func (m Message) Status() byte {
	if m.Kind.IsVoice() {
		return byte(m.Kind) | m.Channel&0x0F
	}
	return byte(m.Kind)
}

// Len returns the wire length of the message in bytes.
func (m Message) Len() int {
	return m.Kind.Len()
}

// Value14 returns the combined 14-bit value of a pitch-bend or
// song-position message.
func (m Message) Value14() uint16 {
	return dec14bit(m.Data1, m.Data2)
}
