package wire

import "github.com/fjl/midiwire/msg"

// Parse decodes the message at the start of buf. It consumes exactly the
// number of bytes declared by the status byte; trailing bytes are ignored.
//
// The first byte must be a status byte. Running status is not honored in
// this form, use Parser for streams that rely on it.
func Parse(buf []byte) (msg.Message, error) {
	if len(buf) == 0 {
		return msg.Message{}, ErrBufferTooShort
	}
	kind, ok := kindOf(buf[0])
	if !ok {
		return msg.Message{}, ErrNoMessage
	}
	n := kind.Len()
	if n > len(buf) {
		return msg.Message{}, ErrBufferTooShort
	}
	var d1, d2 byte
	if n > 1 {
		d1 = buf[1]
	}
	if n > 2 {
		d2 = buf[2]
	}
	return decode(kind, buf[0]&0x0F, d1, d2), nil
}

// decode builds the model value for a message of the given kind from its
// channel and raw data bytes. Range handling is left to the model.
func decode(kind msg.Kind, ch, d1, d2 byte) msg.Message {
	switch kind {
	case msg.KindNoteOff:
		return msg.NoteOff(ch, d1, d2)
	case msg.KindNoteOn:
		return msg.NoteOn(ch, d1, d2)
	case msg.KindKeyPressure:
		return msg.KeyPressure(ch, d1, d2)
	case msg.KindControlChange:
		return msg.ControlChange(ch, d1, d2)
	case msg.KindProgramChange:
		return msg.ProgramChange(ch, d1)
	case msg.KindChannelPressure:
		return msg.ChannelPressure(ch, d1)
	case msg.KindPitchBend:
		return msg.PitchBend(ch, dec14bit(d1, d2))
	case msg.KindQuarterFrame:
		return msg.QuarterFrame(d1)
	case msg.KindSongPosition:
		return msg.SongPosition(dec14bit(d1, d2))
	case msg.KindSongSelect:
		return msg.SongSelect(d1)
	default:
		// Remaining kinds are the 1-byte system messages.
		return msg.Message{Kind: kind}
	}
}

// Render encodes m at the start of buf and returns the number of bytes
// written. It returns ErrBufferTooShort if buf is shorter than the wire
// length of the message, and ErrNoMessage if m.Kind does not name a
// message. Bytes beyond the returned count are left untouched.
func Render(m msg.Message, buf []byte) (int, error) {
	n := m.Len()
	if n == 0 {
		return 0, ErrNoMessage
	}
	if len(buf) < n {
		return 0, ErrBufferTooShort
	}
	buf[0] = m.Status()
	if n > 1 {
		buf[1] = m.Data1 & 0x7F
	}
	if n > 2 {
		buf[2] = m.Data2 & 0x7F
	}
	return n, nil
}

// MustRender is like Render, but requires len(buf) >= 3 regardless of the
// length of the message. It panics when the requirement is violated,
// making it suitable for callers that always hand in a worst-case buffer
// and do not want an error path.
func MustRender(m msg.Message, buf []byte) int {
	if len(buf) < 3 {
		panic("wire: MustRender called with buffer shorter than 3 bytes")
	}
	n, err := Render(m, buf)
	if err != nil {
		panic(err)
	}
	return n
}

// Append appends the wire encoding of m to dst and returns the extended
// slice. Messages of unknown kind append nothing.
func Append(dst []byte, m msg.Message) []byte {
	switch m.Len() {
	case 1:
		return append(dst, m.Status())
	case 2:
		return append(dst, m.Status(), m.Data1&0x7F)
	case 3:
		return append(dst, m.Status(), m.Data1&0x7F, m.Data2&0x7F)
	}
	return dst
}

func dec14bit(l, h byte) uint16 {
	return uint16(l&0x7F) | uint16(h&0x7F)<<7
}
