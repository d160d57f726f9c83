package msg

// NoteOff returns a note-off message for the given channel, note number and
// release velocity.
func NoteOff(ch, note, velocity byte) Message {
	return voice3(KindNoteOff, ch, note, velocity)
}

// NoteOn returns a note-on message for the given channel, note number and
// velocity.
func NoteOn(ch, note, velocity byte) Message {
	return voice3(KindNoteOn, ch, note, velocity)
}

// KeyPressure returns a polyphonic key-pressure message.
func KeyPressure(ch, note, pressure byte) Message {
	return voice3(KindKeyPressure, ch, note, pressure)
}

// ControlChange returns a control-change message.
func ControlChange(ch, control, value byte) Message {
	return voice3(KindControlChange, ch, control, value)
}

// ProgramChange returns a program-change message.
func ProgramChange(ch, program byte) Message {
	return Message{Kind: KindProgramChange, Channel: ch & 0x0F, Data1: program & 0x7F}
}

// ChannelPressure returns a channel-pressure message.
func ChannelPressure(ch, pressure byte) Message {
	return Message{Kind: KindChannelPressure, Channel: ch & 0x0F, Data1: pressure & 0x7F}
}

// PitchBend returns a pitch-bend message. The value range is 0-16383 with
// 8192 meaning no bend.
func PitchBend(ch byte, value uint16) Message {
	lsb, msb := enc14bit(value)
	return Message{Kind: KindPitchBend, Channel: ch & 0x0F, Data1: lsb, Data2: msb}
}

// QuarterFrame returns an MTC quarter-frame message. The value carries the
// frame type and digit packed into seven bits.
func QuarterFrame(value byte) Message {
	return Message{Kind: KindQuarterFrame, Data1: value & 0x7F}
}

// SongPosition returns a song-position-pointer message. The value counts
// MIDI beats (0-16383).
func SongPosition(value uint16) Message {
	lsb, msb := enc14bit(value)
	return Message{Kind: KindSongPosition, Data1: lsb, Data2: msb}
}

// SongSelect returns a song-select message.
func SongSelect(song byte) Message {
	return Message{Kind: KindSongSelect, Data1: song & 0x7F}
}

// TuneRequest returns a tune-request message.
func TuneRequest() Message { return Message{Kind: KindTuneRequest} }

// TimingClock returns a timing-clock message.
func TimingClock() Message { return Message{Kind: KindTimingClock} }

// Start returns a start message.
func Start() Message { return Message{Kind: KindStart} }

// Continue returns a continue message.
func Continue() Message { return Message{Kind: KindContinue} }

// Stop returns a stop message.
func Stop() Message { return Message{Kind: KindStop} }

// ActiveSensing returns an active-sensing message.
func ActiveSensing() Message { return Message{Kind: KindActiveSensing} }

// Reset returns a system-reset message.
func Reset() Message { return Message{Kind: KindReset} }

func voice3(k Kind, ch, d1, d2 byte) Message {
	return Message{Kind: k, Channel: ch & 0x0F, Data1: d1 & 0x7F, Data2: d2 & 0x7F}
}

func enc14bit(num uint16) (lsb, msb byte) {
	return byte(num) & 0x7F, byte(num>>7) & 0x7F
}

func dec14bit(l, h byte) uint16 {
	return uint16(l&0x7F) | uint16(h&0x7F)<<7
}
