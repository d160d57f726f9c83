package msg

import "fmt"

// String returns a readable one-line form of the message.
func (m Message) String() string {
	switch m.Kind {
	case KindNoteOff, KindNoteOn:
		return fmt.Sprintf("%v ch=%d note=%d vel=%d", m.Kind, m.Channel, m.Data1, m.Data2)
	case KindKeyPressure:
		return fmt.Sprintf("KeyPressure ch=%d note=%d pressure=%d", m.Channel, m.Data1, m.Data2)
	case KindControlChange:
		return fmt.Sprintf("ControlChange ch=%d control=%d value=%d", m.Channel, m.Data1, m.Data2)
	case KindProgramChange:
		return fmt.Sprintf("ProgramChange ch=%d program=%d", m.Channel, m.Data1)
	case KindChannelPressure:
		return fmt.Sprintf("ChannelPressure ch=%d pressure=%d", m.Channel, m.Data1)
	case KindPitchBend:
		return fmt.Sprintf("PitchBend ch=%d value=%d", m.Channel, m.Value14())
	case KindQuarterFrame:
		return fmt.Sprintf("QuarterFrame value=%d", m.Data1)
	case KindSongPosition:
		return fmt.Sprintf("SongPosition beat=%d", m.Value14())
	case KindSongSelect:
		return fmt.Sprintf("SongSelect song=%d", m.Data1)
	default:
		return m.Kind.String()
	}
}
