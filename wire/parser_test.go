package wire

import (
	"reflect"
	"testing"

	"github.com/fjl/midiwire/msg"
)

// collect feeds input through p and gathers the completed messages.
func collect(p *Parser, input []byte) []msg.Message {
	var out []msg.Message
	for _, b := range input {
		if m, ok := p.Feed(b); ok {
			out = append(out, m)
		}
	}
	return out
}

func assertStream(t *testing.T, input []byte, want []msg.Message) {
	t.Helper()
	var p Parser
	got := collect(&p, input)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("feed %x:\n got %v\nwant %v", input, got, want)
	}
}

func TestParserMessages(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []msg.Message
	}{
		{
			name:  "note off",
			input: []byte{0x82, 0x76, 0x34},
			want:  []msg.Message{msg.NoteOff(2, 0x76, 0x34)},
		},
		{
			name: "note off running status",
			input: []byte{
				0x82, 0x76, 0x34, // first note off
				0x33, 0x65, // second note off without status byte
			},
			want: []msg.Message{
				msg.NoteOff(2, 0x76, 0x34),
				msg.NoteOff(2, 0x33, 0x65),
			},
		},
		{
			name:  "note on",
			input: []byte{0x91, 0x04, 0x34},
			want:  []msg.Message{msg.NoteOn(1, 0x04, 0x34)},
		},
		{
			name: "note on running status",
			input: []byte{
				0x92, 0x76, 0x34,
				0x33, 0x65,
			},
			want: []msg.Message{
				msg.NoteOn(2, 0x76, 0x34),
				msg.NoteOn(2, 0x33, 0x65),
			},
		},
		{
			name:  "key pressure",
			input: []byte{0xAA, 0x13, 0x34},
			want:  []msg.Message{msg.KeyPressure(10, 0x13, 0x34)},
		},
		{
			name: "key pressure running status",
			input: []byte{
				0xA8, 0x77, 0x03,
				0x14, 0x56,
			},
			want: []msg.Message{
				msg.KeyPressure(8, 0x77, 0x03),
				msg.KeyPressure(8, 0x14, 0x56),
			},
		},
		{
			name:  "control change",
			input: []byte{0xB2, 0x76, 0x34},
			want:  []msg.Message{msg.ControlChange(2, 0x76, 0x34)},
		},
		{
			name: "control change running status",
			input: []byte{
				0xB3, 0x3C, 0x18,
				0x43, 0x01,
			},
			want: []msg.Message{
				msg.ControlChange(3, 0x3C, 0x18),
				msg.ControlChange(3, 0x43, 0x01),
			},
		},
		{
			name:  "program change",
			input: []byte{0xC9, 0x15},
			want:  []msg.Message{msg.ProgramChange(9, 0x15)},
		},
		{
			name: "program change running status",
			input: []byte{
				0xC3, 0x67, // first program change
				0x01, // second program change without status byte
			},
			want: []msg.Message{
				msg.ProgramChange(3, 0x67),
				msg.ProgramChange(3, 0x01),
			},
		},
		{
			name:  "channel pressure",
			input: []byte{0xDD, 0x37},
			want:  []msg.Message{msg.ChannelPressure(13, 0x37)},
		},
		{
			name: "channel pressure running status",
			input: []byte{
				0xD6, 0x77,
				0x43,
			},
			want: []msg.Message{
				msg.ChannelPressure(6, 0x77),
				msg.ChannelPressure(6, 0x43),
			},
		},
		{
			name:  "pitch bend",
			input: []byte{0xE8, 0x14, 0x56},
			want:  []msg.Message{msg.PitchBend(8, 0x2B14)},
		},
		{
			name: "pitch bend running status",
			input: []byte{
				0xE3, 0x3C, 0x18,
				0x43, 0x01,
			},
			want: []msg.Message{
				msg.PitchBend(3, 0x0C3C),
				msg.PitchBend(3, 0x00C3),
			},
		},
		{
			name:  "quarter frame",
			input: []byte{0xF1, 0x7F},
			want:  []msg.Message{msg.QuarterFrame(0x7F)},
		},
		{
			name: "quarter frame running status",
			input: []byte{
				0xF1, 0x7F,
				0x56, // only data of the next quarter frame
			},
			want: []msg.Message{
				msg.QuarterFrame(0x7F),
				msg.QuarterFrame(0x56),
			},
		},
		{
			name:  "song position",
			input: []byte{0xF2, 0x7F, 0x68},
			want:  []msg.Message{msg.SongPosition(0x347F)},
		},
		{
			name: "song position running status",
			input: []byte{
				0xF2, 0x7F, 0x68,
				0x23, 0x7B,
			},
			want: []msg.Message{
				msg.SongPosition(0x347F),
				msg.SongPosition(0x3DA3),
			},
		},
		{
			name:  "song select",
			input: []byte{0xF3, 0x3F},
			want:  []msg.Message{msg.SongSelect(0x3F)},
		},
		{
			name: "song select running status",
			input: []byte{
				0xF3, 0x3F,
				0x00,
			},
			want: []msg.Message{
				msg.SongSelect(0x3F),
				msg.SongSelect(0x00),
			},
		},
		{
			name:  "tune request",
			input: []byte{0xF6},
			want:  []msg.Message{msg.TuneRequest()},
		},
		{
			name: "tune request interrupts",
			input: []byte{
				0x92, 0x76, // start a note on
				0xF6, // tune request aborts it
				0x34, // leftover data byte is dropped
			},
			want: []msg.Message{msg.TuneRequest()},
		},
		{
			name: "undefined status interrupts",
			input: []byte{
				0x92, 0x76, // start a note on
				0xF5, // undefined status aborts it
				0x34, // leftover data byte is dropped
			},
			want: nil,
		},
		{
			name: "sysex resets state",
			input: []byte{
				0x92, 0x76, // start a note on
				0xF0, 0x01, 0x02, 0xF7, // sysex body is not modeled
				0x34, // leftover data byte is dropped
			},
			want: nil,
		},
		{
			name: "new status overrides incomplete message",
			input: []byte{
				0x92, 0x1B, // incomplete note on
				0x82, 0x76, 0x34, // complete note off
			},
			want: []msg.Message{msg.NoteOff(2, 0x76, 0x34)},
		},
		{
			name:  "data bytes without context are dropped",
			input: []byte{0x12, 0x34, 0x56, 0x92, 0x76, 0x34},
			want:  []msg.Message{msg.NoteOn(2, 0x76, 0x34)},
		},
		{
			name:  "reserved realtime bytes are swallowed",
			input: []byte{0xF9, 0xFD},
			want:  nil,
		},
		{
			name: "realtime interrupt preserves in-progress message",
			input: []byte{
				0x92, 0x76, // start a note on
				0xF8, // timing clock in between
				0x34, // completes the note on
			},
			want: []msg.Message{
				msg.TimingClock(),
				msg.NoteOn(2, 0x76, 0x34),
			},
		},
		{
			name: "reserved realtime is transparent too",
			input: []byte{
				0xD6, 0xF9, 0x77,
			},
			want: []msg.Message{msg.ChannelPressure(6, 0x77)},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			assertStream(t, test.input, test.want)
		})
	}
}

func TestParserRealtimeTransparency(t *testing.T) {
	realtime := []msg.Message{
		msg.TimingClock(),
		msg.Start(),
		msg.Continue(),
		msg.Stop(),
		msg.ActiveSensing(),
		msg.Reset(),
	}

	for _, rt := range realtime {
		// The real-time byte arrives in the middle of a channel pressure
		// message and must not disturb it.
		input := []byte{0xD6, rt.Status(), 0x77}
		want := []msg.Message{rt, msg.ChannelPressure(6, 0x77)}
		assertStream(t, input, want)
	}
}

func TestParserReset(t *testing.T) {
	var p Parser
	p.Feed(0x92)
	p.Feed(0x76)
	p.Reset()
	if m, ok := p.Feed(0x34); ok {
		t.Fatalf("message %v completed after Reset", m)
	}
	// A fresh message still parses.
	got := collect(&p, []byte{0x82, 0x76, 0x34})
	want := []msg.Message{msg.NoteOff(2, 0x76, 0x34)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParserNoisePrefix(t *testing.T) {
	// An arbitrary malformed prefix must not stall the parser or make it
	// emit messages.
	var p Parser
	prefix := []byte{0x00, 0x7F, 0xF4, 0x10, 0xF5, 0xF0, 0x41, 0xF9, 0x22}
	if got := collect(&p, prefix); got != nil {
		t.Fatalf("noise produced messages: %v", got)
	}
	got := collect(&p, []byte{0x91, 0x40, 0x60})
	want := []msg.Message{msg.NoteOn(1, 0x40, 0x60)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParserRoundTrip(t *testing.T) {
	// Render every fixture message back to back and stream the bytes.
	var (
		input []byte
		want  []msg.Message
	)
	for _, m := range allMessages() {
		input = Append(input, m)
		want = append(want, m)
	}
	assertStream(t, input, want)
}
