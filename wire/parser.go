package wire

import "github.com/fjl/midiwire/msg"

// Parser reconstructs MIDI messages from a raw byte stream, one byte at a
// time. It tolerates noise and truncated input: bytes that do not advance a
// message are dropped and parsing resumes at the next status byte.
//
// The parser honors running status (a data byte following a complete
// channel voice message starts another message of the same kind and
// channel) and real-time transparency (real-time status bytes may arrive in
// the middle of any other message without disturbing it).
//
// A Parser must not be driven from multiple goroutines concurrently.
type Parser struct {
	// status is the status byte of the message in progress, or zero when
	// no message is in progress.
	status   byte
	data1    byte
	hasData1 bool
}

// Feed advances the parser by one received byte. If the byte completes a
// message, the message is returned with ok set to true.
func (p *Parser) Feed(b byte) (m msg.Message, ok bool) {
	if isStatus(b) {
		return p.feedStatus(b)
	}
	return p.feedData(b)
}

// Reset discards any partially received message.
func (p *Parser) Reset() {
	p.status = 0
	p.hasData1 = false
}

func (p *Parser) feedStatus(b byte) (msg.Message, bool) {
	if msg.Kind(b).IsRealtime() {
		// Real-time bytes are transparent: they complete on their own and
		// never disturb the message in progress.
		if b == reserved0xF9 || b == reserved0xFD {
			return msg.Message{}, false
		}
		return msg.Message{Kind: msg.Kind(b)}, true
	}
	if isSystem(b) {
		switch b {
		case byte(msg.KindQuarterFrame), byte(msg.KindSongPosition), byte(msg.KindSongSelect):
			p.status, p.hasData1 = b, false
			return msg.Message{}, false
		case byte(msg.KindTuneRequest):
			p.Reset()
			return msg.TuneRequest(), true
		case sysExStart, sysExEnd:
			// SysEx bodies are not modeled, the delimiters only reset.
			p.Reset()
			return msg.Message{}, false
		default:
			// The undefined 0xF4/0xF5 abort whatever was in progress.
			p.Reset()
			return msg.Message{}, false
		}
	}
	// A channel voice status byte overrides any message in progress.
	p.status, p.hasData1 = b, false
	return msg.Message{}, false
}

func (p *Parser) feedData(b byte) (msg.Message, bool) {
	switch MessageLen(p.status) {
	case 3:
		if !p.hasData1 {
			p.data1, p.hasData1 = b, true
			return msg.Message{}, false
		}
		// Drop back to the bare "status received" state, not Idle, so
		// that further data bytes start another message of the same kind
		// via running status.
		p.hasData1 = false
		return p.complete(p.data1, b), true
	case 2:
		// 2-byte messages complete on their single data byte and the
		// status stays active for running status.
		return p.complete(b, 0), true
	default:
		// Idle. A data byte without running status context is noise.
		return msg.Message{}, false
	}
}

func (p *Parser) complete(d1, d2 byte) msg.Message {
	kind, _ := kindOf(p.status)
	return decode(kind, p.status&0x0F, d1, d2)
}
