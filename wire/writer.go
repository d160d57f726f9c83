package wire

import (
	"io"

	"github.com/fjl/midiwire/msg"
)

// Writer renders messages to an output stream. Every message goes out in a
// single Write call on the output, never split across calls, so downstream
// transports that need whole-message framing (e.g. USB-MIDI packets) can
// rely on the call boundaries.
//
// With compression enabled the Writer applies running status: when a
// channel voice message repeats the status byte of the previous one, only
// its data bytes are sent. System common messages reset running status and
// are always sent in full; real-time messages pass through without
// affecting it.
//
// A Writer must not be used from multiple goroutines concurrently.
type Writer struct {
	out      io.Writer
	compress bool
	status   byte // voice status byte of the last message sent, 0 when none applies
	buf      [3]byte
}

// NewWriter returns a Writer sending messages to out. The compress setting
// enables running-status compression and is fixed for the lifetime of the
// Writer.
func NewWriter(out io.Writer, compress bool) *Writer {
	return &Writer{out: out, compress: compress}
}

// WriteMessage renders m and writes it to the output. Errors from the
// output are returned unchanged. After a failed write the next voice
// message is sent with an explicit status byte, since the output may not
// have transmitted the bytes that established running status.
func (w *Writer) WriteMessage(m msg.Message) error {
	n, err := Render(m, w.buf[:])
	if err != nil {
		return err
	}
	switch {
	case m.Kind.IsRealtime():
		// Transparent to running status, leave the cached status alone.
		_, err = w.out.Write(w.buf[:n])
		return err
	case m.Kind.IsVoice():
		if w.compress && w.status == w.buf[0] {
			if _, err = w.out.Write(w.buf[1:n]); err != nil {
				w.status = 0
			}
			return err
		}
		_, err = w.out.Write(w.buf[:n])
		if w.compress && err == nil {
			w.status = w.buf[0]
		} else {
			w.status = 0
		}
		return err
	default:
		// System common messages cancel running status.
		w.status = 0
		_, err = w.out.Write(w.buf[:n])
		return err
	}
}

// ResetRunningStatus drops the cached status byte, forcing the next voice
// message to carry an explicit status byte. Senders call this after a
// transport interruption or a long idle gap.
func (w *Writer) ResetRunningStatus() {
	w.status = 0
}
