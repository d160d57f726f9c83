package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestDump(t *testing.T) {
	input := []byte{
		0x92, 0x4A, 0x34, // note on
		0x67, 0x65, // running status note on
		0xF8,       // clock
		0xC1, 0x05, // program change
		0x7F, // trailing noise, no output
	}
	var out bytes.Buffer
	if err := dump(bytes.NewReader(input), &out, false); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"NoteOn ch=2 note=74 vel=52",
		"NoteOn ch=2 note=103 vel=101",
		"TimingClock",
		"ProgramChange ch=1 program=5",
	}
	got := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(got), len(want), out.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDumpHex(t *testing.T) {
	input := []byte{0xF6}
	var out bytes.Buffer
	if err := dump(bytes.NewReader(input), &out, true); err != nil {
		t.Fatal(err)
	}
	line := strings.TrimSpace(out.String())
	if !strings.HasPrefix(line, "TuneRequest") || !strings.HasSuffix(line, "f6") {
		t.Fatalf("unexpected output %q", line)
	}
}
