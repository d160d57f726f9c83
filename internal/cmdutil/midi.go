package cmdutil

import (
	"fmt"
	"log"
	"strings"

	"gitlab.com/gomidi/midi"
	driver "gitlab.com/gomidi/rtmididrv"
)

type Config struct {
	InDevice  string
	OutDevice string // empty means no output
}

type Conn struct {
	ByteCh  chan []byte   // receives raw incoming bytes, in arrival order
	CloseCh chan struct{} // closed by Close

	in  midi.In
	out midi.Out
}

// Open opens the MIDI connection. The input listener forwards every
// received byte chunk unfiltered; real-time and running-status traffic is
// left for the caller's parser to sort out.
func Open(cfg *Config) (*Conn, error) {
	in, out, err := findDevices(cfg)
	if err != nil {
		return nil, err
	}
	log.Println("midi input:", in)
	if out != nil {
		log.Println("midi output:", out)
	}
	if err := in.Open(); err != nil {
		return nil, fmt.Errorf("can't open MIDI input: %v", err)
	}
	if out != nil {
		if err := out.Open(); err != nil {
			in.Close()
			return nil, fmt.Errorf("can't open MIDI output: %v", err)
		}
	}

	var byteCh = make(chan []byte, 512)
	in.SetListener(func(data []byte, deltaT int64) {
		if len(data) == 0 {
			return
		}
		buf := make([]byte, len(data))
		copy(buf, data)
		select {
		case byteCh <- buf:
		default:
		}
	})

	c := &Conn{ByteCh: byteCh, CloseCh: make(chan struct{}), in: in, out: out}
	return c, nil
}

// HasOutput reports whether an output device is connected.
func (c *Conn) HasOutput() bool {
	return c.out != nil
}

// Write sends raw bytes to the output device. It implements io.Writer.
func (c *Conn) Write(p []byte) (int, error) {
	if c.out == nil {
		return 0, fmt.Errorf("no MIDI output configured")
	}
	return c.out.Write(p)
}

func (c *Conn) Close() {
	close(c.CloseCh)
	c.in.Close()
	if c.out != nil {
		c.out.Close()
	}
}

func findDevices(cfg *Config) (midi.In, midi.Out, error) {
	drv, err := driver.New()
	if err != nil {
		return nil, nil, err
	}
	inputs, err := drv.Ins()
	if err != nil {
		return nil, nil, fmt.Errorf("can't list MIDI inputs: %v", err)
	}
	if len(inputs) == 0 {
		return nil, nil, fmt.Errorf("no MIDI inputs")
	}

	// Find a matching input device.
	var selectedIn midi.In
	if cfg.InDevice == "" {
		selectedIn = inputs[0]
	} else {
		var inputNames []string
		for _, in := range inputs {
			name := in.String()
			inputNames = append(inputNames, name)
			if strings.Contains(strings.ToLower(name), strings.ToLower(cfg.InDevice)) {
				selectedIn = in
				break
			}
		}
		if selectedIn == nil {
			return nil, nil, fmt.Errorf("can't find MIDI input device %q, have %v", cfg.InDevice, inputNames)
		}
	}

	// Find the output device, if one was requested.
	if cfg.OutDevice == "" {
		return selectedIn, nil, nil
	}
	outputs, err := drv.Outs()
	if err != nil {
		return nil, nil, fmt.Errorf("can't list MIDI outputs: %v", err)
	}
	var selectedOut midi.Out
	var outputNames []string
	for _, out := range outputs {
		name := out.String()
		outputNames = append(outputNames, name)
		if strings.Contains(strings.ToLower(name), strings.ToLower(cfg.OutDevice)) {
			selectedOut = out
			break
		}
	}
	if selectedOut == nil {
		return nil, nil, fmt.Errorf("can't find MIDI output device %q, have %v", cfg.OutDevice, outputNames)
	}
	return selectedIn, selectedOut, nil
}
