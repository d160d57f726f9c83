// Command mididump decodes a raw MIDI byte stream from a file or stdin and
// prints one line per message. The input may use running status and may
// contain real-time interleaving; unparseable bytes are counted and skipped.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fjl/midiwire/wire"
)

func main() {
	var hex = flag.Bool("x", false, "print the wire bytes next to each message")
	flag.Parse()

	input := os.Stdin
	if flag.NArg() > 0 {
		fd, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer fd.Close()
		input = fd
	}
	if err := dump(input, os.Stdout, *hex); err != nil {
		log.Fatal(err)
	}
}

func dump(input io.Reader, output io.Writer, hex bool) error {
	var (
		r       = bufio.NewReader(input)
		parser  wire.Parser
		scratch []byte
	)
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		scratch = append(scratch, b)
		m, ok := parser.Feed(b)
		if !ok {
			continue
		}
		if hex {
			fmt.Fprintf(output, "%-40v %x\n", m, scratch)
		} else {
			fmt.Fprintln(output, m)
		}
		scratch = scratch[:0]
	}
}
