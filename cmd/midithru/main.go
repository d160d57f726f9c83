// Command midithru monitors a MIDI input device and optionally forwards the
// decoded messages to an output device. Forwarding re-renders every message,
// so a noisy or running-status-compressed input comes out as a clean stream;
// with -compress the output uses running status itself.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/fjl/midiwire/internal/cmdutil"
	"github.com/fjl/midiwire/msg"
	"github.com/fjl/midiwire/wire"
)

func main() {
	var (
		inDevice  = flag.String("dev", "", "MIDI input device")
		outDevice = flag.String("odev", "", "MIDI output device (default: none, monitor only)")
		compress  = flag.Bool("compress", false, "use running status on the output")
		quiet     = flag.Bool("q", false, "don't print decoded messages")
	)
	flag.Parse()

	conn, err := cmdutil.Open(&cmdutil.Config{InDevice: *inDevice, OutDevice: *outDevice})
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	var out *wire.Writer
	if conn.HasOutput() {
		out = wire.NewWriter(conn, *compress)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	var parser wire.Parser
	for {
		select {
		case data := <-conn.ByteCh:
			for _, b := range data {
				m, ok := parser.Feed(b)
				if !ok {
					continue
				}
				handle(out, m, *quiet)
			}
		case <-interrupt:
			return
		}
	}
}

func handle(out *wire.Writer, m msg.Message, quiet bool) {
	if !quiet {
		log.Println(m)
	}
	if out != nil {
		if err := out.WriteMessage(m); err != nil {
			log.Fatal(err)
		}
	}
}
