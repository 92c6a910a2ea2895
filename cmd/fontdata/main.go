package main

import (
	"log"
	"os"

	"github.com/tdewolff/argp"
)

var (
	Error   *log.Logger
	Warning *log.Logger
)

func main() {
	Error = log.New(os.Stderr, "ERROR: ", 0)
	Warning = log.New(os.Stderr, "WARNING: ", 0)

	cmd := argp.New("Command line toolkit for glyph metric tables - Taco de Wolff")
	cmd.AddCmd(&Info{}, "info", "List registered metric tables")
	cmd.AddCmd(&Lookup{}, "lookup", "Look up the metrics of a character")
	cmd.AddCmd(&Dump{}, "dump", "Write a metric table as literal, binary or compressed binary")
	cmd.AddCmd(&Extract{}, "extract", "Extract a metric table from a TTF or AFM file")
	cmd.AddCmd(&Draw{}, "draw", "Draw the ink boxes and advances of a metric table")
	cmd.Parse()
}
