package main

import (
	"fmt"
	"io/ioutil"
	"log"

	"github.com/tdewolff/fontdata"
)

type Dump struct {
	Quiet    bool   `short:"q" desc:"Suppress output except for errors."`
	Force    bool   `short:"f" desc:"Force overwriting existing files."`
	Binary   bool   `short:"b" desc:"Write the binary encoding instead of a literal."`
	Brotli   bool   `short:"z" desc:"Write the brotli compressed binary encoding."`
	Format   string `desc:"Output format" default:"HTML-CSS"`
	Family   string `desc:"Font family" default:"STIXGeneral"`
	Category string `desc:"Category" default:"Cyrillic"`
	Output   string `short:"o" desc:"Output file name, or - for standard output." default:"-"`
}

func (cmd *Dump) Run() error {
	if cmd.Quiet {
		Warning = log.New(ioutil.Discard, "", 0)
	}

	table, err := registeredTable(cmd.Format, cmd.Family, cmd.Category)
	if err != nil {
		return err
	} else if table.Len() == 0 {
		Warning.Printf("metric table %s/%s/%s is empty", cmd.Format, cmd.Family, cmd.Category)
	}

	f, err := createFile(cmd.Output, cmd.Force)
	if err != nil {
		return err
	} else if f == nil {
		return nil
	}
	w := &countingWriter{Writer: f}

	if cmd.Brotli {
		err = fontdata.WriteCompressed(w, table)
	} else if cmd.Binary {
		var b []byte
		if b, err = table.MarshalBinary(); err == nil {
			_, err = w.Write(b)
		}
	} else {
		err = fontdata.WriteLiteral(w, table)
	}
	if err != nil {
		f.Close()
		return err
	} else if err := f.Close(); err != nil {
		return err
	}

	if !cmd.Quiet && cmd.Output != "-" {
		fmt.Printf("%v:  %d glyphs => %v\n", cmd.Output, table.Len(), formatBytes(uint64(w.n)))
	}
	return nil
}
