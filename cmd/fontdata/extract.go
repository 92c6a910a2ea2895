package main

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"log"
	"unicode"

	"github.com/golang/freetype/truetype"
	"github.com/tdewolff/font"
	"github.com/tdewolff/fontdata"
)

type Extract struct {
	Quiet  bool     `short:"q" desc:"Suppress output except for errors."`
	Force  bool     `short:"f" desc:"Force overwriting existing files."`
	Engine string   `short:"e" desc:"Font parser for TTF/OTF input, either sfnt (TrueType and CFF outlines) or freetype (TrueType only)." default:"sfnt"`
	Range  string   `short:"r" desc:"Unicode script or category to extract, see https://pkg.go.dev/unicode for all supported values." default:"Cyrillic"`
	Output string   `short:"o" desc:"Output file name, or - for standard output." default:"-"`
	Inputs []string `index:"*" desc:"Input TTF or AFM files. Later files take precedence."`
}

func (cmd *Extract) Run() error {
	if cmd.Quiet {
		Warning = log.New(ioutil.Discard, "", 0)
	}

	if len(cmd.Inputs) == 0 {
		return fmt.Errorf("input file names not set")
	} else if cmd.Engine != "sfnt" && cmd.Engine != "freetype" {
		return fmt.Errorf("unsupported font parser: %v", cmd.Engine)
	}
	filter, err := rangeTable(cmd.Range)
	if err != nil {
		return err
	}

	var table *fontdata.Table
	for _, input := range cmd.Inputs {
		t, err := extractTable(input, cmd.Engine, filter)
		if err != nil {
			Error.Printf("%v: %v", input, err)
			continue
		} else if t.Len() == 0 {
			Warning.Printf("%v: no glyphs in range %v", input, cmd.Range)
		}
		table = table.Merge(t)
	}
	if table == nil {
		return fmt.Errorf("no metrics extracted")
	}

	f, err := createFile(cmd.Output, cmd.Force)
	if err != nil {
		return err
	} else if f == nil {
		return nil
	}
	if err := fontdata.WriteLiteral(f, table); err != nil {
		f.Close()
		return err
	} else if err := f.Close(); err != nil {
		return err
	}

	if !cmd.Quiet && cmd.Output != "-" {
		fmt.Printf("%v:  %d glyphs\n", cmd.Output, table.Len())
	}
	return nil
}

func extractTable(filename, engine string, filter *unicode.RangeTable) (*fontdata.Table, error) {
	b, err := readFile(filename)
	if err != nil {
		return nil, err
	}

	if bytes.HasPrefix(b, []byte("StartFontMetrics")) {
		afm, err := fontdata.ParseAFM(b)
		if err != nil {
			return nil, err
		}
		return afm.Table(filter)
	}

	if engine == "freetype" {
		f, err := truetype.Parse(b)
		if err != nil {
			return nil, err
		}
		return fontdata.FromTrueType(f, filter)
	}

	// WOFF, WOFF2 and EOT are unpacked to SFNT first
	if !fontdata.IsSFNT(b) {
		if b, err = font.ToSFNT(b); err != nil {
			return nil, err
		}
	}
	sfnt, err := font.ParseSFNT(b, 0)
	if err != nil {
		return nil, err
	}
	return fontdata.FromSFNT(sfnt, filter)
}
