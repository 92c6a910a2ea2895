package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tdewolff/fontdata"
	"github.com/tdewolff/prompt"
)

func printableRune(r rune) string {
	if unicode.IsGraphic(r) {
		return fmt.Sprintf("%c", r)
	} else if r < 128 {
		return fmt.Sprintf("0x%02X", r)
	}
	return fmt.Sprintf("%U", r)
}

func formatBytes(size uint64) string {
	if size < 10 {
		return fmt.Sprintf("%d B", size)
	}

	units := []string{"B", "kB", "MB", "GB", "TB", "PB", "EB"}
	scale := int(math.Floor((math.Log10(float64(size)) + math.Log10(2.0)) / 3.0))
	value := float64(size) / math.Pow10(scale*3.0)
	format := "%.0f %s"
	if value < 10.0 {
		format = "%.1f %s"
	}
	return fmt.Sprintf(format, value, units[scale])
}

// builtinRegistry returns a registry with all built-in tables loaded.
func builtinRegistry() (*fontdata.Registry, *fontdata.Loader, error) {
	reg := fontdata.NewRegistry()
	loader := fontdata.NewLoader()
	if err := fontdata.LoadSTIX(reg, loader); err != nil {
		return nil, nil, err
	}
	return reg, loader, nil
}

func registeredTable(format, family, category string) (*fontdata.Table, error) {
	reg, _, err := builtinRegistry()
	if err != nil {
		return nil, err
	}
	table, ok := reg.Table(format, family, category)
	if !ok {
		return nil, fmt.Errorf("no metric table for %s/%s/%s", format, family, category)
	}
	return table, nil
}

// parseRune parses either a literal character or a hexadecimal code point such as 430, U+0430 or 0x430.
func parseRune(char, hex string) (rune, error) {
	if char != "" {
		r, n := utf8.DecodeRuneInString(char)
		if r == utf8.RuneError || n != len(char) {
			return 0, fmt.Errorf("expected a single character: %q", char)
		}
		return r, nil
	} else if hex == "" {
		return 0, fmt.Errorf("character or unicode not set")
	}

	hex = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(hex), "u+"), "0x")
	v, err := strconv.ParseUint(hex, 16, 31)
	if err != nil {
		return 0, fmt.Errorf("invalid unicode: %v", err)
	}
	return rune(v), nil
}

// rangeTable returns the unicode script or category of the given name, see https://pkg.go.dev/unicode.
func rangeTable(name string) (*unicode.RangeTable, error) {
	if table, ok := unicode.Scripts[name]; ok {
		return table, nil
	} else if table, ok := unicode.Categories[name]; ok {
		return table, nil
	}
	return nil, fmt.Errorf("unknown unicode script or category: %v", name)
}

func readFile(filename string) ([]byte, error) {
	var err error
	var r *os.File
	if filename == "-" {
		r = os.Stdin
	} else if r, err = os.Open(filename); err != nil {
		return nil, err
	}
	b, err := ioutil.ReadAll(r)
	if err != nil {
		r.Close()
		return nil, err
	} else if err := r.Close(); err != nil {
		return nil, err
	}
	return b, nil
}

// createFile opens the output file, asking before an existing file is overwritten unless force is set. A nil writer means the user declined.
func createFile(filename string, force bool) (io.WriteCloser, error) {
	if filename == "-" || filename == "" {
		return os.Stdout, nil
	}
	if _, err := os.Stat(filename); err == nil {
		if !force && !prompt.YesNo(fmt.Sprintf("%s already exists, overwrite?", filename), false) {
			return nil, nil
		}
	}
	return os.Create(filename)
}

// countingWriter counts the bytes written through it.
type countingWriter struct {
	io.Writer
	n int
}

func (w *countingWriter) Write(b []byte) (int, error) {
	n, err := w.Writer.Write(b)
	w.n += n
	return n, err
}
