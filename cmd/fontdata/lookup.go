package main

import (
	"fmt"

	"github.com/tdewolff/fontdata"
)

type Lookup struct {
	Char     string `short:"c" desc:"Unicode character"`
	Unicode  string `short:"u" desc:"Unicode code point in hexadecimal, eg. 430 or U+0430"`
	Format   string `desc:"Output format" default:"HTML-CSS"`
	Family   string `desc:"Font family" default:"STIXGeneral"`
	Category string `desc:"Category, or empty to search all categories of the family"`
}

func (cmd *Lookup) Run() error {
	r, err := parseRune(cmd.Char, cmd.Unicode)
	if err != nil {
		return err
	}

	reg, _, err := builtinRegistry()
	if err != nil {
		return err
	} else if !reg.HasFamily(cmd.Format, cmd.Family) {
		return fmt.Errorf("%w: %s/%s", fontdata.ErrUnknownFamily, cmd.Format, cmd.Family)
	}

	var m fontdata.Metrics
	var ok bool
	category := cmd.Category
	if category == "" {
		m, category, ok = reg.LookupFamily(cmd.Format, cmd.Family, r)
	} else {
		m, ok = reg.Lookup(cmd.Format, cmd.Family, category, r)
	}
	if !ok {
		return fmt.Errorf("%U (%s): not found", r, printableRune(r))
	}
	fmt.Printf("%U (%s) %v  // %s\n", r, printableRune(r), m, category)
	fmt.Printf("  height=%d depth=%d width=%d left=%d right=%d\n", m.Height, m.Depth, m.Width, m.Left, m.Right)
	return nil
}
