package main

import (
	"fmt"
)

type Info struct {
	Format string `short:"f" desc:"Only list this output format"`
}

func (cmd *Info) Run() error {
	reg, loader, err := builtinRegistry()
	if err != nil {
		return err
	}

	for _, format := range reg.Formats() {
		if cmd.Format != "" && format != cmd.Format {
			continue
		}
		fmt.Printf("%s:\n", format)
		for _, family := range reg.Families(format) {
			fmt.Printf("  %s:\n", family)
			for _, category := range reg.Categories(format, family) {
				table, _ := reg.Table(format, family, category)
				runes := table.Runes()
				xmin, ymin, xmax, ymax := table.Bounds()
				fmt.Printf("    %-12s  glyphs=%-4d", category, len(runes))
				if 0 < len(runes) {
					fmt.Printf("  range=%U-%U", runes[0], runes[len(runes)-1])
				}
				fmt.Printf("  bbox=[%d %d %d %d]\n", xmin, ymin, xmax, ymax)
			}
		}
	}

	fmt.Printf("\nLoaded resources:\n")
	for _, path := range loader.Completed() {
		fmt.Printf("  %s\n", path)
	}
	return nil
}
