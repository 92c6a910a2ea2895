package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/fontdata"
	"github.com/tdewolff/prompt"
)

var (
	advanceColor  = color.RGBA{0xE0, 0xE0, 0xE0, 0xFF}
	inkColor      = color.RGBA{0xC0, 0x30, 0x30, 0xFF}
	baselineColor = color.RGBA{0x30, 0x60, 0xC0, 0xFF}
	transparent   = color.RGBA{}
)

type Draw struct {
	Force    bool    `short:"f" desc:"Force overwriting existing files."`
	Columns  int     `short:"n" desc:"Number of glyphs per row." default:"16"`
	Size     float64 `short:"s" desc:"Size of one em in millimeters." default:"10"`
	Format   string  `desc:"Output format" default:"HTML-CSS"`
	Family   string  `desc:"Font family" default:"STIXGeneral"`
	Category string  `desc:"Category" default:"Cyrillic"`
	Output   string  `short:"o" desc:"Output image file, eg. out.svg, out.png or out.pdf."`
}

func (cmd *Draw) Run() error {
	if cmd.Output == "" {
		return fmt.Errorf("output file name not set")
	} else if cmd.Columns <= 0 {
		return fmt.Errorf("number of columns must be positive")
	}

	table, err := registeredTable(cmd.Format, cmd.Family, cmd.Category)
	if err != nil {
		return err
	} else if table.Len() == 0 {
		return fmt.Errorf("metric table %s/%s/%s is empty", cmd.Format, cmd.Family, cmd.Category)
	}

	if _, err := os.Stat(cmd.Output); err == nil {
		if !cmd.Force && !prompt.YesNo(fmt.Sprintf("%s already exists, overwrite?", cmd.Output), false) {
			return nil
		}
	}

	// every cell spans the union of all glyph boxes plus a margin
	xmin, ymin, xmax, ymax := table.Bounds()
	xmin = min(xmin, 0)
	table.Each(func(_ rune, m fontdata.Metrics) bool {
		xmax = max(xmax, m.Width)
		return true
	})
	scale := cmd.Size / fontdata.UnitsPerEm
	margin := 0.1 * cmd.Size
	cellWidth := float64(xmax-xmin)*scale + margin
	cellHeight := float64(ymax-ymin)*scale + margin

	rows := (table.Len() + cmd.Columns - 1) / cmd.Columns
	width := float64(cmd.Columns)*cellWidth + margin
	height := float64(rows)*cellHeight + margin

	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetStrokeWidth(0.01 * cmd.Size)

	i := 0
	table.Each(func(r rune, m fontdata.Metrics) bool {
		col, row := i%cmd.Columns, i/cmd.Columns
		i++

		// origin of the glyph on the baseline, canvas has y pointing upwards
		x := margin + float64(col)*cellWidth - float64(xmin)*scale
		y := height - margin - float64(row)*cellHeight - float64(ymax)*scale

		ctx.SetFillColor(advanceColor)
		ctx.SetStrokeColor(transparent)
		ctx.DrawPath(x, y-float64(m.Depth)*scale, canvas.Rectangle(float64(m.Width)*scale, float64(m.Height+m.Depth)*scale))

		ctx.SetFillColor(transparent)
		ctx.SetStrokeColor(inkColor)
		ctx.DrawPath(x+float64(m.Left)*scale, y-float64(m.Depth)*scale, canvas.Rectangle(float64(m.Right-m.Left)*scale, float64(m.Height+m.Depth)*scale))

		ctx.SetStrokeColor(baselineColor)
		ctx.MoveTo(x, y)
		ctx.LineTo(x+float64(m.Width)*scale, y)
		ctx.Stroke()
		return true
	})
	return renderers.Write(cmd.Output, c)
}
