package main

import (
	"log"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/ternplot/ternary"
	"github.com/ternplot/ternary/render"
)

// Demo that renders a ternary plot frame (boundary, gridlines, axis
// ticks) to a PNG or SVG file.
var (
	scale     = kingpin.Flag("scale", "Simplex scale.").Default("10").Float64()
	multiple  = kingpin.Flag("multiple", "Gridline and tick spacing.").Default("1").Float64()
	axes      = kingpin.Flag("axes", "Sides to tick: any combination of l, r, b.").Default("lrb").String()
	clockwise = kingpin.Flag("clockwise", "Point ticks clockwise.").Bool()
	offset    = kingpin.Flag("offset", "Tick length as a fraction of the scale.").Default("0.02").Float64()
	noTicks   = kingpin.Flag("no-ticks", "Skip axis ticks.").Bool()
	width     = kingpin.Flag("width", "Output width in pixels (png only).").Default("800").Int()
	format    = kingpin.Flag("format", "Output format.").Default("png").Enum("png", "svg")
	out       = kingpin.Flag("out", "Output path.").Default("ternary.png").String()
	preview   = kingpin.Flag("preview", "Preview in the terminal (iTerm only).").Bool()
)

func main() {
	kingpin.Parse()

	switch *format {
	case "svg":
		svg := render.NewSVG(*scale)
		draw(svg)
		if err := svg.Save(*out); err != nil {
			log.Fatalf("Could not write %q: %v", *out, err)
		}
	case "png":
		img := render.NewImage(*width, *scale)
		draw(img)
		if err := img.SavePNG(*out); err != nil {
			log.Fatalf("Could not write %q: %v", *out, err)
		}
		if *preview {
			if err := img.Preview(); err != nil {
				log.Fatalf("Could not preview: %v", err)
			}
		}
	}
}

func draw(s ternary.Surface) {
	ternary.Gridlines(s, *scale, ternary.GridOptions{Multiple: *multiple})
	ternary.Boundary(s, *scale, ternary.Style{"linewidth": 2.0})
	if *noTicks {
		return
	}
	err := ternary.Ticks(s, *scale, ternary.TickOptions{
		Axes:      *axes,
		Multiple:  *multiple,
		Offset:    *offset,
		Clockwise: *clockwise,
	})
	if err != nil {
		log.Fatalf("Invalid ticks: %v", err)
	}
}
