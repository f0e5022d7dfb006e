// Package chart renders the dashboard charts as PNG or SVG images.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"

	"github.com/kridavyuha/forecast-dashboard/internals/forecast"
	"github.com/kridavyuha/forecast-dashboard/internals/view"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var ErrUnsupportedFormat = errors.New("unsupported chart format")

const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

type Options struct {
	Format string
	Width  vg.Length
	Height vg.Length
}

func TrendOptions(format string) Options {
	return Options{Format: format, Width: 8 * vg.Inch, Height: 4 * vg.Inch}
}

func DistributionOptions(format string) Options {
	return Options{Format: format, Width: 5 * vg.Inch, Height: 3 * vg.Inch}
}

// ContentType returns the MIME type for a supported format.
func ContentType(format string) (string, error) {
	switch format {
	case FormatPNG:
		return "image/png", nil
	case FormatSVG:
		return "image/svg+xml", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

var (
	orange = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	teal   = color.RGBA{R: 0, G: 128, B: 128, A: 255}
)

func lineColor(t forecast.PlayerType) color.Color {
	if t == forecast.Bowler {
		return teal
	}
	return orange
}

// ColorBrewer Set2 and Set3.
var (
	set2 = []color.Color{
		rgb(0x66, 0xc2, 0xa5), rgb(0xfc, 0x8d, 0x62), rgb(0x8d, 0xa0, 0xcb), rgb(0xe7, 0x8a, 0xc3),
		rgb(0xa6, 0xd8, 0x54), rgb(0xff, 0xd9, 0x2f), rgb(0xe5, 0xc4, 0x94), rgb(0xb3, 0xb3, 0xb3),
	}
	set3 = []color.Color{
		rgb(0x8d, 0xd3, 0xc7), rgb(0xff, 0xff, 0xb3), rgb(0xbe, 0xba, 0xda), rgb(0xfb, 0x80, 0x72),
		rgb(0x80, 0xb1, 0xd3), rgb(0xfd, 0xb4, 0x62), rgb(0xb3, 0xde, 0x69), rgb(0xfc, 0xcd, 0xe5),
		rgb(0xd9, 0xd9, 0xd9), rgb(0xbc, 0x80, 0xbd), rgb(0xcc, 0xeb, 0xc5), rgb(0xff, 0xed, 0x6f),
	}
)

func rgb(r, g, b uint8) color.Color {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func palette(t forecast.PlayerType) []color.Color {
	if t == forecast.Bowler {
		return set3
	}
	return set2
}

// Trend plots the selected player's forecasts against their match labels.
func Trend(v view.PlayerView, opts Options) ([]byte, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s — Next Matches Forecast", v.Player)
	p.X.Label.Text = "Match Number"
	p.Y.Label.Text = v.Unit
	p.Add(plotter.NewGrid())

	if len(v.Entries) == 0 {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Min, p.Y.Max = 0, 1
		return encode(p, opts)
	}

	pts := make(plotter.XYs, len(v.Entries))
	labels := make([]string, len(v.Entries))
	for i, e := range v.Entries {
		pts[i].X = float64(i)
		pts[i].Y = e.Value
		labels[i] = e.Match
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("trend line: %w", err)
	}
	c := lineColor(v.Type)
	line.Color = c
	line.Width = vg.Points(1.5)
	points.Color = c
	points.Shape = draw.CircleGlyph{}
	points.Radius = vg.Points(3)

	p.Add(line, points)
	p.Legend.Add(v.ValueLabel, line, points)
	p.Legend.Top = true
	p.NominalX(labels...)

	return encode(p, opts)
}

// Distribution draws one bar per form status.
func Distribution(d view.Distribution, opts Options) ([]byte, error) {
	p := plot.New()
	p.Title.Text = d.Title
	p.Y.Label.Text = "Count"
	p.Add(plotter.NewGrid())

	if len(d.Counts) == 0 {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Min, p.Y.Max = 0, 1
		return encode(p, opts)
	}

	colors := palette(d.Type)
	labels := make([]string, len(d.Counts))
	for i, cc := range d.Counts {
		bar, err := plotter.NewBarChart(plotter.Values{float64(cc.Count)}, vg.Points(28))
		if err != nil {
			return nil, fmt.Errorf("distribution bar %q: %w", cc.Category, err)
		}
		bar.XMin = float64(i)
		bar.Color = colors[i%len(colors)]
		bar.LineStyle.Width = vg.Length(0)
		p.Add(bar)
		labels[i] = cc.Category
	}
	p.Y.Min = 0
	p.NominalX(labels...)

	return encode(p, opts)
}

func encode(p *plot.Plot, opts Options) ([]byte, error) {
	if _, err := ContentType(opts.Format); err != nil {
		return nil, err
	}
	wt, err := p.WriterTo(opts.Width, opts.Height, opts.Format)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", opts.Format, err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode %s: %w", opts.Format, err)
	}
	return buf.Bytes(), nil
}
