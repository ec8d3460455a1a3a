package report

import (
	"bytes"
	"image/color"
	"math"
	"sort"

	"github.com/fogleman/gg"
)

// OthersLabel names the bucket that absorbs the smallest slices
const OthersLabel = "Otros"

const (
	// maxSlices is the largest series drawn without aggregation
	maxSlices = 8
	// keptSlices is how many of the largest entries survive aggregation
	keptSlices = 7

	chartSize = 400
)

// CategoryPalette colors the main chart; ProductPalette the units chart.
// Both cycle when a chart has more slices than colors.
var (
	CategoryPalette = []color.RGBA{
		{0x4E, 0x79, 0xA7, 0xFF},
		{0xF2, 0x8E, 0x2B, 0xFF},
		{0xE1, 0x57, 0x59, 0xFF},
		{0x76, 0xB7, 0xB2, 0xFF},
		{0x59, 0xA1, 0x4F, 0xFF},
		{0xED, 0xC9, 0x48, 0xFF},
		{0xB0, 0x7A, 0xA1, 0xFF},
		{0x9C, 0x75, 0x5F, 0xFF},
	}
	ProductPalette = []color.RGBA{
		{0x1B, 0x9E, 0x77, 0xFF},
		{0xD9, 0x5F, 0x02, 0xFF},
		{0x75, 0x70, 0xB3, 0xFF},
		{0xE7, 0x29, 0x8A, 0xFF},
		{0x66, 0xA6, 0x1E, 0xFF},
		{0xE6, 0xAB, 0x02, 0xFF},
	}
)

// Slice is one wedge of a pie chart
type Slice struct {
	Label   string
	Value   float64
	Percent float64
	Color   color.RGBA
}

// Aggregate orders a series by value, largest first, and caps it for
// charting: with more than eight entries the seven largest are kept and the
// rest are summed into a single "Otros" slice, absorbing any input entry
// already labeled "Otros". Percentages are computed against the total after
// aggregation. Non-positive values are dropped.
func Aggregate(series map[string]float64, palette []color.RGBA) []Slice {
	slices := make([]Slice, 0, len(series))
	for label, v := range series {
		if v > 0 {
			slices = append(slices, Slice{Label: label, Value: v})
		}
	}
	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Value != slices[j].Value {
			return slices[i].Value > slices[j].Value
		}
		return slices[i].Label < slices[j].Label
	})

	if len(slices) > maxSlices {
		// a real "Otros" entry is folded into the synthesized bucket
		kept := make([]Slice, 0, keptSlices+1)
		others := 0.0
		for _, s := range slices {
			if len(kept) < keptSlices && s.Label != OthersLabel {
				kept = append(kept, s)
				continue
			}
			others += s.Value
		}
		slices = append(kept, Slice{Label: OthersLabel, Value: others})
	}

	total := 0.0
	for _, s := range slices {
		total += s.Value
	}
	for i := range slices {
		if total > 0 {
			slices[i].Percent = slices[i].Value / total * 100
		}
		slices[i].Color = colorAt(palette, i)
	}
	return slices
}

func colorAt(palette []color.RGBA, i int) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{0x80, 0x80, 0x80, 0xFF}
	}
	return palette[i%len(palette)]
}

// RenderPie rasterizes slices as a PNG pie starting at twelve o'clock and
// running clockwise, with white strokes between wedges.
func RenderPie(slices []Slice) ([]byte, error) {
	dc := gg.NewContext(chartSize, chartSize)
	dc.SetColor(color.White)
	dc.Clear()

	c := float64(chartSize) / 2
	r := c - 6

	total := 0.0
	for _, s := range slices {
		total += s.Value
	}

	start := -math.Pi / 2
	for _, s := range slices {
		if total <= 0 {
			break
		}
		end := start + 2*math.Pi*s.Value/total

		dc.NewSubPath()
		dc.MoveTo(c, c)
		dc.DrawArc(c, c, r, start, end)
		dc.ClosePath()
		dc.SetColor(s.Color)
		dc.FillPreserve()
		dc.SetColor(color.White)
		dc.SetLineWidth(2)
		dc.Stroke()

		start = end
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, wrapGeneration("pie chart", err)
	}
	return buf.Bytes(), nil
}
