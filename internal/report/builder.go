package report

import (
	"time"
)

// Renderer turns report data into document bytes of one format
type Renderer interface {
	Type() Type
	Render(d Data) ([]byte, error)
}

// Builder accumulates report content. Every setter returns the builder so
// calls can be chained. A Builder is not safe for concurrent use.
type Builder struct {
	data     Data
	renderer Renderer
}

// NewBuilderWith returns a builder that renders through r
func NewBuilderWith(r Renderer) *Builder {
	return &Builder{renderer: r}
}

func (b *Builder) SetTitle(title string) *Builder {
	b.data.Title = title
	return b
}

func (b *Builder) SetHeaders(headers ...string) *Builder {
	b.data.Headers = append([]string(nil), headers...)
	return b
}

func (b *Builder) AddRow(cells ...any) *Builder {
	b.data.Rows = append(b.data.Rows, cells)
	return b
}

func (b *Builder) AddRows(rows [][]any) *Builder {
	b.data.Rows = append(b.data.Rows, rows...)
	return b
}

// SetMetadata sets the document author, subject and generation date
func (b *Builder) SetMetadata(author, subject string, generated time.Time) *Builder {
	b.data.Author = author
	b.data.Subject = subject
	b.data.GeneratedDate = generated
	return b
}

func (b *Builder) SetCreatedBy(name string) *Builder {
	b.data.CreatedBy = name
	return b
}

// SetChartData sets the series drawn as the main pie chart
func (b *Builder) SetChartData(series map[string]float64) *Builder {
	b.data.ChartData = series
	return b
}

// SetProductChartData sets the units-sold series
func (b *Builder) SetProductChartData(series map[string]float64) *Builder {
	b.data.ProductChartData = series
	return b
}

// SetProductRevenueData sets the revenue-per-product series
func (b *Builder) SetProductRevenueData(series map[string]float64) *Builder {
	b.data.ProductRevenueData = series
	return b
}

func (b *Builder) SetLogo(logo []byte) *Builder {
	b.data.Logo = logo
	return b
}

// Build snapshots the accumulated content into a Generator. Later builder
// calls do not change generators already built.
func (b *Builder) Build() *Generator {
	d := b.data.clone()
	if d.GeneratedDate.IsZero() {
		d.GeneratedDate = time.Now()
	}
	return &Generator{data: d, renderer: b.renderer}
}

// Generator renders one snapshot of report data
type Generator struct {
	data     Data
	renderer Renderer
}

// Data returns the snapshot the generator renders
func (g *Generator) Data() Data {
	return g.data
}

// Generate renders the report. fileName is used as is when it already ends
// with the format extension; an empty name gets a timestamped default.
// Either a complete document or an error wrapping ErrGeneration is returned.
func (g *Generator) Generate(fileName string) (*Result, error) {
	t := g.renderer.Type()
	if fileName == "" {
		fileName = FileName("reporte", t, g.data.GeneratedDate)
	}

	content, err := g.renderer.Render(g.data)
	if err != nil {
		return nil, err
	}

	return &Result{
		Content:  content,
		FileName: withExtension(fileName, t.Extension()),
		MimeType: t.MimeType(),
	}, nil
}
