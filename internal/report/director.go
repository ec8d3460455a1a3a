package report

import "time"

// Content is the input a Director feeds into a Builder
type Content struct {
	Title     string
	Headers   []string
	Rows      [][]any
	Author    string
	Subject   string
	CreatedBy string
	Generated time.Time
	Logo      []byte
}

// Charts holds the optional chart series of a report
type Charts struct {
	Categories     map[string]float64
	ProductUnits   map[string]float64
	ProductRevenue map[string]float64
}

// Director applies the standard configuration sequence to a builder:
// title, headers, rows, metadata, then build.
type Director struct{}

// Construct configures b with c and builds it
func (Director) Construct(b *Builder, c Content) *Generator {
	return b.SetTitle(c.Title).
		SetHeaders(c.Headers...).
		AddRows(c.Rows).
		SetMetadata(c.Author, c.Subject, c.Generated).
		SetCreatedBy(c.CreatedBy).
		SetLogo(c.Logo).
		Build()
}

// ConstructEmpty builds a headers-only report
func (d Director) ConstructEmpty(b *Builder, c Content) *Generator {
	c.Rows = nil
	return d.Construct(b, c)
}

// ConstructWithCharts is Construct plus the chart series
func (Director) ConstructWithCharts(b *Builder, c Content, ch Charts) *Generator {
	return b.SetTitle(c.Title).
		SetHeaders(c.Headers...).
		AddRows(c.Rows).
		SetMetadata(c.Author, c.Subject, c.Generated).
		SetCreatedBy(c.CreatedBy).
		SetLogo(c.Logo).
		SetChartData(ch.Categories).
		SetProductChartData(ch.ProductUnits).
		SetProductRevenueData(ch.ProductRevenue).
		Build()
}
