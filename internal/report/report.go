// Package report turns tabular domain data into downloadable PDF and Excel
// documents.
//
// Two pipelines live here. The generic one accumulates content in a Builder,
// lets a Director apply the usual configuration steps and renders through a
// format-specific Renderer. The product pipeline is a narrower, reusable
// ProductBuilder with header, body and footer sections.
package report

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Type selects the output format
type Type int

const (
	PDF Type = iota + 1
	Excel
)

// MIME types of the produced documents
const (
	MimePDF   = "application/pdf"
	MimeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// File name timestamp layout (yyyyMMdd_HHmmss)
const fileStampLayout = "20060102_150405"

// ErrGeneration wraps every rendering failure
var ErrGeneration = errors.New("report generation failed")

// ErrUnknownType is returned by ParseType for unsupported formats
var ErrUnknownType = errors.New("unknown report type")

func (t Type) String() string {
	switch t {
	case PDF:
		return "pdf"
	case Excel:
		return "excel"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Extension returns the file extension including the dot
func (t Type) Extension() string {
	switch t {
	case PDF:
		return ".pdf"
	case Excel:
		return ".xlsx"
	default:
		return ""
	}
}

// MimeType returns the content type of documents of this type
func (t Type) MimeType() string {
	switch t {
	case PDF:
		return MimePDF
	case Excel:
		return MimeExcel
	default:
		return "application/octet-stream"
	}
}

// ParseType reads a user supplied format name
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return PDF, nil
	case "excel", "xlsx":
		return Excel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

// Data is everything a generic report shows. Rows hold heterogeneous cells
// (text, numbers, decimals, dates) and keep the caller's order.
type Data struct {
	Title         string
	Headers       []string
	Rows          [][]any
	Author        string
	Subject       string
	GeneratedDate time.Time
	CreatedBy     string

	// Optional chart series keyed by label
	ChartData          map[string]float64
	ProductChartData   map[string]float64
	ProductRevenueData map[string]float64

	// Logo is a PNG or JPEG image shown in the PDF header
	Logo []byte
}

// clone returns a deep copy so a built generator is not affected by later
// builder mutations.
func (d Data) clone() Data {
	out := d
	out.Headers = append([]string(nil), d.Headers...)
	out.Rows = make([][]any, len(d.Rows))
	for i, r := range d.Rows {
		out.Rows[i] = append([]any(nil), r...)
	}
	out.ChartData = cloneSeries(d.ChartData)
	out.ProductChartData = cloneSeries(d.ProductChartData)
	out.ProductRevenueData = cloneSeries(d.ProductRevenueData)
	out.Logo = append([]byte(nil), d.Logo...)
	return out
}

func cloneSeries(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Result is a rendered document ready to be streamed
type Result struct {
	Content  []byte
	FileName string
	MimeType string
}

// FileName builds "<base>_yyyyMMdd_HHmmss<ext>"
func FileName(base string, t Type, at time.Time) string {
	return base + "_" + at.Format(fileStampLayout) + t.Extension()
}

// withExtension appends ext unless name already ends with it. The check is
// case-sensitive.
func withExtension(name, ext string) string {
	if strings.HasSuffix(name, ext) {
		return name
	}
	return name + ext
}

func wrapGeneration(stage string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrGeneration, stage, err)
}
