package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ProductRow is one line of the product catalog report
type ProductRow struct {
	Name        string
	Category    string
	Price       decimal.Decimal
	Stock       int
	Description string
}

// ProductHeaders are the catalog table columns
var ProductHeaders = []string{"Producto", "Categoría", "Precio", "Stock", "Descripción"}

func (r ProductRow) cells() []any {
	return []any{r.Name, r.Category, r.Price, r.Stock, r.Description}
}

// ProductBuilder renders the product catalog. Sections may be set in any
// order and the last write wins. Reset returns the builder to its defaults
// so one instance can produce several reports in sequence.
type ProductBuilder interface {
	Reset()
	SetHeader(title, generatedBy string, generatedAt time.Time, logo []byte)
	SetBody(rows []ProductRow)
	SetFooter(text string)
	// Build renders the document. The format extension is appended to
	// suggestedFileName unless it already ends with it.
	Build(suggestedFileName string) (*Result, error)
}

// productSections is the state shared by the product builders
type productSections struct {
	title       string
	generatedBy string
	generatedAt time.Time
	logo        []byte
	rows        []ProductRow
	footer      string
}

func (s *productSections) Reset() {
	*s = productSections{title: "Reporte de productos"}
}

func (s *productSections) SetHeader(title, generatedBy string, generatedAt time.Time, logo []byte) {
	s.title = title
	s.generatedBy = generatedBy
	s.generatedAt = generatedAt
	s.logo = logo
}

func (s *productSections) SetBody(rows []ProductRow) {
	s.rows = append([]ProductRow(nil), rows...)
}

func (s *productSections) SetFooter(text string) {
	s.footer = text
}

func (s *productSections) stamp() time.Time {
	if s.generatedAt.IsZero() {
		return time.Now()
	}
	return s.generatedAt
}

func (s *productSections) tableRows() [][]any {
	rows := make([][]any, len(s.rows))
	for i, r := range s.rows {
		rows[i] = r.cells()
	}
	return rows
}

func (s *productSections) result(t Type, suggested string, content []byte) *Result {
	name := suggested
	if name == "" {
		name = FileName("productos", t, s.stamp())
	}
	return &Result{
		Content:  content,
		FileName: withExtension(name, t.Extension()),
		MimeType: t.MimeType(),
	}
}

// PDFProductBuilder renders the catalog as a PDF
type PDFProductBuilder struct {
	productSections
	compress bool
}

// NewPDFProductBuilder creates a reset PDF product builder
func NewPDFProductBuilder(opts ...PDFOption) *PDFProductBuilder {
	r := NewPDFRenderer(opts...)
	b := &PDFProductBuilder{compress: r.compress}
	b.Reset()
	return b
}

func (b *PDFProductBuilder) Build(suggestedFileName string) (*Result, error) {
	doc := newPDFDoc(b.compress, b.generatedBy, b.title, b.title)
	if err := doc.header(b.logo, b.title, b.stamp().Format(TimestampLayout), b.generatedBy); err != nil {
		return nil, err
	}
	doc.table(ProductHeaders, b.tableRows())

	if b.footer != "" {
		doc.pdf.Ln(4)
		doc.pdf.SetFont(pdfFont, "I", 9)
		doc.pdf.MultiCell(0, 5, doc.tr(b.footer), "", "L", false)
	}

	content, err := doc.bytes()
	if err != nil {
		return nil, err
	}
	return b.result(PDF, suggestedFileName, content), nil
}

// ExcelProductBuilder renders the catalog as a workbook
type ExcelProductBuilder struct {
	productSections
}

// NewExcelProductBuilder creates a reset Excel product builder
func NewExcelProductBuilder() *ExcelProductBuilder {
	b := &ExcelProductBuilder{}
	b.Reset()
	return b
}

func (b *ExcelProductBuilder) Build(suggestedFileName string) (*Result, error) {
	wb, err := newWorkbook()
	if err != nil {
		return nil, err
	}
	defer wb.f.Close()

	last, err := wb.mainSheet(Data{
		Title:         b.title,
		Headers:       ProductHeaders,
		Rows:          b.tableRows(),
		GeneratedDate: b.stamp(),
		CreatedBy:     b.generatedBy,
	})
	if err != nil {
		return nil, err
	}
	if b.footer != "" {
		if err := wb.set(SheetReport, 1, last+2, b.footer, wb.label); err != nil {
			return nil, err
		}
	}

	content, err := wb.bytes()
	if err != nil {
		return nil, err
	}
	return b.result(Excel, suggestedFileName, content), nil
}

// NewProductBuilder returns a product builder for t and panics on an
// unknown type.
func NewProductBuilder(t Type) ProductBuilder {
	switch t {
	case PDF:
		return NewPDFProductBuilder()
	case Excel:
		return NewExcelProductBuilder()
	default:
		panic(fmt.Sprintf("report: no product builder for %v", t))
	}
}

// ProductDirector drives a ProductBuilder through the catalog sections
type ProductDirector struct {
	builder ProductBuilder
}

// NewProductDirector creates a director over b
func NewProductDirector(b ProductBuilder) *ProductDirector {
	return &ProductDirector{builder: b}
}

// CatalogRequest is the content of a catalog report
type CatalogRequest struct {
	Title       string
	GeneratedBy string
	GeneratedAt time.Time
	Logo        []byte
	Rows        []ProductRow
	FileName    string
}

// Catalog resets the builder, fills every section and builds the document.
// The footer summarizes product count, units on hand and stock value.
func (d *ProductDirector) Catalog(req CatalogRequest) (*Result, error) {
	d.builder.Reset()
	d.builder.SetHeader(req.Title, req.GeneratedBy, req.GeneratedAt, req.Logo)
	d.builder.SetBody(req.Rows)

	units := 0
	value := decimal.Zero
	for _, r := range req.Rows {
		units += r.Stock
		value = value.Add(r.Price.Mul(decimal.NewFromInt(int64(r.Stock))))
	}
	d.builder.SetFooter(fmt.Sprintf("Total de productos: %d | Unidades en stock: %d | Valor del inventario: %s",
		len(req.Rows), units, value.StringFixed(2)))

	return d.builder.Build(req.FileName)
}
