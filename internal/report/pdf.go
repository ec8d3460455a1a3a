package report

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/go-pdf/fpdf"

	"github.com/kislikjeka/bookstore/pkg/money"
)

const (
	pdfMargin     = 15.0
	pdfLogoSize   = 25.0
	pdfRowHeight  = 7.0
	pdfChartSize  = 80.0
	pdfSwatchSize = 4.0
	pdfFont       = "Helvetica"
)

// PDFRenderer renders generic reports with fpdf
type PDFRenderer struct {
	compress bool
}

// PDFOption configures a PDFRenderer
type PDFOption func(*PDFRenderer)

// WithCompression toggles stream compression. Uncompressed output keeps
// page text searchable in the raw bytes.
func WithCompression(on bool) PDFOption {
	return func(r *PDFRenderer) {
		r.compress = on
	}
}

// NewPDFRenderer creates a PDF renderer with compression enabled
func NewPDFRenderer(opts ...PDFOption) *PDFRenderer {
	r := &PDFRenderer{compress: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *PDFRenderer) Type() Type {
	return PDF
}

func (r *PDFRenderer) Render(d Data) ([]byte, error) {
	doc := newPDFDoc(r.compress, d.Author, d.Subject, d.Title)

	if err := doc.header(d.Logo, d.Title, d.GeneratedDate.Format(TimestampLayout), d.CreatedBy); err != nil {
		return nil, err
	}
	doc.table(d.Headers, d.Rows)

	if len(d.ChartData) > 0 {
		if err := doc.chart("Distribución por categoría", Aggregate(d.ChartData, CategoryPalette)); err != nil {
			return nil, err
		}
	}
	if len(d.ProductChartData) > 0 {
		if err := doc.chart("Unidades vendidas por producto", Aggregate(d.ProductChartData, ProductPalette)); err != nil {
			return nil, err
		}
	}

	return doc.bytes()
}

// pdfDoc wraps an fpdf document with the shared page layout: header block,
// bordered tables and a page-number footer.
type pdfDoc struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	images int
}

func newPDFDoc(compress bool, author, subject, title string) *pdfDoc {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compress)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin+5)
	pdf.SetTitle(title, true)
	pdf.SetAuthor(author, true)
	pdf.SetSubject(subject, true)
	pdf.SetCreator("bookstore", true)
	pdf.AliasNbPages("")

	doc := &pdfDoc{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetFooterFunc(func() {
		pdf.SetY(-pdfMargin)
		pdf.SetFont(pdfFont, "I", 8)
		pdf.CellFormat(0, 10, doc.tr(fmt.Sprintf("Página %d de {nb}", pdf.PageNo())), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()
	return doc
}

// header draws the logo (or a blank box of the same size), the title and the
// generation lines.
func (doc *pdfDoc) header(logo []byte, title, generated, createdBy string) error {
	pdf := doc.pdf
	left, top, _, _ := pdf.GetMargins()

	if len(logo) > 0 {
		name, err := doc.registerImage(logo)
		if err != nil {
			return err
		}
		pdf.ImageOptions(name, left, top, pdfLogoSize, pdfLogoSize, false, fpdf.ImageOptions{}, 0, "")
	}

	textX := left + pdfLogoSize + 5
	pdf.SetXY(textX, top)
	pdf.SetFont(pdfFont, "B", 16)
	pdf.CellFormat(0, 9, doc.tr(title), "", 2, "L", false, 0, "")

	pdf.SetFont(pdfFont, "", 10)
	pdf.SetX(textX)
	pdf.CellFormat(0, 6, doc.tr("Fecha de generación: "+generated), "", 2, "L", false, 0, "")
	if createdBy != "" {
		pdf.SetX(textX)
		pdf.CellFormat(0, 6, doc.tr("Generado por: "+createdBy), "", 2, "L", false, 0, "")
	}

	pdf.SetY(top + pdfLogoSize + 6)
	return nil
}

// table draws a bordered table with a shaded bold header row. The header is
// repeated after every page break.
func (doc *pdfDoc) table(headers []string, rows [][]any) {
	if len(headers) == 0 {
		return
	}
	pdf := doc.pdf
	pageW, pageH := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	colW := (pageW - 2*pdfMargin) / float64(len(headers))

	drawHeader := func() {
		pdf.SetFont(pdfFont, "B", 9)
		pdf.SetFillColor(220, 224, 230)
		for _, h := range headers {
			pdf.CellFormat(colW, pdfRowHeight, doc.fit(h, colW), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(pdfFont, "", 9)
	}

	drawHeader()
	for _, row := range rows {
		if pdf.GetY()+pdfRowHeight > pageH-bottom {
			pdf.AddPage()
			drawHeader()
		}
		for i := range headers {
			var v any
			if i < len(row) {
				v = row[i]
			}
			align := "L"
			if numericCell(v) {
				align = "R"
			}
			pdf.CellFormat(colW, pdfRowHeight, doc.fit(FormatCell(v), colW), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// chart places a rasterized pie on the left and its legend on the right
func (doc *pdfDoc) chart(title string, slices []Slice) error {
	if len(slices) == 0 {
		return nil
	}
	png, err := RenderPie(slices)
	if err != nil {
		return err
	}

	pdf := doc.pdf
	_, pageH := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	if pdf.GetY()+pdfChartSize+20 > pageH-bottom {
		pdf.AddPage()
	}

	pdf.Ln(6)
	pdf.SetFont(pdfFont, "B", 12)
	pdf.CellFormat(0, 8, doc.tr(title), "", 1, "L", false, 0, "")

	name, err := doc.registerImage(png)
	if err != nil {
		return err
	}
	top := pdf.GetY()
	pdf.ImageOptions(name, pdfMargin, top, pdfChartSize, pdfChartSize, false, fpdf.ImageOptions{}, 0, "")

	legendX := pdfMargin + pdfChartSize + 8
	y := top + 4
	pdf.SetFont(pdfFont, "", 9)
	for _, s := range slices {
		pdf.SetFillColor(int(s.Color.R), int(s.Color.G), int(s.Color.B))
		pdf.Rect(legendX, y+1, pdfSwatchSize, pdfSwatchSize, "F")
		pdf.SetXY(legendX+pdfSwatchSize+2, y)
		line := fmt.Sprintf("%s: %s (%s%%)", s.Label, money.FormatFloat(s.Value), money.FormatFloat(s.Percent))
		pdf.CellFormat(0, 6, doc.tr(line), "", 0, "L", false, 0, "")
		y += 7
	}

	pdf.SetY(top + pdfChartSize + 4)
	return nil
}

// registerImage loads PNG or JPEG bytes under a fresh name
func (doc *pdfDoc) registerImage(b []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return "", wrapGeneration("image", err)
	}
	imgType := "PNG"
	if format == "jpeg" {
		imgType = "JPG"
	}

	doc.images++
	name := fmt.Sprintf("img%d", doc.images)
	doc.pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: imgType}, bytes.NewReader(b))
	if err := doc.pdf.Error(); err != nil {
		return "", wrapGeneration("image", err)
	}
	return name, nil
}

// fit translates s for the core fonts and truncates it to width w
func (doc *pdfDoc) fit(s string, w float64) string {
	t := doc.tr(s)
	limit := w - 2
	if doc.pdf.GetStringWidth(t) <= limit {
		return t
	}
	for len(t) > 0 && doc.pdf.GetStringWidth(t+"...") > limit {
		t = t[:len(t)-1]
	}
	return t + "..."
}

func (doc *pdfDoc) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.pdf.Output(&buf); err != nil {
		return nil, wrapGeneration("pdf output", err)
	}
	return buf.Bytes(), nil
}
