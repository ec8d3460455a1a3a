package report

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Sheet names
const (
	SheetReport         = "Reporte"
	SheetChart          = "Gráfico"
	SheetProductChart   = "Gráfico Productos"
	SheetProductRevenue = "Ingresos Productos"
)

const (
	minColWidth = 10.0
	maxColWidth = 60.0
)

// ExcelRenderer renders generic reports with excelize
type ExcelRenderer struct{}

// NewExcelRenderer creates an Excel renderer
func NewExcelRenderer() *ExcelRenderer {
	return &ExcelRenderer{}
}

func (r *ExcelRenderer) Type() Type {
	return Excel
}

func (r *ExcelRenderer) Render(d Data) ([]byte, error) {
	wb, err := newWorkbook()
	if err != nil {
		return nil, err
	}
	defer wb.f.Close()

	if err := wb.f.SetDocProps(&excelize.DocProperties{
		Title:   d.Title,
		Subject: d.Subject,
		Creator: d.Author,
	}); err != nil {
		return nil, wrapGeneration("excel properties", err)
	}

	if _, err := wb.mainSheet(d); err != nil {
		return nil, err
	}
	if slices := Aggregate(d.ChartData, CategoryPalette); len(slices) > 0 {
		if err := wb.chartSheet(SheetChart, "Distribución por categoría", "Categoría", "Monto", slices); err != nil {
			return nil, err
		}
	}
	if slices := Aggregate(d.ProductChartData, ProductPalette); len(slices) > 0 {
		if err := wb.chartSheet(SheetProductChart, "Unidades vendidas por producto", "Producto", "Unidades", slices); err != nil {
			return nil, err
		}
	}
	if len(d.ProductRevenueData) > 0 {
		if err := wb.revenueSheet(d.ProductRevenueData); err != nil {
			return nil, err
		}
	}

	return wb.bytes()
}

// workbook is an excelize file with the styles shared by all sheets
type workbook struct {
	f *excelize.File

	title, label, header, text, integer, amount int
}

func newWorkbook() (*workbook, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetReport); err != nil {
		f.Close()
		return nil, wrapGeneration("excel sheet", err)
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	wb := &workbook{f: f}
	styles := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&wb.title, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 14},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		}},
		{&wb.label, &excelize.Style{Font: &excelize.Font{Bold: true}}},
		{&wb.header, &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"DCE0E6"}, Pattern: 1},
			Border:    border,
			Alignment: &excelize.Alignment{Horizontal: "center"},
		}},
		{&wb.text, &excelize.Style{Border: border}},
		{&wb.integer, &excelize.Style{Border: border, NumFmt: 1}},
		{&wb.amount, &excelize.Style{Border: border, NumFmt: 2}},
	}
	for _, s := range styles {
		id, err := f.NewStyle(s.style)
		if err != nil {
			f.Close()
			return nil, wrapGeneration("excel style", err)
		}
		*s.dst = id
	}
	return wb, nil
}

// mainSheet writes the title, metadata, header row and one row per data row.
// It returns the last row written.
func (wb *workbook) mainSheet(d Data) (int, error) {
	sheet := SheetReport
	cols := len(d.Headers)
	if cols == 0 {
		cols = 1
	}

	if err := wb.mergedTitle(sheet, d.Title, cols); err != nil {
		return 0, err
	}

	row := 2
	meta := [][2]string{{"Fecha de generación:", d.GeneratedDate.Format(TimestampLayout)}}
	if d.CreatedBy != "" {
		meta = append(meta, [2]string{"Generado por:", d.CreatedBy})
	}
	for _, m := range meta {
		if err := wb.set(sheet, 1, row, m[0], wb.label); err != nil {
			return 0, err
		}
		if err := wb.set(sheet, 2, row, m[1], 0); err != nil {
			return 0, err
		}
		row++
	}
	row++

	widths := make([]int, len(d.Headers))
	for i, h := range d.Headers {
		if err := wb.set(sheet, i+1, row, h, wb.header); err != nil {
			return 0, err
		}
		widths[i] = utf8.RuneCountInString(h)
	}

	for _, r := range d.Rows {
		row++
		for i := range d.Headers {
			var v any
			if i < len(r) {
				v = r[i]
			}
			if err := wb.setCell(sheet, i+1, row, v); err != nil {
				return 0, err
			}
			if n := utf8.RuneCountInString(FormatCell(v)); n > widths[i] {
				widths[i] = n
			}
		}
	}

	return row, wb.fitColumns(sheet, widths)
}

// setCell writes v keeping numbers numeric with the same two-decimal display
// used by the PDF tables.
func (wb *workbook) setCell(sheet string, col, row int, v any) error {
	switch x := v.(type) {
	case decimal.Decimal:
		return wb.set(sheet, col, row, x.InexactFloat64(), wb.amount)
	case float64, float32:
		return wb.set(sheet, col, row, x, wb.amount)
	case int, int32, int64:
		return wb.set(sheet, col, row, x, wb.integer)
	default:
		return wb.set(sheet, col, row, FormatCell(v), wb.text)
	}
}

// chartSheet adds a sheet with a colored cell legend and the pie image
func (wb *workbook) chartSheet(sheet, title, labelHeader, valueHeader string, slices []Slice) error {
	f := wb.f
	if _, err := f.NewSheet(sheet); err != nil {
		return wrapGeneration("excel sheet", err)
	}
	if err := wb.mergedTitle(sheet, title, 4); err != nil {
		return err
	}

	for i, h := range []string{"", labelHeader, valueHeader, "%"} {
		if err := wb.set(sheet, i+1, 3, h, wb.header); err != nil {
			return err
		}
	}

	widths := []int{3, utf8.RuneCountInString(labelHeader), utf8.RuneCountInString(valueHeader), 6}
	for i, s := range slices {
		row := 4 + i
		swatch, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{hexColor(s)}, Pattern: 1},
		})
		if err != nil {
			return wrapGeneration("excel style", err)
		}
		if err := wb.set(sheet, 1, row, "", swatch); err != nil {
			return err
		}
		if err := wb.set(sheet, 2, row, s.Label, wb.text); err != nil {
			return err
		}
		if err := wb.set(sheet, 3, row, s.Value, wb.amount); err != nil {
			return err
		}
		if err := wb.set(sheet, 4, row, s.Percent, wb.amount); err != nil {
			return err
		}
		if n := utf8.RuneCountInString(s.Label); n > widths[1] {
			widths[1] = n
		}
	}
	if err := wb.fitColumns(sheet, widths); err != nil {
		return err
	}

	png, err := RenderPie(slices)
	if err != nil {
		return err
	}
	if err := f.AddPictureFromBytes(sheet, "F3", &excelize.Picture{
		Extension: ".png",
		File:      png,
		Format:    &excelize.GraphicOptions{ScaleX: 0.75, ScaleY: 0.75},
	}); err != nil {
		return wrapGeneration("excel picture", err)
	}
	return nil
}

// revenueSheet tabulates revenue per product, largest first, with the share
// of the total and a totals row.
func (wb *workbook) revenueSheet(revenue map[string]float64) error {
	sheet := SheetProductRevenue
	if _, err := wb.f.NewSheet(sheet); err != nil {
		return wrapGeneration("excel sheet", err)
	}
	if err := wb.mergedTitle(sheet, "Ingresos por producto", 3); err != nil {
		return err
	}

	type entry struct {
		name  string
		value decimal.Decimal
	}
	entries := make([]entry, 0, len(revenue))
	total := decimal.Zero
	for name, v := range revenue {
		d := decimal.NewFromFloat(v)
		entries = append(entries, entry{name, d})
		total = total.Add(d)
	}
	sort.Slice(entries, func(i, j int) bool {
		if c := entries[i].value.Cmp(entries[j].value); c != 0 {
			return c > 0
		}
		return entries[i].name < entries[j].name
	})

	headers := []string{"Producto", "Ingresos", "% del total"}
	widths := make([]int, len(headers))
	for i, h := range headers {
		if err := wb.set(sheet, i+1, 3, h, wb.header); err != nil {
			return err
		}
		widths[i] = utf8.RuneCountInString(h)
	}

	row := 3
	for _, e := range entries {
		row++
		pct := decimal.Zero
		if !total.IsZero() {
			pct = e.value.Div(total).Mul(decimal.NewFromInt(100))
		}
		if err := wb.set(sheet, 1, row, e.name, wb.text); err != nil {
			return err
		}
		if err := wb.set(sheet, 2, row, e.value.InexactFloat64(), wb.amount); err != nil {
			return err
		}
		if err := wb.set(sheet, 3, row, pct.InexactFloat64(), wb.amount); err != nil {
			return err
		}
		if n := utf8.RuneCountInString(e.name); n > widths[0] {
			widths[0] = n
		}
	}

	row++
	totalPct := 0.0
	if !total.IsZero() {
		totalPct = 100
	}
	if err := wb.set(sheet, 1, row, "Total", wb.header); err != nil {
		return err
	}
	if err := wb.set(sheet, 2, row, total.InexactFloat64(), wb.amount); err != nil {
		return err
	}
	if err := wb.set(sheet, 3, row, totalPct, wb.amount); err != nil {
		return err
	}
	return wb.fitColumns(sheet, widths)
}

func (wb *workbook) mergedTitle(sheet, title string, cols int) error {
	last, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return wrapGeneration("excel title", err)
	}
	if cols > 1 {
		if err := wb.f.MergeCell(sheet, "A1", last); err != nil {
			return wrapGeneration("excel title", err)
		}
	}
	return wb.set(sheet, 1, 1, title, wb.title)
}

// set writes v at (col, row), applying style when it is non-zero
func (wb *workbook) set(sheet string, col, row int, v any, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return wrapGeneration("excel cell", err)
	}
	if err := wb.f.SetCellValue(sheet, cell, v); err != nil {
		return wrapGeneration("excel cell", err)
	}
	if style != 0 {
		if err := wb.f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return wrapGeneration("excel style", err)
		}
	}
	return nil
}

// fitColumns sizes each column to its longest rendered value
func (wb *workbook) fitColumns(sheet string, widths []int) error {
	for i, w := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return wrapGeneration("excel column", err)
		}
		width := float64(w) + 2
		if width < minColWidth {
			width = minColWidth
		}
		if width > maxColWidth {
			width = maxColWidth
		}
		if err := wb.f.SetColWidth(sheet, name, name, width); err != nil {
			return wrapGeneration("excel column", err)
		}
	}
	return nil
}

func (wb *workbook) bytes() ([]byte, error) {
	buf, err := wb.f.WriteToBuffer()
	if err != nil {
		return nil, wrapGeneration("excel output", err)
	}
	return buf.Bytes(), nil
}

func hexColor(s Slice) string {
	return fmt.Sprintf("%02X%02X%02X", s.Color.R, s.Color.G, s.Color.B)
}
