package report

import "fmt"

// NewBuilder returns an empty builder for t. An unknown type is a
// programming error and panics; user input goes through ParseType first.
func NewBuilder(t Type) *Builder {
	switch t {
	case PDF:
		return NewBuilderWith(NewPDFRenderer())
	case Excel:
		return NewBuilderWith(NewExcelRenderer())
	default:
		panic(fmt.Sprintf("report: no builder for %v", t))
	}
}
