package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kislikjeka/bookstore/pkg/money"
)

// Display layouts for dates and timestamps
const (
	DateLayout      = "02/01/2006"
	TimestampLayout = "02/01/2006 15:04"
)

// FormatCell renders one table cell. Floats and decimals get two fixed
// decimals, dates use DateLayout (TimestampLayout when they carry a time of
// day) and nil renders empty.
func FormatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case decimal.Decimal:
		return money.Format(x)
	case *decimal.Decimal:
		if x == nil {
			return ""
		}
		return money.Format(*x)
	case float64:
		return money.FormatFloat(x)
	case float32:
		return money.FormatFloat(float64(x))
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case time.Time:
		return formatTime(x)
	case *time.Time:
		if x == nil {
			return ""
		}
		return formatTime(*x)
	case bool:
		if x {
			return "Sí"
		}
		return "No"
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func formatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format(DateLayout)
	}
	return t.Format(TimestampLayout)
}

// numericCell reports whether v is rendered right-aligned
func numericCell(v any) bool {
	switch v.(type) {
	case decimal.Decimal, *decimal.Decimal, float64, float32, int, int32, int64:
		return true
	}
	return false
}
