package render

import (
	"math"
	"strings"

	"stock-quotes/internal/domain"

	"github.com/shopspring/decimal"
)

// Style selects how each quote is printed.
type Style int

const (
	// PriceOnly renders "SYMBOL $PRICE".
	PriceOnly Style = iota
	// WithChange renders "SYMBOL $PRICE (CHANGE)", dropping the parenthesised
	// part for quotes that carried no change.
	WithChange
)

// number prints the shortest decimal that round-trips the float: 142.42
// stays 142.42 and 201.0 prints as 201. Negative zero keeps its sign.
func number(f float64) string {
	if f == 0 && math.Signbit(f) {
		return "-0"
	}
	return decimal.NewFromFloat(f).String()
}

func entry(q domain.Quote, style Style) string {
	var b strings.Builder
	b.WriteString(q.Symbol)
	b.WriteString(" $")
	b.WriteString(number(q.Price))
	if style == WithChange && q.HasChange() {
		b.WriteString(" (")
		b.WriteString(number(*q.Change))
		b.WriteString(")")
	}
	return b.String()
}

// Line joins the quotes into one space-separated line without a trailing
// newline or trailing whitespace.
func Line(quotes []domain.Quote, style Style) string {
	var b strings.Builder
	for _, q := range quotes {
		b.WriteString(entry(q, style))
		b.WriteString(" ")
	}
	return strings.TrimRight(b.String(), " \t")
}
