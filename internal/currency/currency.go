// Package currency formats Brazilian real amounts for documents and exports.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders amount as "R$ 150.000,20"
func Format(amount decimal.Decimal) string {
	s := amount.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteString("-")
	}
	b.WriteString("R$ ")
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}

// Percent renders a percentage as "5,00%"
func Percent(p decimal.Decimal) string {
	return strings.Replace(p.StringFixed(2), ".", ",", 1) + "%"
}
