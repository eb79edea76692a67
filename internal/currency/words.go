package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "UM", "DOIS", "TRÊS", "QUATRO", "CINCO", "SEIS", "SETE", "OITO", "NOVE",
	"DEZ", "ONZE", "DOZE", "TREZE", "CATORZE", "QUINZE", "DEZESSEIS", "DEZESSETE", "DEZOITO", "DEZENOVE",
}

var tens = []string{
	"", "", "VINTE", "TRINTA", "QUARENTA", "CINQUENTA", "SESSENTA", "SETENTA", "OITENTA", "NOVENTA",
}

var hundreds = []string{
	"", "CENTO", "DUZENTOS", "TREZENTOS", "QUATROCENTOS", "QUINHENTOS", "SEISCENTOS", "SETECENTOS", "OITOCENTOS", "NOVECENTOS",
}

type scale struct {
	singular, plural string
}

// index i names the group 1000^i
var scales = []scale{
	{"", ""},
	{"MIL", "MIL"},
	{"MILHÃO", "MILHÕES"},
	{"BILHÃO", "BILHÕES"},
	{"TRILHÃO", "TRILHÕES"},
}

// InWords spells out amount in Brazilian Portuguese reais, e.g.
// 150000.20 → "CENTO E CINQUENTA MIL REAIS E VINTE CENTAVOS".
func InWords(amount decimal.Decimal) string {
	amount = amount.Round(2)
	prefix := ""
	if amount.IsNegative() {
		prefix = "MENOS "
		amount = amount.Abs()
	}

	reais := amount.IntPart()
	cents := amount.Sub(decimal.NewFromInt(reais)).Mul(decimal.NewFromInt(100)).IntPart()

	var parts []string
	switch {
	case reais == 1:
		parts = append(parts, "UM REAL")
	case reais > 1:
		words := Number(reais)
		if reais%1000000 == 0 {
			words += " DE"
		}
		parts = append(parts, words+" REAIS")
	}
	switch {
	case cents == 1:
		parts = append(parts, "UM CENTAVO")
	case cents > 1:
		parts = append(parts, Number(cents)+" CENTAVOS")
	}
	if len(parts) == 0 {
		return "ZERO REAIS"
	}
	return prefix + strings.Join(parts, " E ")
}

// Number spells out a non-negative integer
func Number(n int64) string {
	if n == 0 {
		return "ZERO"
	}
	if n < 0 {
		return "MENOS " + Number(-n)
	}

	var groups []int64
	for n > 0 {
		groups = append(groups, n%1000)
		n /= 1000
	}
	if len(groups) > len(scales) {
		return "NÚMERO MUITO GRANDE"
	}

	type group struct {
		value int64
		words string
	}
	var spelled []group
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		var w string
		switch {
		case i == 0:
			w = belowThousand(g)
		case i == 1 && g == 1:
			w = "MIL"
		case g == 1:
			w = "UM " + scales[i].singular
		default:
			w = belowThousand(g) + " " + scales[i].plural
		}
		spelled = append(spelled, group{value: g, words: w})
	}

	// groups after the first are joined by "e", or by a comma when the
	// group opens with a hundreds word other than CEM
	var b strings.Builder
	for i, g := range spelled {
		if i > 0 {
			if g.value > 100 {
				b.WriteString(", ")
			} else {
				b.WriteString(" E ")
			}
		}
		b.WriteString(g.words)
	}
	return b.String()
}

func belowThousand(n int64) string {
	if n == 100 {
		return "CEM"
	}
	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, hundreds[h])
	}
	if r := n % 100; r > 0 {
		if r < 20 {
			parts = append(parts, ones[r])
		} else {
			t := tens[r/10]
			if u := r % 10; u > 0 {
				t += " E " + ones[u]
			}
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " E ")
}
