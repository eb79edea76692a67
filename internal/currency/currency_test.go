package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInWords(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"150000.20", "CENTO E CINQUENTA MIL REAIS E VINTE CENTAVOS"},
		{"0", "ZERO REAIS"},
		{"1", "UM REAL"},
		{"0.01", "UM CENTAVO"},
		{"0.50", "CINQUENTA CENTAVOS"},
		{"100", "CEM REAIS"},
		{"101", "CENTO E UM REAIS"},
		{"1100", "MIL E CEM REAIS"},
		{"1234", "MIL, DUZENTOS E TRINTA E QUATRO REAIS"},
		{"2021.01", "DOIS MIL E VINTE E UM REAIS E UM CENTAVO"},
		{"1000000", "UM MILHÃO DE REAIS"},
		{"1500000", "UM MILHÃO, QUINHENTOS MIL REAIS"},
		{"1050000", "UM MILHÃO E CINQUENTA MIL REAIS"},
		{"1234567", "UM MILHÃO, DUZENTOS E TRINTA E QUATRO MIL, QUINHENTOS E SESSENTA E SETE REAIS"},
		{"1000001", "UM MILHÃO E UM REAIS"},
		{"3100", "TRÊS MIL E CEM REAIS"},
		{"3105", "TRÊS MIL, CENTO E CINCO REAIS"},
		{"2000000", "DOIS MILHÕES DE REAIS"},
		{"215316.78", "DUZENTOS E QUINZE MIL, TREZENTOS E DEZESSEIS REAIS E SETENTA E OITO CENTAVOS"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, InWords(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestInWords_Negative(t *testing.T) {
	assert.Equal(t, "MENOS DEZ REAIS", InWords(decimal.NewFromInt(-10)))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "R$ 150.000,20", Format(decimal.RequireFromString("150000.2")))
	assert.Equal(t, "R$ 0,00", Format(decimal.Zero))
	assert.Equal(t, "R$ 999,99", Format(decimal.RequireFromString("999.99")))
	assert.Equal(t, "R$ 1.000.000,00", Format(decimal.NewFromInt(1000000)))
	assert.Equal(t, "-R$ 12,50", Format(decimal.RequireFromString("-12.5")))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "5,00%", Percent(decimal.NewFromInt(5)))
	assert.Equal(t, "2,75%", Percent(decimal.RequireFromString("2.75")))
}
