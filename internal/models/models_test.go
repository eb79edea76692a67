package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decimalOf(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestValidCPF(t *testing.T) {
	tests := []struct {
		cpf  string
		want bool
	}{
		{"529.982.247-25", true},
		{"52998224725", true},
		{"529.982.247-26", false},
		{"111.111.111-11", false},
		{"1234", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidCPF(tt.cpf), tt.cpf)
	}
}

func TestValidCNPJ(t *testing.T) {
	assert.True(t, ValidCNPJ("11.222.333/0001-81"))
	assert.True(t, ValidCNPJ("11222333000181"))
	assert.False(t, ValidCNPJ("11.222.333/0001-82"))
	assert.False(t, ValidCNPJ("00.000.000/0000-00"))
}

func TestFormatIdentity(t *testing.T) {
	assert.Equal(t, "529.982.247-25", FormatCPF("52998224725"))
	assert.Equal(t, "11.222.333/0001-81", FormatCNPJ("11222333000181"))
	assert.Equal(t, "123", FormatCPF("123"))
}

func TestUnitEffectivePrice(t *testing.T) {
	typed := &UnitType{Price: decimalOf("250000")}
	override := decimalOf("260000")

	assert.True(t, (&Unit{UnitType: typed}).EffectivePrice().Equal(decimalOf("250000")))
	assert.True(t, (&Unit{UnitType: typed, OverridePrice: &override}).EffectivePrice().Equal(override))
	assert.True(t, (&Unit{}).EffectivePrice().IsZero())
}

func TestUnitTypeSummary(t *testing.T) {
	ut := &UnitType{Bedrooms: 2, Bathrooms: 1, ParkingSpaces: 1, UsableArea: decimalOf("45.5")}
	assert.Equal(t, "2 quartos | 1 banheiro | 1 vaga | 45.50m²", ut.Summary())
	assert.Equal(t, "Sem características definidas", (&UnitType{}).Summary())
}

func TestAddressFull(t *testing.T) {
	a := Address{Street: "Rua das Flores", Number: "100", Complement: "Sala 2", District: "Centro", City: "Campinas", State: "SP"}
	assert.Equal(t, "Rua das Flores, nº 100 Sala 2, Centro - Campinas/SP", a.Full())
	assert.Equal(t, "", Address{}.Full())
}

func TestDevelopmentApplyAvailableUnits(t *testing.T) {
	d := &Development{TotalUnits: 10}
	d.ApplyAvailableUnits(3)
	assert.Equal(t, 7, d.AvailableUnits)
	d.ApplyAvailableUnits(12)
	assert.Equal(t, 0, d.AvailableUnits)
}

func TestCommissionCalculate(t *testing.T) {
	c := &Commission{BaseValue: decimalOf("150000"), Percentage: decimalOf("5"), Deductions: decimalOf("500")}
	c.Calculate()
	assert.Equal(t, "7500", c.GrossAmount.String())
	assert.Equal(t, "7000", c.NetAmount.String())
}

func TestContractDueDates(t *testing.T) {
	c := &Contract{
		SignatureDate: mustDate("2025-01-10"),
		ValidityDays:  180,
		ExtensionDays: 90,
	}
	c.ComputeDueDate()
	assert.Equal(t, "2025-07-09", c.DueDate.Format("2006-01-02"))
	assert.Equal(t, "2025-10-07", c.ExtendedDueDate().Format("2006-01-02"))
}

func TestNotification_MarkAsReadKeepsFirstRead(t *testing.T) {
	n := &Notification{Kind: NotificationTypeCommissionPaid}
	assert.False(t, n.IsRead())

	first := mustDate("2025-05-02")
	n.MarkAsRead(first)
	n.MarkAsRead(mustDate("2025-05-03"))
	assert.True(t, n.IsRead())
	assert.Equal(t, first, *n.ReadAt)

	resp := n.ToResponse()
	assert.Equal(t, "Comissão", resp.Category)
	assert.True(t, resp.Read)

	n.Kind = "legacy_kind"
	assert.Equal(t, "Sistema", n.Category())
}

func TestRefreshToken_IsExpired(t *testing.T) {
	expires := mustDate("2025-05-02")
	rt := &RefreshToken{ExpiresAt: expires}
	assert.False(t, rt.IsExpired(expires.Add(-time.Second)))
	assert.True(t, rt.IsExpired(expires))
	assert.True(t, rt.IsExpired(expires.Add(time.Hour)))
}
