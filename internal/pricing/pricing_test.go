package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestMarkedUpTotal(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"100000.00", "150000"},
		{"0.01", "0.02"},
		{"0.03", "0.05"},
		{"123456.78", "185185.17"},
		{"1.11", "1.67"},
	}
	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			got := MarkedUpTotal(dec(tt.base))
			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestInstallmentCount(t *testing.T) {
	count, err := InstallmentCount(dec("150000.00"), dec("1500.00"))
	require.NoError(t, err)
	assert.Equal(t, 100, count)

	count, err = InstallmentCount(dec("150000.00"), dec("1499.99"))
	require.NoError(t, err)
	assert.Equal(t, 100, count)

	count, err = InstallmentCount(dec("150000.00"), dec("1500.01"))
	require.NoError(t, err)
	assert.Equal(t, 99, count)
}

func TestInstallmentCount_Errors(t *testing.T) {
	_, err := InstallmentCount(dec("1000"), decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidInstallment)

	_, err = InstallmentCount(dec("1000"), dec("-10"))
	assert.ErrorIs(t, err, ErrInvalidInstallment)

	_, err = InstallmentCount(dec("1000"), dec("1000.01"))
	assert.ErrorIs(t, err, ErrInstallmentBelowMinimum)
}

func TestCompute_Scenario(t *testing.T) {
	res, err := Compute(Inputs{
		BasePrice:         dec("100000.00"),
		ClientInstallment: dec("1500.00"),
		Financing:         dec("80000"),
		Subsidy:           dec("10000.50"),
		FGTS:              dec("5000"),
	})
	require.NoError(t, err)
	assert.True(t, dec("150000.00").Equal(res.MarkedUpTotal))
	assert.Equal(t, 100, res.InstallmentCount)
	assert.True(t, dec("95000.50").Equal(res.TotalApproval))
}

func TestCompute_RejectsNegative(t *testing.T) {
	_, err := Compute(Inputs{BasePrice: dec("100"), ClientInstallment: dec("1"), Subsidy: dec("-1")})
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestPlanApply_FreshComputes(t *testing.T) {
	res, err := Plan{}.Apply(Inputs{BasePrice: dec("1000"), ClientInstallment: dec("100")}, Overrides{})
	require.NoError(t, err)
	assert.True(t, dec("1500").Equal(res.MarkedUpTotal))
	assert.Equal(t, 15, res.InstallmentCount)
}

func TestPlanApply_KeepsEditedFiguresWhenInputsUnchanged(t *testing.T) {
	in := Inputs{BasePrice: dec("1000"), ClientInstallment: dec("100"), Financing: dec("10")}
	plan := Plan{
		Inputs: in,
		Result: Result{MarkedUpTotal: dec("1600"), InstallmentCount: 12, TotalApproval: dec("99")},
	}

	res, err := plan.Apply(in, Overrides{})
	require.NoError(t, err)
	assert.True(t, dec("1600").Equal(res.MarkedUpTotal))
	assert.Equal(t, 12, res.InstallmentCount)
	assert.True(t, dec("99").Equal(res.TotalApproval))
}

func TestPlanApply_RecomputesOnlyChangedGroup(t *testing.T) {
	in := Inputs{BasePrice: dec("1000"), ClientInstallment: dec("100"), Financing: dec("10")}
	plan := Plan{
		Inputs: in,
		Result: Result{MarkedUpTotal: dec("1600"), InstallmentCount: 12, TotalApproval: dec("99")},
	}

	next := in
	next.ClientInstallment = dec("300")
	res, err := plan.Apply(next, Overrides{})
	require.NoError(t, err)
	assert.True(t, dec("1500").Equal(res.MarkedUpTotal))
	assert.Equal(t, 5, res.InstallmentCount)
	assert.True(t, dec("99").Equal(res.TotalApproval))

	next = in
	next.FGTS = dec("5")
	res, err = plan.Apply(next, Overrides{})
	require.NoError(t, err)
	assert.True(t, dec("1600").Equal(res.MarkedUpTotal))
	assert.True(t, dec("15").Equal(res.TotalApproval))
}

func TestPlanApply_Overrides(t *testing.T) {
	count := 24
	total := dec("2000.555")
	res, err := Plan{}.Apply(Inputs{BasePrice: dec("1000"), ClientInstallment: dec("100")}, Overrides{
		MarkedUpTotal:    &total,
		InstallmentCount: &count,
	})
	require.NoError(t, err)
	assert.True(t, dec("2000.56").Equal(res.MarkedUpTotal))
	assert.Equal(t, 24, res.InstallmentCount)

	zero := 0
	_, err = Plan{}.Apply(Inputs{BasePrice: dec("1000"), ClientInstallment: dec("100")}, Overrides{InstallmentCount: &zero})
	assert.ErrorIs(t, err, ErrInstallmentBelowMinimum)
}

func TestPlanApply_OverrideCountSkipsMinimumCheck(t *testing.T) {
	count := 10
	res, err := Plan{}.Apply(Inputs{BasePrice: dec("100"), ClientInstallment: dec("1000")}, Overrides{InstallmentCount: &count})
	require.NoError(t, err)
	assert.Equal(t, 10, res.InstallmentCount)
}

func TestPlanApply_OverrideCountStillRequiresInstallment(t *testing.T) {
	count := 10
	_, err := Plan{}.Apply(Inputs{BasePrice: dec("100"), ClientInstallment: decimal.Zero}, Overrides{InstallmentCount: &count})
	assert.ErrorIs(t, err, ErrInvalidInstallment)

	_, err = Plan{}.Apply(Inputs{BasePrice: dec("100"), ClientInstallment: dec("-5")}, Overrides{InstallmentCount: &count})
	assert.ErrorIs(t, err, ErrInvalidInstallment)
}
