// Package pricing derives the financed totals of a proposal from the values
// the agent negotiates with the client.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInstallment      = errors.New("valor da parcela deve ser maior que zero")
	ErrInstallmentBelowMinimum = errors.New("número de parcelas abaixo do mínimo")
	ErrNegativeAmount          = errors.New("valores não podem ser negativos")
)

// Markup is the financing spread applied to the construction company price
var Markup = decimal.RequireFromString("1.5")

// MarkedUpTotal returns base × 1.5 rounded half-up to cents
func MarkedUpTotal(base decimal.Decimal) decimal.Decimal {
	return base.Mul(Markup).Round(2)
}

// InstallmentCount returns how many installments of the given amount fit in total.
func InstallmentCount(total, installment decimal.Decimal) (int, error) {
	if !installment.IsPositive() {
		return 0, ErrInvalidInstallment
	}
	q, _ := total.QuoRem(installment, 0)
	if q.LessThan(decimal.NewFromInt(1)) {
		return 0, ErrInstallmentBelowMinimum
	}
	return int(q.IntPart()), nil
}

// TotalApproval sums the three secondary funding sources
func TotalApproval(financing, subsidy, fgts decimal.Decimal) decimal.Decimal {
	return financing.Add(subsidy).Add(fgts).Round(2)
}

// Inputs are the raw values the calculator works from
type Inputs struct {
	BasePrice         decimal.Decimal `json:"base_price"`
	ClientInstallment decimal.Decimal `json:"client_installment"`
	Financing         decimal.Decimal `json:"financing_amount"`
	Subsidy           decimal.Decimal `json:"subsidy_amount"`
	FGTS              decimal.Decimal `json:"fgts_amount"`
}

func (in Inputs) validate() error {
	for _, v := range []decimal.Decimal{in.BasePrice, in.Financing, in.Subsidy, in.FGTS} {
		if v.IsNegative() {
			return ErrNegativeAmount
		}
	}
	if !in.ClientInstallment.IsPositive() {
		return ErrInvalidInstallment
	}
	return nil
}

// Result holds the derived figures
type Result struct {
	MarkedUpTotal    decimal.Decimal `json:"marked_up_total"`
	InstallmentCount int             `json:"installment_count"`
	TotalApproval    decimal.Decimal `json:"total_approval"`
}

// Compute derives every figure from scratch
func Compute(in Inputs) (Result, error) {
	if err := in.validate(); err != nil {
		return Result{}, err
	}
	total := MarkedUpTotal(in.BasePrice)
	count, err := InstallmentCount(total, in.ClientInstallment)
	if err != nil {
		return Result{}, err
	}
	return Result{
		MarkedUpTotal:    total,
		InstallmentCount: count,
		TotalApproval:    TotalApproval(in.Financing, in.Subsidy, in.FGTS),
	}, nil
}
