package pricing

import (
	"github.com/shopspring/decimal"
)

// Plan is a proposal's stored inputs together with its stored figures
type Plan struct {
	Inputs Inputs
	Result Result
}

// Overrides are figures typed in by the agent; nil keeps the computed value
type Overrides struct {
	MarkedUpTotal    *decimal.Decimal `json:"marked_up_total"`
	InstallmentCount *int             `json:"installment_count"`
	TotalApproval    *decimal.Decimal `json:"total_approval"`
}

// IsZero reports whether no override was given
func (o Overrides) IsZero() bool {
	return o.MarkedUpTotal == nil && o.InstallmentCount == nil && o.TotalApproval == nil
}

func (p Plan) computed() bool {
	return p.Result.InstallmentCount > 0 || !p.Result.MarkedUpTotal.IsZero()
}

func (p Plan) installmentInputsChanged(next Inputs) bool {
	return !next.BasePrice.Equal(p.Inputs.BasePrice) ||
		!next.ClientInstallment.Equal(p.Inputs.ClientInstallment)
}

func (p Plan) fundingChanged(next Inputs) bool {
	return !next.Financing.Equal(p.Inputs.Financing) ||
		!next.Subsidy.Equal(p.Inputs.Subsidy) ||
		!next.FGTS.Equal(p.Inputs.FGTS)
}

// Apply returns the figures for next. Stored figures survive unless their
// own inputs changed or the plan was never computed; overrides always win.
func (p Plan) Apply(next Inputs, o Overrides) (Result, error) {
	if err := next.validate(); err != nil {
		return Result{}, err
	}

	res := p.Result
	fresh := !p.computed()

	if fresh || p.installmentInputsChanged(next) {
		res.MarkedUpTotal = MarkedUpTotal(next.BasePrice)
		if o.InstallmentCount == nil {
			count, err := InstallmentCount(res.MarkedUpTotal, next.ClientInstallment)
			if err != nil {
				return Result{}, err
			}
			res.InstallmentCount = count
		}
	}
	if fresh || p.fundingChanged(next) {
		res.TotalApproval = TotalApproval(next.Financing, next.Subsidy, next.FGTS)
	}

	if o.MarkedUpTotal != nil {
		if o.MarkedUpTotal.IsNegative() {
			return Result{}, ErrNegativeAmount
		}
		res.MarkedUpTotal = o.MarkedUpTotal.Round(2)
	}
	if o.InstallmentCount != nil {
		if *o.InstallmentCount < 1 {
			return Result{}, ErrInstallmentBelowMinimum
		}
		res.InstallmentCount = *o.InstallmentCount
	}
	if o.TotalApproval != nil {
		if o.TotalApproval.IsNegative() {
			return Result{}, ErrNegativeAmount
		}
		res.TotalApproval = o.TotalApproval.Round(2)
	}

	return res, nil
}
