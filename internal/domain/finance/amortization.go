package finance

import (
	"errors"
	"math"
)

var ErrNotComputable = errors.New("installment not computable")

// Approval policy thresholds. The rule is a deliberately simplistic
// placeholder policy inherited from the marketplace, preserved verbatim: a
// declined simulation is a normal outcome, never an error.
const (
	maxApprovedFinancedAmount = 200000.0
	minIdentifierDigits       = 10
)

// ComputeInstallment returns the fixed monthly payment for a loan under the
// French ("Price") amortization system:
//
//	installment = principal * r / (1 - (1+r)^-n)
//
// where r = monthlyRatePct/100 and n = termMonths.
//
// A principal <= 0 means there is nothing to finance and yields 0. A zero
// rate degenerates to a straight division. The caller is responsible for
// rejecting termMonths <= 0 before invoking; a negative rate or any
// non-finite intermediate is reported as ErrNotComputable rather than leaking
// NaN/Inf into displayed values. No rounding is applied here; currency
// rounding belongs to the presentation layer.
func ComputeInstallment(principal, monthlyRatePct float64, termMonths int) (float64, error) {
	if principal <= 0 {
		return 0, nil
	}
	if termMonths <= 0 || monthlyRatePct < 0 {
		return 0, ErrNotComputable
	}

	n := float64(termMonths)
	if monthlyRatePct == 0 {
		return principal / n, nil
	}

	r := monthlyRatePct / 100
	installment := principal * (r / (1 - math.Pow(1+r, -n)))
	if math.IsNaN(installment) || math.IsInf(installment, 0) {
		return 0, ErrNotComputable
	}
	return installment, nil
}

// EvaluateApproval applies the placeholder acceptance rule: approved iff the
// financed amount is positive and under the cap, and the tax identifier has
// more than 10 digits.
func EvaluateApproval(financedAmount float64, taxIdentifierLength int) bool {
	if financedAmount <= 0 || financedAmount >= maxApprovedFinancedAmount {
		return false
	}
	return taxIdentifierLength > minIdentifierDigits
}
