package cii

import (
	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/rezonia/facturx/internal/money"
	"github.com/rezonia/facturx/internal/profile"
)

// HeaderMonetarySummation aggregates the document totals. TaxBasisTotal,
// GrandTotal and DuePayable are mandatory at every profile; the remaining
// amounts are optional and profile-gated.
type HeaderMonetarySummation struct {
	LineTotal      *decimal.Decimal // BASICWL upward
	ChargeTotal    *decimal.Decimal // BASICWL upward
	AllowanceTotal *decimal.Decimal // BASICWL upward
	TaxBasisTotal  decimal.Decimal
	TaxTotal       *decimal.Decimal
	TaxCurrency    string           // currencyID on TaxTotalAmount
	RoundingAmount *decimal.Decimal // EN16931 upward
	GrandTotal     decimal.Decimal
	TotalPrepaid   *decimal.Decimal // BASICWL upward
	DuePayable     decimal.Decimal
}

func (s HeaderMonetarySummation) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.BasicWL, emit: optAmount("LineTotalAmount", s.LineTotal, "")},
		{min: profile.BasicWL, emit: optAmount("ChargeTotalAmount", s.ChargeTotal, "")},
		{min: profile.BasicWL, emit: optAmount("AllowanceTotalAmount", s.AllowanceTotal, "")},
		{min: profile.Minimum, emit: amount("TaxBasisTotalAmount", s.TaxBasisTotal, "")},
		{min: profile.Minimum, emit: optAmount("TaxTotalAmount", s.TaxTotal, s.TaxCurrency)},
		{min: profile.EN16931, emit: optAmount("RoundingAmount", s.RoundingAmount, "")},
		{min: profile.Minimum, emit: amount("GrandTotalAmount", s.GrandTotal, "")},
		{min: profile.BasicWL, emit: optAmount("TotalPrepaidAmount", s.TotalPrepaid, "")},
		{min: profile.Minimum, emit: amount("DuePayableAmount", s.DuePayable, "")},
	})
}

// Validate reconciles the totals within money.Tolerance. Each rule
// compares a computed value with the declared one and fails with a
// ConsistencyError carrying both; a mismatch is never corrected
// silently.
//
// Rule 1 only applies when line, charge and allowance totals are all
// present; rules 2 and 3 treat missing optional operands as zero.
func (s HeaderMonetarySummation) Validate() error {
	if s.LineTotal != nil && s.ChargeTotal != nil && s.AllowanceTotal != nil {
		computed := s.LineTotal.Add(*s.ChargeTotal).Sub(*s.AllowanceTotal)
		if !money.Within(computed, s.TaxBasisTotal) {
			return NewConsistencyError("tax-basis-total", computed, s.TaxBasisTotal)
		}
	}

	computed := s.TaxBasisTotal.Add(money.OrZero(s.TaxTotal)).Add(money.OrZero(s.RoundingAmount))
	if !money.Within(computed, s.GrandTotal) {
		return NewConsistencyError("grand-total", computed, s.GrandTotal)
	}

	computed = s.GrandTotal.Sub(money.OrZero(s.TotalPrepaid))
	if !money.Within(computed, s.DuePayable) {
		return NewConsistencyError("due-payable", computed, s.DuePayable)
	}

	return nil
}

func (s HeaderMonetarySummation) validate(p profile.Profile) []error {
	var errs []error
	if err := s.Validate(); err != nil {
		errs = append(errs, err)
	}
	if p < profile.BasicWL {
		if s.LineTotal != nil {
			errs = append(errs, NewProfileError("Summation.LineTotal", profile.BasicWL, p))
		}
		if s.ChargeTotal != nil {
			errs = append(errs, NewProfileError("Summation.ChargeTotal", profile.BasicWL, p))
		}
		if s.AllowanceTotal != nil {
			errs = append(errs, NewProfileError("Summation.AllowanceTotal", profile.BasicWL, p))
		}
		if s.TotalPrepaid != nil {
			errs = append(errs, NewProfileError("Summation.TotalPrepaid", profile.BasicWL, p))
		}
	}
	if s.RoundingAmount != nil && p < profile.EN16931 {
		errs = append(errs, NewProfileError("Summation.RoundingAmount", profile.EN16931, p))
	}
	return errs
}
