package cii

import (
	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/rezonia/facturx/internal/codes"
	"github.com/rezonia/facturx/internal/profile"
)

// TradeAllowanceCharge is a discount (allowance) or a surcharge (charge)
// applied to a price, a line, or the whole document. ChargeIndicator
// distinguishes the two.
type TradeAllowanceCharge struct {
	Charge             bool // true = charge, false = allowance
	CalculationPercent *decimal.Decimal
	BasisAmount        *decimal.Decimal
	ActualAmount       decimal.Decimal
	ReasonCode         codes.AllowanceChargeReasonCode
	Reason             string
	CategoryTax        *TradeTax // mandatory at document level, absent on prices
}

func (ac TradeAllowanceCharge) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: indicator("ChargeIndicator", ac.Charge)},
		{min: profile.Minimum, emit: percent("CalculationPercent", ac.CalculationPercent)},
		{min: profile.Minimum, emit: optAmount("BasisAmount", ac.BasisAmount, "")},
		{min: profile.Minimum, emit: amount("ActualAmount", ac.ActualAmount, "")},
		{min: profile.Minimum, emit: optIntText("ReasonCode", int(ac.ReasonCode))},
		{min: profile.Minimum, emit: optText("Reason", ac.Reason)},
		{min: profile.Minimum, emit: optNode("CategoryTradeTax", ac.CategoryTax)},
	})
}

func (ac TradeAllowanceCharge) validate(path string, p profile.Profile, requireCategory bool) []error {
	var errs []error
	if ac.ActualAmount.IsNegative() {
		errs = append(errs, NewValidationError(path+".ActualAmount", ac.ActualAmount.String(), "range", "actual amount must not be negative"))
	}
	if ac.CalculationPercent != nil {
		pc := *ac.CalculationPercent
		if pc.IsNegative() || pc.GreaterThan(decimal.NewFromInt(100)) {
			errs = append(errs, NewValidationError(path+".CalculationPercent", pc.String(), "range", "percentage must be between 0 and 100"))
		}
	}
	if requireCategory && ac.CategoryTax == nil {
		errs = append(errs, NewValidationError(path+".CategoryTax", nil, "required", "document level allowance/charge needs a category tax"))
	}
	if ac.CategoryTax != nil {
		errs = append(errs, ac.CategoryTax.validate(path+".CategoryTax", p)...)
	}
	return errs
}
