package cii

import (
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/rezonia/facturx/internal/codes"
	"github.com/rezonia/facturx/internal/profile"
)

// TradeTax is a VAT breakdown entry. The same type serves the header
// breakdown (ApplicableTradeTax), the line tax and the allowance/charge
// category tax; only TypeCode and CategoryCode are universally required.
type TradeTax struct {
	CalculatedAmount    *decimal.Decimal
	TypeCode            codes.TaxTypeCode
	ExemptionReason     string
	BasisAmount         *decimal.Decimal
	CategoryCode        codes.TaxCategoryCode
	ExemptionReasonCode codes.VATExemptionReasonCode
	TaxPointDate        *time.Time              // EN16931 upward
	DueDateTypeCode     codes.TimeReferenceCode // UNTDID 2475, optional
	RatePercent         *decimal.Decimal
}

func (t TradeTax) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: optAmount("CalculatedAmount", t.CalculatedAmount, "")},
		{min: profile.Minimum, emit: text("TypeCode", string(t.TypeCode))},
		{min: profile.Minimum, emit: optText("ExemptionReason", t.ExemptionReason)},
		{min: profile.Minimum, emit: optAmount("BasisAmount", t.BasisAmount, "")},
		{min: profile.Minimum, emit: text("CategoryCode", string(t.CategoryCode))},
		{min: profile.Minimum, emit: optText("ExemptionReasonCode", string(t.ExemptionReasonCode))},
		{min: profile.EN16931, emit: optPlainDate("TaxPointDate", t.TaxPointDate)},
		{min: profile.Minimum, emit: optIntText("DueDateTypeCode", int(t.DueDateTypeCode))},
		{min: profile.Minimum, emit: percent("RateApplicablePercent", t.RatePercent)},
	})
}

func (t TradeTax) validate(path string, p profile.Profile) []error {
	var errs []error
	if t.TypeCode == "" {
		errs = append(errs, NewValidationError(path+".TypeCode", nil, "required", "tax type code must be set"))
	}
	if t.CategoryCode == "" {
		errs = append(errs, NewValidationError(path+".CategoryCode", nil, "required", "tax category code must be set"))
	}
	if t.TaxPointDate != nil && p < profile.EN16931 {
		errs = append(errs, NewProfileError(path+".TaxPointDate", profile.EN16931, p))
	}
	return errs
}
