package cii

import (
	"github.com/beevik/etree"

	"github.com/rezonia/facturx/internal/profile"
)

// HeaderTradeAgreement carries the contractual side of the invoice: who
// sells, who buys, and which orders and contracts it fulfils.
type HeaderTradeAgreement struct {
	BuyerReference          string
	Seller                  TradeParty
	Buyer                   TradeParty
	SellerTaxRepresentative *TradeParty
	SellerOrderReference    *ReferencedDocument // EN16931 upward
	BuyerOrderReference     *ReferencedDocument
	ContractReference       *ReferencedDocument
	AdditionalReferences    []ReferencedDocument // EN16931 upward
	ProcuringProject        *ProcuringProject    // EN16931 upward
}

func (a HeaderTradeAgreement) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: optText("BuyerReference", a.BuyerReference)},
		{min: profile.Minimum, emit: node("SellerTradeParty", a.Seller)},
		{min: profile.Minimum, emit: node("BuyerTradeParty", a.Buyer)},
		{min: profile.BasicWL, emit: optNode("SellerTaxRepresentativeTradeParty", a.SellerTaxRepresentative)},
		{min: profile.EN16931, emit: optNode("SellerOrderReferencedDocument", a.SellerOrderReference)},
		{min: profile.Minimum, emit: optNode("BuyerOrderReferencedDocument", a.BuyerOrderReference)},
		{min: profile.BasicWL, emit: optNode("ContractReferencedDocument", a.ContractReference)},
		{min: profile.EN16931, emit: nodeList("AdditionalReferencedDocument", a.AdditionalReferences)},
		{min: profile.EN16931, emit: optNode("SpecifiedProcuringProject", a.ProcuringProject)},
	})
}

func (a HeaderTradeAgreement) validate(p profile.Profile) []error {
	var errs []error
	errs = append(errs, a.Seller.validate("Agreement.Seller", p)...)
	errs = append(errs, a.Buyer.validate("Agreement.Buyer", p)...)
	if a.Seller.Address == nil {
		errs = append(errs, NewValidationError("Agreement.Seller.Address", nil, "required", "seller postal address is mandatory"))
	}
	if a.SellerTaxRepresentative != nil {
		if p < profile.BasicWL {
			errs = append(errs, NewProfileError("Agreement.SellerTaxRepresentative", profile.BasicWL, p))
		} else {
			errs = append(errs, a.SellerTaxRepresentative.validate("Agreement.SellerTaxRepresentative", p)...)
		}
	}
	if a.ContractReference != nil && p < profile.BasicWL {
		errs = append(errs, NewProfileError("Agreement.ContractReference", profile.BasicWL, p))
	}
	if p < profile.EN16931 {
		if a.SellerOrderReference != nil {
			errs = append(errs, NewProfileError("Agreement.SellerOrderReference", profile.EN16931, p))
		}
		if len(a.AdditionalReferences) > 0 {
			errs = append(errs, NewProfileError("Agreement.AdditionalReferences", profile.EN16931, p))
		}
		if a.ProcuringProject != nil {
			errs = append(errs, NewProfileError("Agreement.ProcuringProject", profile.EN16931, p))
		}
	}
	for i, ref := range a.AdditionalReferences {
		errs = append(errs, ref.validate(indexPath("Agreement.AdditionalReferences", i), p)...)
	}
	return errs
}
