package cii

import (
	"github.com/beevik/etree"

	"github.com/rezonia/facturx/internal/profile"
)

// SupplyChainTradeTransaction composes the line items with the three header
// blocks. Child order is fixed: lines, agreement, delivery, settlement.
type SupplyChainTradeTransaction struct {
	LineItems  []SupplyChainTradeLineItem
	Agreement  HeaderTradeAgreement
	Delivery   HeaderTradeDelivery
	Settlement HeaderTradeSettlement
}

func (tx SupplyChainTradeTransaction) Render(name string, p profile.Profile) *etree.Element {
	return render(NSRSM, name, p, []field{
		{min: profile.Basic, emit: nodeList("IncludedSupplyChainTradeLineItem", tx.LineItems)},
		{min: profile.Minimum, emit: node("ApplicableHeaderTradeAgreement", tx.Agreement)},
		{min: profile.Minimum, emit: node("ApplicableHeaderTradeDelivery", tx.Delivery)},
		{min: profile.Minimum, emit: node("ApplicableHeaderTradeSettlement", tx.Settlement)},
	})
}

func (tx SupplyChainTradeTransaction) validate(p profile.Profile) []error {
	var errs []error

	if p >= profile.Basic && len(tx.LineItems) == 0 {
		errs = append(errs, NewValidationError("Transaction.LineItems", nil, "required",
			"at least one line item is mandatory at BASIC and above"))
	}
	if p < profile.Basic && len(tx.LineItems) > 0 {
		errs = append(errs, NewProfileError("Transaction.LineItems", profile.Basic, p))
	}

	seen := make(map[int]bool, len(tx.LineItems))
	for i, li := range tx.LineItems {
		id := li.Document.LineID
		if seen[id] {
			errs = append(errs, NewValidationError(indexPath("Transaction.LineItems", i)+".Document.LineID",
				id, "unique", "duplicate line ID"))
		}
		seen[id] = true
		errs = append(errs, li.validate(indexPath("Transaction.LineItems", i), p)...)
	}

	errs = append(errs, tx.Agreement.validate(p)...)
	errs = append(errs, tx.Delivery.validate(p)...)
	errs = append(errs, tx.Settlement.validate(p)...)
	return errs
}
