package cii

import (
	"time"

	"github.com/beevik/etree"

	"github.com/rezonia/facturx/internal/profile"
)

// SupplyChainEvent marks an occurrence date, e.g. the actual delivery.
type SupplyChainEvent struct {
	OccurrenceDate time.Time
}

func (e SupplyChainEvent) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: date("OccurrenceDateTime", e.OccurrenceDate)},
	})
}

// HeaderTradeDelivery carries shipping data. At MINIMUM the element renders
// empty; the schema still requires its presence.
type HeaderTradeDelivery struct {
	ShipTo                   *TradeParty
	ActualDelivery           *SupplyChainEvent
	DespatchAdviceReference  *ReferencedDocument
	ReceivingAdviceReference *ReferencedDocument // EN16931 upward
}

func (d HeaderTradeDelivery) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.BasicWL, emit: optNode("ShipToTradeParty", d.ShipTo)},
		{min: profile.BasicWL, emit: optNode("ActualDeliverySupplyChainEvent", d.ActualDelivery)},
		{min: profile.BasicWL, emit: optNode("DespatchAdviceReferencedDocument", d.DespatchAdviceReference)},
		{min: profile.EN16931, emit: optNode("ReceivingAdviceReferencedDocument", d.ReceivingAdviceReference)},
	})
}

func (d HeaderTradeDelivery) validate(p profile.Profile) []error {
	var errs []error
	if p < profile.BasicWL {
		if d.ShipTo != nil {
			errs = append(errs, NewProfileError("Delivery.ShipTo", profile.BasicWL, p))
		}
		if d.ActualDelivery != nil {
			errs = append(errs, NewProfileError("Delivery.ActualDelivery", profile.BasicWL, p))
		}
		if d.DespatchAdviceReference != nil {
			errs = append(errs, NewProfileError("Delivery.DespatchAdviceReference", profile.BasicWL, p))
		}
	}
	if d.ReceivingAdviceReference != nil && p < profile.EN16931 {
		errs = append(errs, NewProfileError("Delivery.ReceivingAdviceReference", profile.EN16931, p))
	}
	if d.ShipTo != nil && p >= profile.BasicWL {
		errs = append(errs, d.ShipTo.validate("Delivery.ShipTo", p)...)
	}
	return errs
}
