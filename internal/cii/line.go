package cii

import (
	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/rezonia/facturx/internal/codes"
	"github.com/rezonia/facturx/internal/profile"
)

// ProductCharacteristic is a described property of a product (EN16931+).
type ProductCharacteristic struct {
	Description string
	Value       string
}

func (c ProductCharacteristic) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: text("Description", c.Description)},
		{min: profile.Minimum, emit: text("Value", c.Value)},
	})
}

// ProductClassification is a coded classification, e.g. UNSPSC (EN16931+).
type ProductClassification struct {
	ListID    string
	ClassCode string
}

func (c ProductClassification) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: func(parent *etree.Element, _ profile.Profile) {
			el := parent.CreateElement(NSRAM + ":ClassCode")
			if c.ListID != "" {
				el.CreateAttr("listID", c.ListID)
			}
			el.SetText(c.ClassCode)
		}},
	})
}

// TradeProduct describes the invoiced article.
type TradeProduct struct {
	GlobalID         *GlobalID
	SellerAssignedID string
	BuyerAssignedID  string
	Name             string
	Description      string
	Characteristics  []ProductCharacteristic // EN16931 upward
	Classifications  []ProductClassification // EN16931 upward
	OriginCountry    *TradeCountry           // EN16931 upward
}

func (tp TradeProduct) emitGlobalID() emitFunc {
	if tp.GlobalID == nil {
		return nil
	}
	return func(parent *etree.Element, _ profile.Profile) {
		el := parent.CreateElement(NSRAM + ":GlobalID")
		if tp.GlobalID.SchemeID != "" {
			el.CreateAttr("schemeID", tp.GlobalID.SchemeID)
		}
		el.SetText(tp.GlobalID.Value)
	}
}

func (tp TradeProduct) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: tp.emitGlobalID()},
		{min: profile.EN16931, emit: optText("SellerAssignedID", tp.SellerAssignedID)},
		{min: profile.EN16931, emit: optText("BuyerAssignedID", tp.BuyerAssignedID)},
		{min: profile.Minimum, emit: text("Name", tp.Name)},
		{min: profile.EN16931, emit: optText("Description", tp.Description)},
		{min: profile.EN16931, emit: nodeList("ApplicableProductCharacteristic", tp.Characteristics)},
		{min: profile.EN16931, emit: nodeList("DesignatedProductClassification", tp.Classifications)},
		{min: profile.EN16931, emit: optNode("OriginTradeCountry", tp.OriginCountry)},
	})
}

// DocumentLineDocument identifies one line within the invoice.
type DocumentLineDocument struct {
	LineID int
	Note   *Note
}

func (d DocumentLineDocument) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: intText("LineID", d.LineID)},
		{min: profile.Minimum, emit: optNode("IncludedNote", d.Note)},
	})
}

// TradePrice is a unit price, gross or net depending on the element name.
type TradePrice struct {
	ChargeAmount           decimal.Decimal
	BasisQuantity          *decimal.Decimal
	Unit                   codes.UnitCode
	AppliedAllowanceCharge *TradeAllowanceCharge // gross price discounts
}

func (tp TradePrice) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: unitAmount("ChargeAmount", tp.ChargeAmount)},
		{min: profile.Minimum, emit: optQuantity("BasisQuantity", tp.BasisQuantity, string(tp.Unit))},
		{min: profile.Minimum, emit: optNode("AppliedTradeAllowanceCharge", tp.AppliedAllowanceCharge)},
	})
}

// LineTradeAgreement holds the pricing side of a line.
type LineTradeAgreement struct {
	BuyerOrderReference *ReferencedDocument // EN16931 upward, line ref
	GrossPrice          *TradePrice
	NetPrice            TradePrice
}

func (a LineTradeAgreement) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.EN16931, emit: optNode("BuyerOrderReferencedDocument", a.BuyerOrderReference)},
		{min: profile.Minimum, emit: optNode("GrossPriceProductTradePrice", a.GrossPrice)},
		{min: profile.Minimum, emit: node("NetPriceProductTradePrice", a.NetPrice)},
	})
}

// LineTradeDelivery is the billed quantity with its unit of measure.
type LineTradeDelivery struct {
	BilledQuantity decimal.Decimal
	Unit           codes.UnitCode
}

func (d LineTradeDelivery) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: quantity("BilledQuantity", d.BilledQuantity, string(d.Unit))},
	})
}

// TradeSettlementLineMonetarySummation is the net total of one line.
type TradeSettlementLineMonetarySummation struct {
	LineTotal    decimal.Decimal
	CurrencyCode string // attribute, usually empty
}

func (s TradeSettlementLineMonetarySummation) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: amount("LineTotalAmount", s.LineTotal, s.CurrencyCode)},
	})
}

// LineTradeSettlement holds the tax and totals side of a line.
type LineTradeSettlement struct {
	Tax                 TradeTax
	BillingPeriod       *SpecifiedPeriod
	AllowanceCharges    []TradeAllowanceCharge
	Summation           TradeSettlementLineMonetarySummation
	AdditionalReference *ReferencedDocument     // EN16931 upward
	AccountingAccount   *TradeAccountingAccount // EN16931 upward
}

func (s LineTradeSettlement) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: node("ApplicableTradeTax", s.Tax)},
		{min: profile.Minimum, emit: optNode("BillingSpecifiedPeriod", s.BillingPeriod)},
		{min: profile.Minimum, emit: nodeList("SpecifiedTradeAllowanceCharge", s.AllowanceCharges)},
		{min: profile.Minimum, emit: node("SpecifiedTradeSettlementLineMonetarySummation", s.Summation)},
		{min: profile.EN16931, emit: optNode("AdditionalReferencedDocument", s.AdditionalReference)},
		{min: profile.EN16931, emit: optNode("ReceivableSpecifiedTradeAccountingAccount", s.AccountingAccount)},
	})
}

// SupplyChainTradeLineItem is one invoice line. Lines only appear at BASIC
// and above; the transaction enforces that.
type SupplyChainTradeLineItem struct {
	Document   DocumentLineDocument
	Product    TradeProduct
	Agreement  LineTradeAgreement
	Delivery   LineTradeDelivery
	Settlement LineTradeSettlement
}

func (li SupplyChainTradeLineItem) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: node("AssociatedDocumentLineDocument", li.Document)},
		{min: profile.Minimum, emit: node("SpecifiedTradeProduct", li.Product)},
		{min: profile.Minimum, emit: node("SpecifiedLineTradeAgreement", li.Agreement)},
		{min: profile.Minimum, emit: node("SpecifiedLineTradeDelivery", li.Delivery)},
		{min: profile.Minimum, emit: node("SpecifiedLineTradeSettlement", li.Settlement)},
	})
}

func (li SupplyChainTradeLineItem) validate(path string, p profile.Profile) []error {
	var errs []error
	if li.Document.LineID < 1 || li.Document.LineID > 999999 {
		errs = append(errs, NewValidationError(path+".Document.LineID", li.Document.LineID, "range", "line ID must be between 1 and 999999"))
	}
	if li.Product.Name == "" {
		errs = append(errs, NewValidationError(path+".Product.Name", nil, "required", "product name must not be empty"))
	}
	if !li.Delivery.BilledQuantity.IsPositive() {
		errs = append(errs, NewValidationError(path+".Delivery.BilledQuantity", li.Delivery.BilledQuantity.String(), "range", "billed quantity must be positive"))
	}
	errs = append(errs, li.Settlement.Tax.validate(path+".Settlement.Tax", p)...)
	for i, ac := range li.Settlement.AllowanceCharges {
		errs = append(errs, ac.validate(indexPath(path+".Settlement.AllowanceCharges", i), p, false)...)
	}
	if p < profile.EN16931 {
		if li.Settlement.AdditionalReference != nil {
			errs = append(errs, NewProfileError(path+".Settlement.AdditionalReference", profile.EN16931, p))
		}
		if li.Settlement.AccountingAccount != nil {
			errs = append(errs, NewProfileError(path+".Settlement.AccountingAccount", profile.EN16931, p))
		}
		if li.Agreement.BuyerOrderReference != nil {
			errs = append(errs, NewProfileError(path+".Agreement.BuyerOrderReference", profile.EN16931, p))
		}
	}
	return errs
}
