// Package facturx provides a public API for generating Factur-X / EN16931
// Cross Industry Invoice XML.
//
// This package exposes the invoice document graph, the compliance profiles,
// and a Generator that validates the graph and serializes it to
// namespace-qualified XML at the requested profile.
//
// Example usage:
//
//	gen := facturx.NewDefaultGenerator()
//	xml, err := gen.GenerateBytes(invoice, facturx.ProfileEN16931)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("factur-x.xml", xml, 0o644)
package facturx

import (
	"github.com/rezonia/facturx/internal/cii"
	"github.com/rezonia/facturx/internal/codes"
	"github.com/rezonia/facturx/internal/profile"
)

// Re-export the document graph for public API
type (
	Invoice                              = cii.Invoice
	ExchangedDocumentContext             = cii.ExchangedDocumentContext
	ExchangedDocument                    = cii.ExchangedDocument
	Note                                 = cii.Note
	SupplyChainTradeTransaction          = cii.SupplyChainTradeTransaction
	SupplyChainTradeLineItem             = cii.SupplyChainTradeLineItem
	DocumentLineDocument                 = cii.DocumentLineDocument
	TradeProduct                         = cii.TradeProduct
	ProductCharacteristic                = cii.ProductCharacteristic
	ProductClassification                = cii.ProductClassification
	LineTradeAgreement                   = cii.LineTradeAgreement
	LineTradeDelivery                    = cii.LineTradeDelivery
	LineTradeSettlement                  = cii.LineTradeSettlement
	TradePrice                           = cii.TradePrice
	HeaderTradeAgreement                 = cii.HeaderTradeAgreement
	HeaderTradeDelivery                  = cii.HeaderTradeDelivery
	HeaderTradeSettlement                = cii.HeaderTradeSettlement
	HeaderMonetarySummation              = cii.HeaderMonetarySummation
	TradeSettlementLineMonetarySummation = cii.TradeSettlementLineMonetarySummation
	TradeParty                           = cii.TradeParty
	TradeAddress                         = cii.TradeAddress
	TradeContact                         = cii.TradeContact
	LegalOrganization                    = cii.LegalOrganization
	GlobalID                             = cii.GlobalID
	TradeTax                             = cii.TradeTax
	TradeAllowanceCharge                 = cii.TradeAllowanceCharge
	TradePaymentTerms                    = cii.TradePaymentTerms
	TradeSettlementPaymentMeans          = cii.TradeSettlementPaymentMeans
	CreditorFinancialAccount             = cii.CreditorFinancialAccount
	DebtorFinancialAccount               = cii.DebtorFinancialAccount
	CreditorFinancialInstitution         = cii.CreditorFinancialInstitution
	TradeSettlementFinancialCard         = cii.TradeSettlementFinancialCard
	TradeCountry                         = cii.TradeCountry
	UniversalCommunication               = cii.UniversalCommunication
	TaxRegistration                      = cii.TaxRegistration
	SpecifiedPeriod                      = cii.SpecifiedPeriod
	SupplyChainEvent                     = cii.SupplyChainEvent
	ReferencedDocument                   = cii.ReferencedDocument
	BinaryObject                         = cii.BinaryObject
	ProcuringProject                     = cii.ProcuringProject
	TradeAccountingAccount               = cii.TradeAccountingAccount
)

// Re-export the compliance profiles
type Profile = profile.Profile

const (
	ProfileMinimum  = profile.Minimum
	ProfileBasicWL  = profile.BasicWL
	ProfileBasic    = profile.Basic
	ProfileEN16931  = profile.EN16931
	ProfileExtended = profile.Extended
)

// ParseProfile resolves a profile from its name or guideline URN.
var ParseProfile = profile.Parse

// Re-export common code list values
const (
	CommercialInvoice  = codes.CommercialInvoice
	ValueAddedTax      = codes.ValueAddedTax
	StandardRate       = codes.StandardRate
	SEPACreditTransfer = codes.SEPACreditTransfer
	UnitPiece          = codes.UnitPiece
)

// Re-export error types
type (
	ValidationError  = cii.ValidationError
	ProfileError     = cii.ProfileError
	ConsistencyError = cii.ConsistencyError
)

// ErrExtendedUnsupported is returned when generation is requested at the
// EXTENDED profile, which this library does not produce.
var ErrExtendedUnsupported = cii.ErrExtendedUnsupported
