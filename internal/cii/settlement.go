package cii

import (
	"time"

	"github.com/beevik/etree"

	"github.com/rezonia/facturx/internal/codes"
	"github.com/rezonia/facturx/internal/profile"
)

// SpecifiedPeriod is a date range, used for billing periods.
type SpecifiedPeriod struct {
	Start *time.Time
	End   *time.Time
}

func (sp SpecifiedPeriod) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: optDate("StartDateTime", sp.Start)},
		{min: profile.Minimum, emit: optDate("EndDateTime", sp.End)},
	})
}

// TradeAccountingAccount is a buyer accounting reference.
type TradeAccountingAccount struct {
	ID string
}

func (a TradeAccountingAccount) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: text("ID", a.ID)},
	})
}

// TradePaymentTerms states when and how payment is due.
type TradePaymentTerms struct {
	Description          string
	DueDate              *time.Time
	DirectDebitMandateID string
}

func (t TradePaymentTerms) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: optText("Description", t.Description)},
		{min: profile.Minimum, emit: optDate("DueDateDateTime", t.DueDate)},
		{min: profile.Minimum, emit: optText("DirectDebitMandateID", t.DirectDebitMandateID)},
	})
}

// CreditorFinancialAccount is the payee's account: IBAN or proprietary.
type CreditorFinancialAccount struct {
	IBAN          string
	AccountName   string
	ProprietaryID string
}

func (a CreditorFinancialAccount) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: optText("IBANID", a.IBAN)},
		{min: profile.EN16931, emit: optText("AccountName", a.AccountName)},
		{min: profile.Minimum, emit: optText("ProprietaryID", a.ProprietaryID)},
	})
}

// DebtorFinancialAccount is the payer's account for direct debit.
type DebtorFinancialAccount struct {
	IBAN string
}

func (a DebtorFinancialAccount) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: text("IBANID", a.IBAN)},
	})
}

// CreditorFinancialInstitution identifies the payee's bank by BIC.
type CreditorFinancialInstitution struct {
	BIC string
}

func (i CreditorFinancialInstitution) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: text("BICID", i.BIC)},
	})
}

// TradeSettlementFinancialCard is a payment card reference (EN16931+).
// Only a truncated PAN may be carried.
type TradeSettlementFinancialCard struct {
	ID             string
	CardholderName string
}

func (c TradeSettlementFinancialCard) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: text("ID", c.ID)},
		{min: profile.Minimum, emit: optText("CardholderName", c.CardholderName)},
	})
}

// TradeSettlementPaymentMeans describes one way the invoice can be paid.
type TradeSettlementPaymentMeans struct {
	TypeCode         codes.PaymentMeansCode
	Information      string                        // EN16931 upward
	FinancialCard    *TradeSettlementFinancialCard // EN16931 upward
	PayerAccount     *DebtorFinancialAccount
	PayeeAccount     *CreditorFinancialAccount
	PayeeInstitution *CreditorFinancialInstitution // EN16931 upward
}

func (m TradeSettlementPaymentMeans) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.Minimum, emit: intText("TypeCode", int(m.TypeCode))},
		{min: profile.EN16931, emit: optText("Information", m.Information)},
		{min: profile.EN16931, emit: optNode("ApplicableTradeSettlementFinancialCard", m.FinancialCard)},
		{min: profile.Minimum, emit: optNode("PayerPartyDebtorFinancialAccount", m.PayerAccount)},
		{min: profile.Minimum, emit: optNode("PayeePartyCreditorFinancialAccount", m.PayeeAccount)},
		{min: profile.EN16931, emit: optNode("PayeeSpecifiedCreditorFinancialInstitution", m.PayeeInstitution)},
	})
}

func (m TradeSettlementPaymentMeans) validate(path string, p profile.Profile) []error {
	var errs []error
	if m.TypeCode == 0 {
		errs = append(errs, NewValidationError(path+".TypeCode", nil, "required", "payment means type code must be set"))
	}
	if m.PayeeAccount != nil && m.PayeeAccount.IBAN != "" && !ibanRe.MatchString(m.PayeeAccount.IBAN) {
		errs = append(errs, NewValidationError(path+".PayeeAccount.IBAN", m.PayeeAccount.IBAN, "format", "not a plausible IBAN"))
	}
	if m.PayerAccount != nil && m.PayerAccount.IBAN != "" && !ibanRe.MatchString(m.PayerAccount.IBAN) {
		errs = append(errs, NewValidationError(path+".PayerAccount.IBAN", m.PayerAccount.IBAN, "format", "not a plausible IBAN"))
	}
	if m.PayeeInstitution != nil {
		if !bicRe.MatchString(m.PayeeInstitution.BIC) {
			errs = append(errs, NewValidationError(path+".PayeeInstitution.BIC", m.PayeeInstitution.BIC, "format", "not a plausible BIC"))
		}
		if p < profile.EN16931 {
			errs = append(errs, NewProfileError(path+".PayeeInstitution", profile.EN16931, p))
		}
	}
	if m.FinancialCard != nil && p < profile.EN16931 {
		errs = append(errs, NewProfileError(path+".FinancialCard", profile.EN16931, p))
	}
	return errs
}

// HeaderTradeSettlement is the document-wide financial block: currency,
// payment means, VAT breakdown, allowances, terms and the totals.
type HeaderTradeSettlement struct {
	CreditorReferenceID string
	PaymentReference    string
	TaxCurrencyCode     string
	InvoiceCurrencyCode string
	Payee               *TradeParty
	PaymentMeans        []TradeSettlementPaymentMeans
	Taxes               []TradeTax
	BillingPeriod       *SpecifiedPeriod
	AllowanceCharges    []TradeAllowanceCharge
	PaymentTerms        *TradePaymentTerms
	Summation           HeaderMonetarySummation
	InvoiceReferences   []ReferencedDocument // preceding invoices
	AccountingAccount   *TradeAccountingAccount
}

func (s HeaderTradeSettlement) Render(name string, p profile.Profile) *etree.Element {
	return ramElement(name, p, []field{
		{min: profile.BasicWL, emit: optText("CreditorReferenceID", s.CreditorReferenceID)},
		{min: profile.BasicWL, emit: optText("PaymentReference", s.PaymentReference)},
		{min: profile.BasicWL, emit: optText("TaxCurrencyCode", s.TaxCurrencyCode)},
		{min: profile.Minimum, emit: text("InvoiceCurrencyCode", s.InvoiceCurrencyCode)},
		{min: profile.BasicWL, emit: optNode("PayeeTradeParty", s.Payee)},
		{min: profile.BasicWL, emit: nodeList("SpecifiedTradeSettlementPaymentMeans", s.PaymentMeans)},
		{min: profile.BasicWL, emit: nodeList("ApplicableTradeTax", s.Taxes)},
		{min: profile.BasicWL, emit: optNode("BillingSpecifiedPeriod", s.BillingPeriod)},
		{min: profile.BasicWL, emit: nodeList("SpecifiedTradeAllowanceCharge", s.AllowanceCharges)},
		{min: profile.BasicWL, emit: optNode("SpecifiedTradePaymentTerms", s.PaymentTerms)},
		{min: profile.Minimum, emit: node("SpecifiedTradeSettlementHeaderMonetarySummation", s.Summation)},
		{min: profile.BasicWL, emit: nodeList("InvoiceReferencedDocument", s.InvoiceReferences)},
		{min: profile.BasicWL, emit: optNode("ReceivableSpecifiedTradeAccountingAccount", s.AccountingAccount)},
	})
}

func (s HeaderTradeSettlement) validate(p profile.Profile) []error {
	var errs []error
	if s.InvoiceCurrencyCode == "" {
		errs = append(errs, NewValidationError("Settlement.InvoiceCurrencyCode", nil, "required", "invoice currency must be set"))
	}
	if s.Payee != nil {
		if p < profile.BasicWL {
			errs = append(errs, NewProfileError("Settlement.Payee", profile.BasicWL, p))
		} else {
			errs = append(errs, s.Payee.validate("Settlement.Payee", p)...)
		}
	}
	if len(s.Taxes) > 0 && p < profile.BasicWL {
		errs = append(errs, NewProfileError("Settlement.Taxes", profile.BasicWL, p))
	}
	for i, tax := range s.Taxes {
		errs = append(errs, tax.validate(indexPath("Settlement.Taxes", i), p)...)
	}
	if len(s.PaymentMeans) > 0 && p < profile.BasicWL {
		errs = append(errs, NewProfileError("Settlement.PaymentMeans", profile.BasicWL, p))
	}
	for i, pm := range s.PaymentMeans {
		errs = append(errs, pm.validate(indexPath("Settlement.PaymentMeans", i), p)...)
	}
	for i, ac := range s.AllowanceCharges {
		errs = append(errs, ac.validate(indexPath("Settlement.AllowanceCharges", i), p, true)...)
	}
	errs = append(errs, s.Summation.validate(p)...)
	return errs
}
