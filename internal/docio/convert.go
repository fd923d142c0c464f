package docio

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rezonia/facturx/internal/attachment"
	"github.com/rezonia/facturx/internal/cii"
	"github.com/rezonia/facturx/internal/codes"
)

const dateLayout = "2006-01-02"

// ParseYAML decodes an invoice document. JSON input works too; it is a
// subset of YAML.
func ParseYAML(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse invoice document: %w", err)
	}
	return &doc, nil
}

// LoadFile reads and decodes an invoice document from path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read invoice document: %w", err)
	}
	return ParseYAML(data)
}

// Build converts the document into the invoice graph. Conversion stops at
// the first malformed value; semantic checks happen later in graph
// validation.
func (d *Document) Build() (*cii.Invoice, error) {
	b := &builder{}

	inv := &cii.Invoice{
		Context: cii.ExchangedDocumentContext{BusinessProcessID: d.BusinessProcessID},
		Document: cii.ExchangedDocument{
			ID:        d.Invoice.ID,
			TypeCode:  codes.InvoiceTypeCode(d.Invoice.TypeCode),
			IssueDate: b.date("invoice.issue_date", d.Invoice.IssueDate),
			Notes:     buildNotes(d.Invoice.Notes),
		},
	}

	inv.Transaction.Agreement = cii.HeaderTradeAgreement{
		BuyerReference:          d.BuyerReference,
		Seller:                  b.party(d.Seller),
		Buyer:                   b.party(d.Buyer),
		SellerTaxRepresentative: b.partyPtr(d.TaxRepresentative),
		SellerOrderReference:    reference(d.References.SellerOrderID),
		BuyerOrderReference:     reference(d.References.BuyerOrderID),
		ContractReference:       reference(d.References.ContractID),
	}
	if d.References.Project != nil {
		inv.Transaction.Agreement.ProcuringProject = &cii.ProcuringProject{
			ID:   d.References.Project.ID,
			Name: d.References.Project.Name,
		}
	}
	for _, att := range d.Attachments {
		doc, err := buildAttachment(att)
		if err != nil {
			return nil, err
		}
		inv.Transaction.Agreement.AdditionalReferences = append(inv.Transaction.Agreement.AdditionalReferences, *doc)
	}

	if d.Delivery != nil {
		inv.Transaction.Delivery = cii.HeaderTradeDelivery{
			DespatchAdviceReference:  reference(d.Delivery.DespatchAdviceID),
			ReceivingAdviceReference: reference(d.Delivery.ReceivingAdviceID),
		}
		if t := b.optDate("delivery.date", d.Delivery.Date); t != nil {
			inv.Transaction.Delivery.ActualDelivery = &cii.SupplyChainEvent{OccurrenceDate: *t}
		}
	}
	if d.ShipTo != nil {
		p := b.party(*d.ShipTo)
		inv.Transaction.Delivery.ShipTo = &p
	}

	settlement := cii.HeaderTradeSettlement{
		CreditorReferenceID: d.Payment.CreditorReferenceID,
		PaymentReference:    d.Payment.Reference,
		TaxCurrencyCode:     d.Payment.TaxCurrency,
		InvoiceCurrencyCode: d.Payment.Currency,
		Payee:               b.partyPtr(d.Payee),
		BillingPeriod:       b.period("payment.billing_period", d.Payment.BillingPeriod),
	}
	for _, m := range d.Payment.Means {
		settlement.PaymentMeans = append(settlement.PaymentMeans, buildPaymentMeans(m))
	}
	if d.Payment.Terms != nil {
		settlement.PaymentTerms = &cii.TradePaymentTerms{
			Description:          d.Payment.Terms.Description,
			DueDate:              b.optDate("payment.terms.due_date", d.Payment.Terms.DueDate),
			DirectDebitMandateID: d.Payment.Terms.MandateID,
		}
	}
	for i, tax := range d.Taxes {
		settlement.Taxes = append(settlement.Taxes, b.tax(fmt.Sprintf("taxes[%d]", i), tax))
	}
	for i, al := range d.Allowances {
		settlement.AllowanceCharges = append(settlement.AllowanceCharges, b.discount(fmt.Sprintf("allowances[%d]", i), al, false))
	}
	for i, ch := range d.Charges {
		settlement.AllowanceCharges = append(settlement.AllowanceCharges, b.discount(fmt.Sprintf("charges[%d]", i), ch, true))
	}
	for _, prev := range d.References.PrecedingInvoices {
		ref := cii.ReferencedDocument{IssuerAssignedID: prev.ID}
		ref.IssueDate = b.optDate("references.preceding_invoices.issue_date", prev.IssueDate)
		settlement.InvoiceReferences = append(settlement.InvoiceReferences, ref)
	}
	if d.References.AccountingAccount != "" {
		settlement.AccountingAccount = &cii.TradeAccountingAccount{ID: d.References.AccountingAccount}
	}

	settlement.Summation = cii.HeaderMonetarySummation{
		LineTotal:      b.optAmount("totals.lines", d.Totals.Lines),
		ChargeTotal:    b.optAmount("totals.charges", d.Totals.Charges),
		AllowanceTotal: b.optAmount("totals.allowances", d.Totals.Allowances),
		TaxBasisTotal:  b.amount("totals.tax_basis", d.Totals.TaxBasis),
		TaxTotal:       b.optAmount("totals.tax", d.Totals.Tax),
		TaxCurrency:    taxCurrency(d.Payment),
		RoundingAmount: b.optAmount("totals.rounding", d.Totals.Rounding),
		GrandTotal:     b.amount("totals.grand", d.Totals.Grand),
		TotalPrepaid:   b.optAmount("totals.prepaid", d.Totals.Prepaid),
		DuePayable:     b.amount("totals.due", d.Totals.Due),
	}
	inv.Transaction.Settlement = settlement

	for i, line := range d.Lines {
		inv.Transaction.LineItems = append(inv.Transaction.LineItems, b.line(fmt.Sprintf("lines[%d]", i), line))
	}

	if b.err != nil {
		return nil, b.err
	}
	return inv, nil
}

// taxCurrency picks the currency for the TaxTotalAmount attribute.
func taxCurrency(p Payment) string {
	if p.TaxCurrency != "" {
		return p.TaxCurrency
	}
	return p.Currency
}

// builder accumulates the first conversion error so call sites stay flat.
type builder struct {
	err error
}

func (b *builder) fail(field, value, reason string) {
	if b.err == nil {
		b.err = fmt.Errorf("%s: %q: %s", field, value, reason)
	}
}

func (b *builder) amount(field, value string) decimal.Decimal {
	if value == "" {
		b.fail(field, value, "amount is required")
		return decimal.Zero
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		b.fail(field, value, "not a decimal amount")
		return decimal.Zero
	}
	return d
}

func (b *builder) optAmount(field, value string) *decimal.Decimal {
	if value == "" {
		return nil
	}
	d := b.amount(field, value)
	return &d
}

func (b *builder) date(field, value string) time.Time {
	if value == "" {
		b.fail(field, value, "date is required")
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		b.fail(field, value, "not a date in YYYY-MM-DD form")
		return time.Time{}
	}
	return t
}

func (b *builder) optDate(field, value string) *time.Time {
	if value == "" {
		return nil
	}
	t := b.date(field, value)
	return &t
}

func (b *builder) period(field string, p *Period) *cii.SpecifiedPeriod {
	if p == nil {
		return nil
	}
	return &cii.SpecifiedPeriod{
		Start: b.optDate(field+".start", p.Start),
		End:   b.optDate(field+".end", p.End),
	}
}

func buildNotes(notes []Note) []cii.Note {
	out := make([]cii.Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, cii.Note{Content: n.Content, SubjectCode: n.SubjectCode})
	}
	return out
}

func reference(id string) *cii.ReferencedDocument {
	if id == "" {
		return nil
	}
	return &cii.ReferencedDocument{IssuerAssignedID: id}
}

func (b *builder) party(p Party) cii.TradeParty {
	party := cii.TradeParty{
		IDs:                p.IDs,
		Name:               p.Name,
		Email:              p.Email,
		VATRegistration:    p.VATID,
		FiscalRegistration: p.TaxID,
	}
	for _, gid := range p.GlobalIDs {
		party.GlobalIDs = append(party.GlobalIDs, cii.GlobalID{SchemeID: gid.Scheme, Value: gid.Value})
	}
	if p.Registration != nil {
		party.LegalOrganization = &cii.LegalOrganization{
			ID:                  p.Registration.ID,
			SchemeID:            p.Registration.Scheme,
			TradingBusinessName: p.Registration.TradingName,
		}
	}
	if p.Contact != nil {
		contact := &cii.TradeContact{
			PersonName:     p.Contact.Name,
			DepartmentName: p.Contact.Department,
		}
		if p.Contact.Phone != "" {
			contact.Telephone = &cii.UniversalCommunication{CompleteNumber: p.Contact.Phone}
		}
		if p.Contact.Email != "" {
			contact.Email = &cii.UniversalCommunication{URIID: p.Contact.Email}
		}
		party.Contact = contact
	}
	if p.Address != nil {
		party.Address = &cii.TradeAddress{
			Postcode:           p.Address.Postcode,
			LineOne:            p.Address.Line1,
			LineTwo:            p.Address.Line2,
			LineThree:          p.Address.Line3,
			City:               p.Address.City,
			CountryID:          p.Address.Country,
			CountrySubDivision: p.Address.Region,
		}
	}
	return party
}

func (b *builder) partyPtr(p *Party) *cii.TradeParty {
	if p == nil {
		return nil
	}
	party := b.party(*p)
	return &party
}

func buildPaymentMeans(m PaymentMeans) cii.TradeSettlementPaymentMeans {
	means := cii.TradeSettlementPaymentMeans{
		TypeCode:    codes.PaymentMeansCode(m.TypeCode),
		Information: m.Information,
	}
	if m.PayerIBAN != "" {
		means.PayerAccount = &cii.DebtorFinancialAccount{IBAN: m.PayerIBAN}
	}
	if m.PayeeIBAN != "" || m.PayeeProprietaryID != "" {
		means.PayeeAccount = &cii.CreditorFinancialAccount{
			IBAN:          m.PayeeIBAN,
			AccountName:   m.PayeeAccountName,
			ProprietaryID: m.PayeeProprietaryID,
		}
	}
	if m.PayeeBIC != "" {
		means.PayeeInstitution = &cii.CreditorFinancialInstitution{BIC: m.PayeeBIC}
	}
	if m.Card != nil {
		means.FinancialCard = &cii.TradeSettlementFinancialCard{
			ID:             m.Card.ID,
			CardholderName: m.Card.Holder,
		}
	}
	return means
}

func (b *builder) tax(field string, t Tax) cii.TradeTax {
	tax := cii.TradeTax{
		CalculatedAmount:    b.optAmount(field+".calculated", t.Calculated),
		TypeCode:            taxType(t.Type),
		ExemptionReason:     t.ExemptionReason,
		BasisAmount:         b.optAmount(field+".basis", t.Basis),
		CategoryCode:        codes.TaxCategoryCode(t.Category),
		ExemptionReasonCode: codes.VATExemptionReasonCode(t.ExemptionReasonCode),
		DueDateTypeCode:     codes.TimeReferenceCode(t.DueDateTypeCode),
		RatePercent:         b.optAmount(field+".rate", t.Rate),
	}
	tax.TaxPointDate = b.optDate(field+".tax_point_date", t.TaxPointDate)
	return tax
}

func taxType(s string) codes.TaxTypeCode {
	if s == "" {
		return codes.ValueAddedTax
	}
	return codes.TaxTypeCode(s)
}

func (b *builder) discount(field string, d Discount, charge bool) cii.TradeAllowanceCharge {
	ac := cii.TradeAllowanceCharge{
		Charge:             charge,
		CalculationPercent: b.optAmount(field+".percent", d.Percent),
		BasisAmount:        b.optAmount(field+".basis", d.Basis),
		ActualAmount:       b.amount(field+".amount", d.Amount),
		ReasonCode:         codes.AllowanceChargeReasonCode(d.ReasonCode),
		Reason:             d.Reason,
	}
	if d.TaxCategory != "" {
		ac.CategoryTax = &cii.TradeTax{
			TypeCode:     taxType(d.TaxType),
			CategoryCode: codes.TaxCategoryCode(d.TaxCategory),
			RatePercent:  b.optAmount(field+".tax_rate", d.TaxRate),
		}
	}
	return ac
}

func (b *builder) line(field string, l Line) cii.SupplyChainTradeLineItem {
	li := cii.SupplyChainTradeLineItem{
		Document: cii.DocumentLineDocument{LineID: l.ID},
		Product: cii.TradeProduct{
			SellerAssignedID: l.Product.SellerID,
			BuyerAssignedID:  l.Product.BuyerID,
			Name:             l.Product.Name,
			Description:      l.Product.Description,
		},
		Delivery: cii.LineTradeDelivery{
			BilledQuantity: b.amount(field+".quantity", l.Quantity),
			Unit:           codes.UnitCode(l.Unit),
		},
	}
	if l.Note != "" {
		li.Document.Note = &cii.Note{Content: l.Note}
	}
	if l.Product.GlobalID != nil {
		li.Product.GlobalID = &cii.GlobalID{SchemeID: l.Product.GlobalID.Scheme, Value: l.Product.GlobalID.Value}
	}
	if l.Product.OriginCountry != "" {
		li.Product.OriginCountry = &cii.TradeCountry{CountryID: l.Product.OriginCountry}
	}
	for _, c := range l.Product.Characteristics {
		li.Product.Characteristics = append(li.Product.Characteristics, cii.ProductCharacteristic{
			Description: c.Description,
			Value:       c.Value,
		})
	}
	for _, c := range l.Product.Classifications {
		li.Product.Classifications = append(li.Product.Classifications, cii.ProductClassification{
			ListID:    c.ListID,
			ClassCode: c.Code,
		})
	}

	li.Agreement = cii.LineTradeAgreement{
		NetPrice: cii.TradePrice{
			ChargeAmount:  b.amount(field+".price.net", l.Price.Net),
			BasisQuantity: b.optAmount(field+".price.basis_quantity", l.Price.BasisQuantity),
			Unit:          codes.UnitCode(l.Unit),
		},
	}
	if l.Price.Gross != "" {
		gross := &cii.TradePrice{
			ChargeAmount:  b.amount(field+".price.gross", l.Price.Gross),
			BasisQuantity: b.optAmount(field+".price.basis_quantity", l.Price.BasisQuantity),
			Unit:          codes.UnitCode(l.Unit),
		}
		if l.Price.Discount != "" {
			gross.AppliedAllowanceCharge = &cii.TradeAllowanceCharge{
				ActualAmount: b.amount(field+".price.discount", l.Price.Discount),
			}
		}
		li.Agreement.GrossPrice = gross
	}
	if l.BuyerOrderLineID != "" {
		li.Agreement.BuyerOrderReference = &cii.ReferencedDocument{LineID: l.BuyerOrderLineID}
	}

	li.Settlement = cii.LineTradeSettlement{
		Tax: cii.TradeTax{
			TypeCode:     taxType(l.Tax.Type),
			CategoryCode: codes.TaxCategoryCode(l.Tax.Category),
			RatePercent:  b.optAmount(field+".tax.rate", l.Tax.Rate),
		},
		Summation: cii.TradeSettlementLineMonetarySummation{
			LineTotal: b.amount(field+".total", l.Total),
		},
		BillingPeriod: b.period(field+".period", l.Period),
	}
	for i, al := range l.Allowances {
		li.Settlement.AllowanceCharges = append(li.Settlement.AllowanceCharges,
			b.discount(fmt.Sprintf("%s.allowances[%d]", field, i), al, false))
	}
	for i, ch := range l.Charges {
		li.Settlement.AllowanceCharges = append(li.Settlement.AllowanceCharges,
			b.discount(fmt.Sprintf("%s.charges[%d]", field, i), ch, true))
	}
	return li
}

// buildAttachment loads the referenced file and wraps it as an additional
// referenced document.
func buildAttachment(a Attachment) (*cii.ReferencedDocument, error) {
	obj, err := attachment.Load(a.Path)
	if err != nil {
		return nil, err
	}
	id := a.ID
	if id == "" {
		id = obj.Filename
	}
	typeCode := codes.DocumentTypeCode(a.TypeCode)
	if typeCode == 0 {
		typeCode = codes.RelatedDocument
	}
	return &cii.ReferencedDocument{
		IssuerAssignedID: id,
		TypeCode:         typeCode,
		Name:             a.Description,
		Attachment:       obj,
	}, nil
}
