// Package docio reads invoice documents written by hand in YAML or JSON
// and converts them into the internal invoice graph. Amounts stay strings
// until conversion so nothing passes through binary floating point.
package docio

// Document is the root of an invoice input file.
type Document struct {
	Profile           string `yaml:"profile" json:"profile,omitempty"`
	BusinessProcessID string `yaml:"business_process_id" json:"business_process_id,omitempty"`

	Invoice Header `yaml:"invoice" json:"invoice"`

	Seller            Party  `yaml:"seller" json:"seller"`
	Buyer             Party  `yaml:"buyer" json:"buyer"`
	Payee             *Party `yaml:"payee" json:"payee,omitempty"`
	ShipTo            *Party `yaml:"ship_to" json:"ship_to,omitempty"`
	TaxRepresentative *Party `yaml:"tax_representative" json:"tax_representative,omitempty"`

	BuyerReference string       `yaml:"buyer_reference" json:"buyer_reference,omitempty"`
	References     References   `yaml:"references" json:"references"`
	Delivery       *Delivery    `yaml:"delivery" json:"delivery,omitempty"`
	Payment        Payment      `yaml:"payment" json:"payment"`
	Taxes          []Tax        `yaml:"taxes" json:"taxes,omitempty"`
	Allowances     []Discount   `yaml:"allowances" json:"allowances,omitempty"`
	Charges        []Discount   `yaml:"charges" json:"charges,omitempty"`
	Totals         Totals       `yaml:"totals" json:"totals"`
	Lines          []Line       `yaml:"lines" json:"lines,omitempty"`
	Attachments    []Attachment `yaml:"attachments" json:"attachments,omitempty"`
}

// Header holds the invoice number, type and issue date.
type Header struct {
	ID        string `yaml:"id" json:"id"`
	TypeCode  int    `yaml:"type_code" json:"type_code,omitempty"`
	IssueDate string `yaml:"issue_date" json:"issue_date"`
	Notes     []Note `yaml:"notes" json:"notes,omitempty"`
}

// Note is free text attached to the document.
type Note struct {
	Content     string `yaml:"content" json:"content"`
	SubjectCode string `yaml:"subject_code" json:"subject_code,omitempty"`
}

// Party describes any of the trade parties.
type Party struct {
	Name      string     `yaml:"name" json:"name"`
	IDs       []string   `yaml:"ids" json:"ids,omitempty"`
	GlobalIDs []SchemeID `yaml:"global_ids" json:"global_ids,omitempty"`

	Registration *Registration `yaml:"registration" json:"registration,omitempty"`
	Contact      *Contact      `yaml:"contact" json:"contact,omitempty"`
	Address      *Address      `yaml:"address" json:"address,omitempty"`

	Email string `yaml:"email" json:"email,omitempty"`
	VATID string `yaml:"vat_id" json:"vat_id,omitempty"`
	TaxID string `yaml:"tax_id" json:"tax_id,omitempty"`
}

// SchemeID is an identifier qualified by an ICD scheme.
type SchemeID struct {
	Scheme string `yaml:"scheme" json:"scheme"`
	Value  string `yaml:"value" json:"value"`
}

// Registration is a business register entry.
type Registration struct {
	ID          string `yaml:"id" json:"id"`
	Scheme      string `yaml:"scheme" json:"scheme,omitempty"`
	TradingName string `yaml:"trading_name" json:"trading_name,omitempty"`
}

// Contact is a named contact point.
type Contact struct {
	Name       string `yaml:"name" json:"name,omitempty"`
	Department string `yaml:"department" json:"department,omitempty"`
	Phone      string `yaml:"phone" json:"phone,omitempty"`
	Email      string `yaml:"email" json:"email,omitempty"`
}

// Address is a postal address. Country is the two-letter code.
type Address struct {
	Postcode string `yaml:"postcode" json:"postcode,omitempty"`
	Line1    string `yaml:"line1" json:"line1,omitempty"`
	Line2    string `yaml:"line2" json:"line2,omitempty"`
	Line3    string `yaml:"line3" json:"line3,omitempty"`
	City     string `yaml:"city" json:"city,omitempty"`
	Country  string `yaml:"country" json:"country"`
	Region   string `yaml:"region" json:"region,omitempty"`
}

// References collects the document-level references.
type References struct {
	SellerOrderID     string             `yaml:"seller_order_id" json:"seller_order_id,omitempty"`
	BuyerOrderID      string             `yaml:"buyer_order_id" json:"buyer_order_id,omitempty"`
	ContractID        string             `yaml:"contract_id" json:"contract_id,omitempty"`
	PrecedingInvoices []PrecedingInvoice `yaml:"preceding_invoices" json:"preceding_invoices,omitempty"`
	Project           *Project           `yaml:"project" json:"project,omitempty"`
	AccountingAccount string             `yaml:"accounting_account" json:"accounting_account,omitempty"`
}

// PrecedingInvoice points at a corrected or credited invoice.
type PrecedingInvoice struct {
	ID        string `yaml:"id" json:"id"`
	IssueDate string `yaml:"issue_date" json:"issue_date,omitempty"`
}

// Project identifies the procuring project.
type Project struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// Delivery holds shipping data.
type Delivery struct {
	Date              string `yaml:"date" json:"date,omitempty"`
	DespatchAdviceID  string `yaml:"despatch_advice_id" json:"despatch_advice_id,omitempty"`
	ReceivingAdviceID string `yaml:"receiving_advice_id" json:"receiving_advice_id,omitempty"`
}

// Payment groups currency, payment means and terms.
type Payment struct {
	Currency            string         `yaml:"currency" json:"currency"`
	TaxCurrency         string         `yaml:"tax_currency" json:"tax_currency,omitempty"`
	Reference           string         `yaml:"reference" json:"reference,omitempty"`
	CreditorReferenceID string         `yaml:"creditor_reference_id" json:"creditor_reference_id,omitempty"`
	Means               []PaymentMeans `yaml:"means" json:"means,omitempty"`
	Terms               *PaymentTerms  `yaml:"terms" json:"terms,omitempty"`
	BillingPeriod       *Period        `yaml:"billing_period" json:"billing_period,omitempty"`
}

// PaymentMeans is one way to pay.
type PaymentMeans struct {
	TypeCode           int    `yaml:"type_code" json:"type_code"`
	Information        string `yaml:"information" json:"information,omitempty"`
	PayerIBAN          string `yaml:"payer_iban" json:"payer_iban,omitempty"`
	PayeeIBAN          string `yaml:"payee_iban" json:"payee_iban,omitempty"`
	PayeeAccountName   string `yaml:"payee_account_name" json:"payee_account_name,omitempty"`
	PayeeProprietaryID string `yaml:"payee_proprietary_id" json:"payee_proprietary_id,omitempty"`
	PayeeBIC           string `yaml:"payee_bic" json:"payee_bic,omitempty"`
	Card               *Card  `yaml:"card" json:"card,omitempty"`
}

// Card is a truncated payment card reference.
type Card struct {
	ID     string `yaml:"id" json:"id"`
	Holder string `yaml:"holder" json:"holder,omitempty"`
}

// PaymentTerms states when payment is due.
type PaymentTerms struct {
	Description string `yaml:"description" json:"description,omitempty"`
	DueDate     string `yaml:"due_date" json:"due_date,omitempty"`
	MandateID   string `yaml:"mandate_id" json:"mandate_id,omitempty"`
}

// Period is a date range.
type Period struct {
	Start string `yaml:"start" json:"start,omitempty"`
	End   string `yaml:"end" json:"end,omitempty"`
}

// Tax is one entry of the VAT breakdown.
type Tax struct {
	Calculated          string `yaml:"calculated" json:"calculated,omitempty"`
	Type                string `yaml:"type" json:"type,omitempty"`
	Basis               string `yaml:"basis" json:"basis,omitempty"`
	Category            string `yaml:"category" json:"category"`
	Rate                string `yaml:"rate" json:"rate,omitempty"`
	ExemptionReason     string `yaml:"exemption_reason" json:"exemption_reason,omitempty"`
	ExemptionReasonCode string `yaml:"exemption_reason_code" json:"exemption_reason_code,omitempty"`
	TaxPointDate        string `yaml:"tax_point_date" json:"tax_point_date,omitempty"`
	DueDateTypeCode     int    `yaml:"due_date_type_code" json:"due_date_type_code,omitempty"`
}

// Discount is a document or line level allowance or charge. Whether it is
// an allowance or a charge follows from the list it appears in.
type Discount struct {
	Percent     string `yaml:"percent" json:"percent,omitempty"`
	Basis       string `yaml:"basis" json:"basis,omitempty"`
	Amount      string `yaml:"amount" json:"amount"`
	ReasonCode  int    `yaml:"reason_code" json:"reason_code,omitempty"`
	Reason      string `yaml:"reason" json:"reason,omitempty"`
	TaxType     string `yaml:"tax_type" json:"tax_type,omitempty"`
	TaxCategory string `yaml:"tax_category" json:"tax_category,omitempty"`
	TaxRate     string `yaml:"tax_rate" json:"tax_rate,omitempty"`
}

// Totals is the document monetary summation. Empty optional fields stay
// absent from the XML.
type Totals struct {
	Lines      string `yaml:"lines" json:"lines,omitempty"`
	Charges    string `yaml:"charges" json:"charges,omitempty"`
	Allowances string `yaml:"allowances" json:"allowances,omitempty"`
	TaxBasis   string `yaml:"tax_basis" json:"tax_basis"`
	Tax        string `yaml:"tax" json:"tax,omitempty"`
	Rounding   string `yaml:"rounding" json:"rounding,omitempty"`
	Grand      string `yaml:"grand" json:"grand"`
	Prepaid    string `yaml:"prepaid" json:"prepaid,omitempty"`
	Due        string `yaml:"due" json:"due"`
}

// Line is one invoice line.
type Line struct {
	ID       int     `yaml:"id" json:"id"`
	Note     string  `yaml:"note" json:"note,omitempty"`
	Product  Product `yaml:"product" json:"product"`
	Price    Price   `yaml:"price" json:"price"`
	Quantity string  `yaml:"quantity" json:"quantity"`
	Unit     string  `yaml:"unit" json:"unit,omitempty"`

	Tax        LineTax    `yaml:"tax" json:"tax"`
	Allowances []Discount `yaml:"allowances" json:"allowances,omitempty"`
	Charges    []Discount `yaml:"charges" json:"charges,omitempty"`
	Total      string     `yaml:"total" json:"total"`
	Period     *Period    `yaml:"period" json:"period,omitempty"`

	BuyerOrderLineID string `yaml:"buyer_order_line_id" json:"buyer_order_line_id,omitempty"`
}

// Product describes the invoiced article.
type Product struct {
	Name            string           `yaml:"name" json:"name"`
	Description     string           `yaml:"description" json:"description,omitempty"`
	SellerID        string           `yaml:"seller_id" json:"seller_id,omitempty"`
	BuyerID         string           `yaml:"buyer_id" json:"buyer_id,omitempty"`
	GlobalID        *SchemeID        `yaml:"global_id" json:"global_id,omitempty"`
	OriginCountry   string           `yaml:"origin_country" json:"origin_country,omitempty"`
	Characteristics []Characteristic `yaml:"characteristics" json:"characteristics,omitempty"`
	Classifications []Classification `yaml:"classifications" json:"classifications,omitempty"`
}

// Characteristic is a described product property.
type Characteristic struct {
	Description string `yaml:"description" json:"description"`
	Value       string `yaml:"value" json:"value"`
}

// Classification is a coded product classification.
type Classification struct {
	ListID string `yaml:"list_id" json:"list_id,omitempty"`
	Code   string `yaml:"code" json:"code"`
}

// Price is the unit price. Gross and discount describe a price before a
// price-level allowance; net is what the line is charged at.
type Price struct {
	Net           string `yaml:"net" json:"net"`
	Gross         string `yaml:"gross" json:"gross,omitempty"`
	Discount      string `yaml:"discount" json:"discount,omitempty"`
	BasisQuantity string `yaml:"basis_quantity" json:"basis_quantity,omitempty"`
}

// LineTax is the VAT treatment of one line.
type LineTax struct {
	Type     string `yaml:"type" json:"type,omitempty"`
	Category string `yaml:"category" json:"category"`
	Rate     string `yaml:"rate" json:"rate,omitempty"`
}

// Attachment embeds a supporting document from disk.
type Attachment struct {
	Path        string `yaml:"path" json:"path"`
	ID          string `yaml:"id" json:"id,omitempty"`
	Description string `yaml:"description" json:"description,omitempty"`
	TypeCode    int    `yaml:"type_code" json:"type_code,omitempty"`
}
