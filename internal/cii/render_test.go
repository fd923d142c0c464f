package cii_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/facturx/internal/cii"
	"github.com/rezonia/facturx/internal/profile"
)

func childTags(el *etree.Element) []string {
	var tags []string
	for _, c := range el.ChildElements() {
		tags = append(tags, c.Space+":"+c.Tag)
	}
	return tags
}

func TestExchangedDocument_NoteGating(t *testing.T) {
	doc := cii.ExchangedDocument{
		ID:        "INV-001",
		IssueDate: time.Date(2025, 4, 25, 0, 0, 0, 0, time.UTC),
		Notes:     []cii.Note{{Content: "thanks for your order"}},
	}

	// Below BASICWL the note must be omitted, not rejected.
	el := doc.Render("ExchangedDocument", profile.Minimum)
	assert.Nil(t, el.FindElement("ram:IncludedNote"))

	el = doc.Render("ExchangedDocument", profile.BasicWL)
	notes := el.FindElements("ram:IncludedNote")
	require.Len(t, notes, 1)
	assert.Equal(t, "thanks for your order", notes[0].FindElement("ram:Content").Text())
}

func TestExchangedDocument_DateFormat(t *testing.T) {
	doc := cii.ExchangedDocument{
		ID:        "INV-001",
		IssueDate: time.Date(2025, 4, 25, 0, 0, 0, 0, time.UTC),
	}

	el := doc.Render("ExchangedDocument", profile.Minimum)
	ds := el.FindElement("ram:IssueDateTime/udt:DateTimeString")
	require.NotNil(t, ds)
	assert.Equal(t, "20250425", ds.Text())
	assert.Equal(t, "102", ds.SelectAttrValue("format", ""))
}

func TestExchangedDocument_DefaultTypeCode(t *testing.T) {
	doc := cii.ExchangedDocument{ID: "INV-001", IssueDate: time.Now()}
	el := doc.Render("ExchangedDocument", profile.Minimum)
	assert.Equal(t, "380", el.FindElement("ram:TypeCode").Text())
}

func TestTradeAddress_ProfileGating(t *testing.T) {
	addr := cii.TradeAddress{
		Postcode:  "75001",
		LineOne:   "1 Rue de Rivoli",
		City:      "Paris",
		CountryID: "FR",
	}

	min := addr.Render("PostalTradeAddress", profile.Minimum)
	assert.Equal(t, []string{"ram:CountryID"}, childTags(min))

	wl := addr.Render("PostalTradeAddress", profile.BasicWL)
	assert.Equal(t,
		[]string{"ram:PostcodeCode", "ram:LineOne", "ram:CityName", "ram:CountryID"},
		childTags(wl))
}

func TestTradeParty_ChildOrder(t *testing.T) {
	party := cii.TradeParty{
		IDs:               []string{"S-1"},
		GlobalIDs:         []cii.GlobalID{{SchemeID: "0088", Value: "587451236587"}},
		Name:              "Seller SAS",
		LegalOrganization: &cii.LegalOrganization{ID: "123456789"},
		Address:           &cii.TradeAddress{CountryID: "FR"},
		Email:             "billing@seller.example.com",
		VATRegistration:   "FR11123456782",
	}

	el := party.Render("SellerTradeParty", profile.EN16931)
	assert.Equal(t, []string{
		"ram:ID",
		"ram:GlobalID",
		"ram:Name",
		"ram:SpecifiedLegalOrganization",
		"ram:PostalTradeAddress",
		"ram:URIUniversalCommunication",
		"ram:SpecifiedTaxRegistration",
	}, childTags(el))

	gid := el.FindElement("ram:GlobalID")
	assert.Equal(t, "0088", gid.SelectAttrValue("schemeID", ""))

	uri := el.FindElement("ram:URIUniversalCommunication/ram:URIID")
	require.NotNil(t, uri)
	assert.Equal(t, "EM", uri.SelectAttrValue("schemeID", ""))

	vat := el.FindElement("ram:SpecifiedTaxRegistration/ram:ID")
	require.NotNil(t, vat)
	assert.Equal(t, "VA", vat.SelectAttrValue("schemeID", ""))
}

func TestTradeParty_MinimumHidesIdentifiers(t *testing.T) {
	party := cii.TradeParty{
		IDs:   []string{"S-1"},
		Name:  "Seller SAS",
		Email: "billing@seller.example.com",
	}

	el := party.Render("SellerTradeParty", profile.Minimum)
	assert.Equal(t, []string{"ram:Name"}, childTags(el))
}

func TestRender_Deterministic(t *testing.T) {
	party := cii.TradeParty{
		Name:    "Seller SAS",
		Address: &cii.TradeAddress{CountryID: "DE", City: "Berlin", Postcode: "10115"},
	}

	a := party.Render("SellerTradeParty", profile.Basic)
	b := party.Render("SellerTradeParty", profile.Basic)

	docA, docB := etree.NewDocument(), etree.NewDocument()
	docA.AddChild(a)
	docB.AddChild(b)
	strA, err := docA.WriteToString()
	require.NoError(t, err)
	strB, err := docB.WriteToString()
	require.NoError(t, err)
	assert.Equal(t, strA, strB)
}

func TestTradeAllowanceCharge_Indicator(t *testing.T) {
	ac := cii.TradeAllowanceCharge{
		Charge:       false,
		ActualAmount: dec("10.00"),
		Reason:       "Volume discount",
	}

	el := ac.Render("SpecifiedTradeAllowanceCharge", profile.Basic)
	ind := el.FindElement("ram:ChargeIndicator/udt:Indicator")
	require.NotNil(t, ind)
	assert.Equal(t, "false", ind.Text())

	ac.Charge = true
	el = ac.Render("SpecifiedTradeAllowanceCharge", profile.Basic)
	assert.Equal(t, "true", el.FindElement("ram:ChargeIndicator/udt:Indicator").Text())
}

func TestTradeTax_TaxPointDateGating(t *testing.T) {
	tpd := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	tax := cii.TradeTax{
		TypeCode:     "VAT",
		CategoryCode: "S",
		RatePercent:  decp("19"),
		TaxPointDate: &tpd,
	}

	el := tax.Render("ApplicableTradeTax", profile.Basic)
	assert.Nil(t, el.FindElement("ram:TaxPointDate"))

	el = tax.Render("ApplicableTradeTax", profile.EN16931)
	ds := el.FindElement("ram:TaxPointDate/udt:DateString")
	require.NotNil(t, ds)
	assert.Equal(t, "20250331", ds.Text())
	assert.Equal(t, "102", ds.SelectAttrValue("format", ""))

	assert.Equal(t, "19.00", el.FindElement("ram:RateApplicablePercent").Text())
}

func TestHeaderMonetarySummation_RenderGating(t *testing.T) {
	s := cii.HeaderMonetarySummation{
		LineTotal:     decp("100"),
		TaxBasisTotal: dec("100"),
		TaxTotal:      decp("4.90"),
		TaxCurrency:   "EUR",
		GrandTotal:    dec("104.90"),
		DuePayable:    dec("104.90"),
	}

	min := s.Render("SpecifiedTradeSettlementHeaderMonetarySummation", profile.Minimum)
	assert.Equal(t, []string{
		"ram:TaxBasisTotalAmount",
		"ram:TaxTotalAmount",
		"ram:GrandTotalAmount",
		"ram:DuePayableAmount",
	}, childTags(min))

	tt := min.FindElement("ram:TaxTotalAmount")
	assert.Equal(t, "EUR", tt.SelectAttrValue("currencyID", ""))
	assert.Equal(t, "4.90", tt.Text())
	// Most amounts carry no currency attribute.
	assert.Nil(t, min.FindElement("ram:GrandTotalAmount").SelectAttr("currencyID"))

	wl := s.Render("SpecifiedTradeSettlementHeaderMonetarySummation", profile.BasicWL)
	assert.Equal(t, "100.00", wl.FindElement("ram:LineTotalAmount").Text())
}

func TestReferencedDocument_GatedFields(t *testing.T) {
	issued := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	ref := cii.ReferencedDocument{
		IssuerAssignedID: "ORDER-42",
		TypeCode:         916,
		Name:             "support sheet",
		IssueDate:        &issued,
	}

	basic := ref.Render("AdditionalReferencedDocument", profile.Basic)
	assert.Equal(t, []string{"ram:IssuerAssignedID"}, childTags(basic))

	full := ref.Render("AdditionalReferencedDocument", profile.EN16931)
	assert.Equal(t, "916", full.FindElement("ram:TypeCode").Text())
	ds := full.FindElement("ram:FormattedIssueDateTime/qdt:DateTimeString")
	require.NotNil(t, ds)
	assert.Equal(t, "20250110", ds.Text())
}

func TestBinaryObject_Render(t *testing.T) {
	obj := cii.BinaryObject{
		ContentB64: "aGVsbG8=",
		MimeCode:   "application/pdf",
		Filename:   "report.pdf",
	}

	el := obj.Render("AttachmentBinaryObject", profile.EN16931)
	assert.Equal(t, "aGVsbG8=", el.Text())
	assert.Equal(t, "application/pdf", el.SelectAttrValue("mimeCode", ""))
	assert.Equal(t, "report.pdf", el.SelectAttrValue("filename", ""))
}
