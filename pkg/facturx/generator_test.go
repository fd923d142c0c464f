package facturx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/facturx/pkg/facturx"
)

func decp(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func sampleInvoice() *facturx.Invoice {
	return &facturx.Invoice{
		Document: facturx.ExchangedDocument{
			ID:        "INV-2025-001",
			IssueDate: time.Date(2025, 4, 25, 0, 0, 0, 0, time.UTC),
		},
		Transaction: facturx.SupplyChainTradeTransaction{
			LineItems: []facturx.SupplyChainTradeLineItem{
				{
					Document: facturx.DocumentLineDocument{LineID: 1},
					Product:  facturx.TradeProduct{Name: "Widget"},
					Agreement: facturx.LineTradeAgreement{
						NetPrice: facturx.TradePrice{ChargeAmount: decimal.RequireFromString("25.00")},
					},
					Delivery: facturx.LineTradeDelivery{
						BilledQuantity: decimal.RequireFromString("4"),
						Unit:           facturx.UnitPiece,
					},
					Settlement: facturx.LineTradeSettlement{
						Tax: facturx.TradeTax{
							TypeCode:     facturx.ValueAddedTax,
							CategoryCode: facturx.StandardRate,
							RatePercent:  decp("4.9"),
						},
						Summation: facturx.TradeSettlementLineMonetarySummation{
							LineTotal: decimal.RequireFromString("100.00"),
						},
					},
				},
			},
			Agreement: facturx.HeaderTradeAgreement{
				Seller: facturx.TradeParty{
					Name:            "Seller SAS",
					Address:         &facturx.TradeAddress{CountryID: "FR"},
					VATRegistration: "FR11123456782",
				},
				Buyer: facturx.TradeParty{
					Name:    "Buyer GmbH",
					Address: &facturx.TradeAddress{CountryID: "DE"},
				},
			},
			Settlement: facturx.HeaderTradeSettlement{
				InvoiceCurrencyCode: "EUR",
				Taxes: []facturx.TradeTax{
					{
						CalculatedAmount: decp("4.90"),
						TypeCode:         facturx.ValueAddedTax,
						BasisAmount:      decp("100.00"),
						CategoryCode:     facturx.StandardRate,
						RatePercent:      decp("4.9"),
					},
				},
				Summation: facturx.HeaderMonetarySummation{
					LineTotal:     decp("100.00"),
					TaxBasisTotal: decimal.RequireFromString("100.00"),
					TaxTotal:      decp("4.90"),
					TaxCurrency:   "EUR",
					GrandTotal:    decimal.RequireFromString("104.90"),
					DuePayable:    decimal.RequireFromString("104.90"),
				},
			},
		},
	}
}

func TestNewDefaultGenerator(t *testing.T) {
	gen := facturx.NewDefaultGenerator()
	require.NotNil(t, gen)
}

func TestDefaultGeneratorOptions(t *testing.T) {
	opts := facturx.DefaultGeneratorOptions()
	assert.False(t, opts.Lenient)
	assert.False(t, opts.SkipValidation)
	assert.Equal(t, 2, opts.Indent)
}

func TestGeneratorGenerateBytes(t *testing.T) {
	gen := facturx.NewDefaultGenerator()

	out, err := gen.GenerateBytes(sampleInvoice(), facturx.ProfileEN16931)
	require.NoError(t, err)

	xml := string(out)
	assert.Contains(t, xml, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, xml, "<rsm:CrossIndustryInvoice")
	assert.Contains(t, xml, "urn:cen.eu:en16931:2017")
	assert.Contains(t, xml, `<ram:TaxTotalAmount currencyID="EUR">4.90</ram:TaxTotalAmount>`)
}

func TestGeneratorRejectsExtended(t *testing.T) {
	gen := facturx.NewDefaultGenerator()

	_, err := gen.Generate(sampleInvoice(), facturx.ProfileExtended)
	assert.ErrorIs(t, err, facturx.ErrExtendedUnsupported)
}

func TestGeneratorRejectsUnknownProfile(t *testing.T) {
	gen := facturx.NewDefaultGenerator()

	_, err := gen.Generate(sampleInvoice(), facturx.Profile(42))
	require.Error(t, err)
	var ve *facturx.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestGeneratorStrictVsLenient(t *testing.T) {
	inv := sampleInvoice()
	// Notes require BASICWL, so strict generation at MINIMUM must fail.
	inv.Document.Notes = []facturx.Note{{Content: "payable within 30 days"}}

	strict := facturx.NewDefaultGenerator()
	_, err := strict.Generate(inv, facturx.ProfileMinimum)
	require.Error(t, err)
	var pe *facturx.ProfileError
	assert.ErrorAs(t, err, &pe)

	lenient := facturx.NewGenerator(facturx.GeneratorOptions{Lenient: true, Indent: 2})
	xml, err := lenient.GenerateString(inv, facturx.ProfileMinimum)
	require.NoError(t, err)
	assert.NotContains(t, xml, "IncludedNote")
}

func TestGeneratorInconsistentTotals(t *testing.T) {
	inv := sampleInvoice()
	inv.Transaction.Settlement.Summation.DuePayable = decimal.RequireFromString("100.00")

	gen := facturx.NewDefaultGenerator()
	_, err := gen.Generate(inv, facturx.ProfileEN16931)
	require.Error(t, err)
	var ce *facturx.ConsistencyError
	assert.ErrorAs(t, err, &ce)
}

func TestGeneratorSkipValidation(t *testing.T) {
	inv := sampleInvoice()
	inv.Transaction.Settlement.Summation.DuePayable = decimal.RequireFromString("100.00")

	gen := facturx.NewGenerator(facturx.GeneratorOptions{SkipValidation: true})
	xml, err := gen.GenerateString(inv, facturx.ProfileEN16931)
	require.NoError(t, err)
	assert.Contains(t, xml, "<ram:DuePayableAmount>100.00</ram:DuePayableAmount>")
}

func TestGeneratorProfileOutputsDiffer(t *testing.T) {
	// Lenient, because the full graph carries fields above MINIMUM.
	gen := facturx.NewGenerator(facturx.GeneratorOptions{Lenient: true})
	inv := sampleInvoice()

	min, err := gen.GenerateString(inv, facturx.ProfileMinimum)
	require.NoError(t, err)
	full, err := gen.GenerateString(inv, facturx.ProfileEN16931)
	require.NoError(t, err)

	assert.NotContains(t, min, "IncludedSupplyChainTradeLineItem")
	assert.Contains(t, full, "IncludedSupplyChainTradeLineItem")
	assert.Less(t, strings.Count(min, "<ram:"), strings.Count(full, "<ram:"))
}
