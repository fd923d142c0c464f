package cii_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/facturx/internal/cii"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decp(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestHeaderMonetarySummation_Validate(t *testing.T) {
	s := cii.HeaderMonetarySummation{
		LineTotal:      decp("100"),
		ChargeTotal:    decp("0"),
		AllowanceTotal: decp("0"),
		TaxBasisTotal:  dec("100"),
		TaxTotal:       decp("4.90"),
		TaxCurrency:    "EUR",
		GrandTotal:     dec("104.90"),
		TotalPrepaid:   decp("0"),
		DuePayable:     dec("104.90"),
	}

	require.NoError(t, s.Validate())
}

func TestHeaderMonetarySummation_DuePayableMismatch(t *testing.T) {
	s := cii.HeaderMonetarySummation{
		LineTotal:      decp("100"),
		ChargeTotal:    decp("0"),
		AllowanceTotal: decp("0"),
		TaxBasisTotal:  dec("100"),
		TaxTotal:       decp("4.90"),
		GrandTotal:     dec("104.90"),
		TotalPrepaid:   decp("0"),
		DuePayable:     dec("100.00"),
	}

	err := s.Validate()
	require.Error(t, err)

	var cerr *cii.ConsistencyError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "due-payable", cerr.Rule)
	assert.True(t, cerr.Computed.Equal(dec("104.90")), "computed %s", cerr.Computed)
	assert.True(t, cerr.Declared.Equal(dec("100.00")))
}

func TestHeaderMonetarySummation_TaxBasisMismatch(t *testing.T) {
	s := cii.HeaderMonetarySummation{
		LineTotal:      decp("200"),
		ChargeTotal:    decp("10"),
		AllowanceTotal: decp("5"),
		TaxBasisTotal:  dec("100"), // should be 205
		GrandTotal:     dec("100"),
		DuePayable:     dec("100"),
	}

	err := s.Validate()
	require.Error(t, err)

	var cerr *cii.ConsistencyError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "tax-basis-total", cerr.Rule)
	assert.True(t, cerr.Computed.Equal(dec("205")))
}

func TestHeaderMonetarySummation_SkipsRule1WhenOperandsMissing(t *testing.T) {
	// Without line/charge/allowance totals rule 1 cannot be evaluated;
	// rules 2 and 3 still apply with missing operands as zero.
	s := cii.HeaderMonetarySummation{
		TaxBasisTotal: dec("100"),
		TaxTotal:      decp("19"),
		GrandTotal:    dec("119"),
		DuePayable:    dec("119"),
	}
	require.NoError(t, s.Validate())
}

func TestHeaderMonetarySummation_ToleranceAbsorbsRounding(t *testing.T) {
	s := cii.HeaderMonetarySummation{
		TaxBasisTotal: dec("100.00"),
		TaxTotal:      decp("19.00"),
		GrandTotal:    dec("119.01"), // off by one cent, within tolerance
		DuePayable:    dec("119.01"),
	}
	require.NoError(t, s.Validate())

	s.GrandTotal = dec("119.03") // off by three cents, outside tolerance
	s.DuePayable = dec("119.03")
	assert.Error(t, s.Validate())
}

func TestHeaderMonetarySummation_RoundingAmount(t *testing.T) {
	s := cii.HeaderMonetarySummation{
		TaxBasisTotal:  dec("100"),
		TaxTotal:       decp("19"),
		RoundingAmount: decp("0.05"),
		GrandTotal:     dec("119.05"),
		DuePayable:     dec("119.05"),
	}
	require.NoError(t, s.Validate())
}
