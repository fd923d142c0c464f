package money_test

import (
	"testing"

	dec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rezonia/facturx/internal/money"
)

func TestWithin(t *testing.T) {
	a := dec.RequireFromString("104.90")

	assert.True(t, money.Within(a, dec.RequireFromString("104.90")))
	assert.True(t, money.Within(a, dec.RequireFromString("104.92")))
	assert.True(t, money.Within(a, dec.RequireFromString("104.88")))
	assert.False(t, money.Within(a, dec.RequireFromString("104.93")))
	assert.False(t, money.Within(a, dec.RequireFromString("104.87")))
}

func TestOrZero(t *testing.T) {
	assert.True(t, money.OrZero(nil).IsZero())

	v := dec.NewFromInt(42)
	assert.True(t, money.OrZero(&v).Equal(v))
}
