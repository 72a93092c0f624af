package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculate_MenuScenario(t *testing.T) {
	// 2x medium pizza at 16.95 plus 1x pasta at 10.95
	got := Calculate([]Line{
		{UnitPrice: d("16.95"), Quantity: 2},
		{UnitPrice: d("10.95"), Quantity: 1},
	})

	require.True(t, got.Subtotal.Equal(d("44.85")), "subtotal=%s", got.Subtotal)
	require.True(t, got.Tax.Equal(d("3.588")), "tax=%s", got.Tax)
	require.True(t, got.Total.Equal(d("48.438")), "total=%s", got.Total)
}

func TestCalculate_TotalIsSubtotalPlusTax(t *testing.T) {
	got := Calculate([]Line{
		{UnitPrice: d("9.99"), Quantity: 3},
		{UnitPrice: d("0.01"), Quantity: 7},
	})

	assert.True(t, got.Tax.Equal(got.Subtotal.Mul(TaxRate)))
	assert.True(t, got.Total.Equal(got.Subtotal.Add(got.Tax)))
}

func TestCalculate_Empty(t *testing.T) {
	got := Calculate(nil)

	assert.True(t, got.Subtotal.IsZero())
	assert.True(t, got.Tax.IsZero())
	assert.True(t, got.Total.IsZero())
}

func TestCalculate_NoPrematureRounding(t *testing.T) {
	// 1.05 * 0.08 = 0.084: a cent-rounded implementation would answer 0.08
	got := Calculate([]Line{{UnitPrice: d("1.05"), Quantity: 1}})

	assert.True(t, got.Tax.Equal(d("0.084")), "tax=%s", got.Tax)
	assert.True(t, got.Total.Equal(d("1.134")), "total=%s", got.Total)
}
