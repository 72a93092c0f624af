package cart

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/catalog"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testProduct() *catalog.Product {
	return &catalog.Product{
		ID:    "prod-1",
		Name:  "Buffalo Chicken Pizza",
		Price: d("18.95"),
		Sizes: []catalog.Size{
			{Name: `Medium 12"`, Price: d("16.95")},
			{Name: `Large 14"`, Price: d("18.95")},
		},
	}
}

func TestAddItem_SameKeyMergesAndKeepsFirstSnapshot(t *testing.T) {
	e := NewEngine()
	p := testProduct()

	require.NoError(t, e.AddItem(p, `Medium 12"`, 2))

	// The menu price changes between the two adds; the argument passed at
	// call time is what a size lookup sees now.
	p.Sizes[0].Price = d("99.00")
	require.NoError(t, e.AddItem(p, `Medium 12"`, 1))

	lines := e.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.True(t, lines[0].UnitPrice.Equal(d("16.95")), "snapshot must stay at first-add price, got %s", lines[0].UnitPrice)
}

func TestAddItem_DifferentSizesAreDistinctLines(t *testing.T) {
	e := NewEngine()
	p := testProduct()

	require.NoError(t, e.AddItem(p, `Medium 12"`, 1))
	require.NoError(t, e.AddItem(p, `Large 14"`, 1))
	require.NoError(t, e.AddItem(p, "", 1)) // base price, no size

	lines := e.Lines()
	require.Len(t, lines, 3)
	assert.True(t, lines[0].UnitPrice.Equal(d("16.95")))
	assert.True(t, lines[1].UnitPrice.Equal(d("18.95")))
	assert.True(t, lines[2].UnitPrice.Equal(d("18.95")))
	assert.Equal(t, 3, e.Count())
}

func TestAddItem_Validation(t *testing.T) {
	e := NewEngine()
	p := testProduct()

	assert.ErrorIs(t, e.AddItem(p, "", 0), ErrQuantityInvalid)
	assert.ErrorIs(t, e.AddItem(p, "", -2), ErrQuantityInvalid)
	assert.ErrorIs(t, e.AddItem(p, "Family 20\"", 1), ErrUnknownSize)
	assert.Empty(t, e.Lines())
}

func TestUpdateQuantity(t *testing.T) {
	e := NewEngine()
	p := testProduct()
	key := Key{ProductID: p.ID, Size: `Medium 12"`}

	require.NoError(t, e.AddItem(p, `Medium 12"`, 2))

	e.UpdateQuantity(key, 5) // absolute, not additive
	require.Len(t, e.Lines(), 1)
	assert.Equal(t, 5, e.Lines()[0].Quantity)

	e.UpdateQuantity(key, 0)
	assert.Empty(t, e.Lines())

	// repeating on the now-absent key stays a no-op
	e.UpdateQuantity(key, -5)
	e.UpdateQuantity(key, 0)
	assert.Empty(t, e.Lines())
}

func TestRemoveItem_IdempotentOnAbsentKey(t *testing.T) {
	e := NewEngine()
	p := testProduct()
	require.NoError(t, e.AddItem(p, "", 1))

	e.RemoveItem(Key{ProductID: "nope"})
	require.Len(t, e.Lines(), 1)

	e.RemoveItem(Key{ProductID: p.ID})
	assert.Empty(t, e.Lines())
	e.RemoveItem(Key{ProductID: p.ID})
	assert.Empty(t, e.Lines())
}

func TestInsertionOrderPreserved(t *testing.T) {
	e := NewEngine()
	p := testProduct()

	require.NoError(t, e.AddItem(p, `Medium 12"`, 1))
	require.NoError(t, e.AddItem(p, `Large 14"`, 1))
	// updating the first line must not move it
	require.NoError(t, e.AddItem(p, `Medium 12"`, 1))

	lines := e.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, `Medium 12"`, lines[0].Size)
	assert.Equal(t, `Large 14"`, lines[1].Size)
}

func TestTotals(t *testing.T) {
	e := NewEngine()
	p := testProduct()

	require.NoError(t, e.AddItem(p, `Medium 12"`, 2)) // 16.95 x2
	other := &catalog.Product{ID: "prod-2", Name: "Lasagna", Price: d("10.95")}
	require.NoError(t, e.AddItem(other, "", 1))

	got := e.Totals()
	assert.True(t, got.Subtotal.Equal(d("44.85")), "subtotal=%s", got.Subtotal)
	assert.True(t, got.Tax.Equal(d("3.588")), "tax=%s", got.Tax)
	assert.True(t, got.Total.Equal(d("48.438")), "total=%s", got.Total)

	e.Clear()
	assert.True(t, e.Totals().Total.IsZero())
	assert.Zero(t, e.Count())
}

func TestEngine_ConcurrentAdds(t *testing.T) {
	e := NewEngine()
	p := testProduct()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = e.AddItem(p, "", 1)
		}()
	}
	wg.Wait()

	require.Len(t, e.Lines(), 1)
	assert.Equal(t, 50, e.Count())
}

func TestCheckoutGuard(t *testing.T) {
	e := NewEngine()

	require.NoError(t, e.BeginCheckout())
	assert.ErrorIs(t, e.BeginCheckout(), ErrCheckoutBusy)
	e.EndCheckout()
	assert.NoError(t, e.BeginCheckout())
	e.EndCheckout()
}

func TestManager_SessionsOwnTheirEngines(t *testing.T) {
	m := NewManager()

	a := m.Get("session-a")
	b := m.Get("session-b")
	assert.NotSame(t, a, b)
	assert.Same(t, a, m.Get("session-a"))

	require.NoError(t, a.AddItem(testProduct(), "", 1))
	m.Forget("session-a")
	assert.Empty(t, m.Get("session-a").Lines())
}
