package domain

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_TotalPrice(t *testing.T) {
	t.Parallel()

	t.Run("empty order totals zero", func(t *testing.T) {
		order := NewOrder()
		assert.Equal(t, 0.0, order.TotalPrice())
	})

	t.Run("demo basket totals 1100", func(t *testing.T) {
		order := NewOrder()
		order.AddItem("Keyboard", 1, 200)
		order.AddItem("SSD", 1, 800)
		order.AddItem("USB cable", 2, 50)

		assert.Equal(t, 1100.0, order.TotalPrice())
	})

	t.Run("matches sum of quantity times price", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		for n := 0; n < 50; n++ {
			order := NewOrder()
			var want float64
			lines := rng.Intn(20)
			for i := 0; i < lines; i++ {
				qty := rng.Intn(10)
				price := float64(rng.Intn(100000)) / 100
				order.AddItem("item", qty, price)
				want += float64(qty) * price
			}
			assert.InDelta(t, want, order.TotalPrice(), 1e-6)
		}
	})

	t.Run("decimal fold avoids float drift", func(t *testing.T) {
		order := NewOrder()
		for i := 0; i < 10; i++ {
			order.AddItem("sticker", 1, 0.1)
		}
		assert.Equal(t, 1.0, order.TotalPrice())
	})
}

func TestOrder_AddItemKeepsSequencesParallel(t *testing.T) {
	t.Parallel()

	order := NewOrder()
	order.AddItem("Keyboard", 1, 200)
	order.AddItem("USB cable", 2, 50)

	require.Len(t, order.Items, 2)
	require.Len(t, order.Quantities, 2)
	require.Len(t, order.Prices, 2)
	assert.Equal(t, []LineItem{
		{Name: "Keyboard", Quantity: 1, UnitPrice: 200},
		{Name: "USB cable", Quantity: 2, UnitPrice: 50},
	}, order.Lines())
}

// Line items are deliberately unvalidated: negative quantities, negative
// prices and empty names are stored and summed as given.
func TestOrder_AddItemDoesNotValidate(t *testing.T) {
	t.Parallel()

	order := NewOrder()
	order.AddItem("", -2, 10)
	order.AddItem("refund", 1, -5)

	assert.Len(t, order.Items, 2)
	assert.Equal(t, -25.0, order.TotalPrice())
}

// Non-finite prices are accepted like any other input and show up in the
// total rather than aborting the computation.
func TestOrder_TotalPriceWithNonFinitePrices(t *testing.T) {
	t.Parallel()

	inf := NewOrder()
	inf.AddItem("Keyboard", 1, 200)
	inf.AddItem("x", 1, math.Inf(1))
	assert.True(t, math.IsInf(inf.TotalPrice(), 1))

	negInf := NewOrder()
	negInf.AddItem("x", 2, math.Inf(-1))
	assert.True(t, math.IsInf(negInf.TotalPrice(), -1))

	nan := NewOrder()
	nan.AddItem("x", 1, math.NaN())
	assert.True(t, math.IsNaN(nan.TotalPrice()))

	overflow := NewOrder()
	overflow.AddItem("x", 10, 1e308)
	assert.True(t, math.IsInf(overflow.TotalPrice(), 1))
}

func TestOrder_Status(t *testing.T) {
	t.Parallel()

	order := NewOrder()
	assert.Equal(t, OrderStatusOpen, order.Status)
	assert.False(t, order.IsPaid())

	order.MarkPaid()
	assert.Equal(t, OrderStatusPaid, order.Status)
	assert.True(t, order.IsPaid())
}

func TestParsePaymentMethod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    PaymentMethod
		wantErr error
	}{
		{in: "debit", want: PaymentMethodDebit},
		{in: "Credit", want: PaymentMethodCredit},
		{in: " PAYPAL ", want: PaymentMethodPaypal},
		{in: "cash", wantErr: ErrUnknownPaymentMethod},
		{in: "", wantErr: ErrUnknownPaymentMethod},
	}

	for _, tt := range tests {
		got, err := ParsePaymentMethod(tt.in)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}
