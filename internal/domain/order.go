package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusOpen OrderStatus = "open"
	OrderStatusPaid OrderStatus = "paid"
)

// Order holds line items as parallel sequences. Items, Quantities and
// Prices always have the same length.
type Order struct {
	Items      []string
	Quantities []int
	Prices     []float64
	Status     OrderStatus
}

// LineItem is a read-only view of one order line.
type LineItem struct {
	Name      string
	Quantity  int
	UnitPrice float64
}

// NewOrder returns an empty open order.
func NewOrder() *Order {
	return &Order{Status: OrderStatusOpen}
}

// AddItem appends one line. Names, quantities and prices are not validated.
func (o *Order) AddItem(name string, quantity int, unitPrice float64) {
	o.Items = append(o.Items, name)
	o.Quantities = append(o.Quantities, quantity)
	o.Prices = append(o.Prices, unitPrice)
}

// TotalPrice returns the sum of quantity * unit price over all lines.
// Infinite or NaN prices propagate into the result instead of failing.
func (o *Order) TotalPrice() float64 {
	if !o.pricesFinite() {
		var total float64
		for i := range o.Prices {
			total += float64(o.Quantities[i]) * o.Prices[i]
		}
		return total
	}

	total := decimal.Zero
	for i := range o.Prices {
		line := decimal.NewFromFloat(o.Prices[i]).Mul(decimal.NewFromInt(int64(o.Quantities[i])))
		total = total.Add(line)
	}
	return total.InexactFloat64()
}

func (o *Order) pricesFinite() bool {
	for _, p := range o.Prices {
		if math.IsInf(p, 0) || math.IsNaN(p) {
			return false
		}
	}
	return true
}

// Lines returns the order contents as records, in insertion order.
func (o *Order) Lines() []LineItem {
	lines := make([]LineItem, len(o.Items))
	for i := range o.Items {
		lines[i] = LineItem{
			Name:      o.Items[i],
			Quantity:  o.Quantities[i],
			UnitPrice: o.Prices[i],
		}
	}
	return lines
}

// IsPaid reports whether a payment has settled the order.
func (o *Order) IsPaid() bool {
	return o.Status == OrderStatusPaid
}

// MarkPaid moves the order to paid. There is no transition back to open.
func (o *Order) MarkPaid() {
	o.Status = OrderStatusPaid
}
