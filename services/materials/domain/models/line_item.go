package models

import (
	"fmt"
	"math"
)

// LineItem is one material entry in a bill of materials.
//
// Code, Name, and Unit may be empty — a row typed by hand on the form often
// has only a description and a quantity, and an absent field defaults to ""
// rather than failing the submission. Name falls back to a placeholder at
// render time. Qty is strictly positive for every item that reaches a
// repository or the renderer; candidates violating that are dropped during
// collection and never stored.
type LineItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Unit string `json:"unit"`
	Qty  float64 `json:"qty"`
}

// NewLineItem constructs a LineItem, enforcing the positive-quantity
// invariant. Quantities must also be finite: ParseFloat accepts "Inf", but
// an infinite quantity cannot be serialized to the items column.
func NewLineItem(code, name, unit string, qty float64) (LineItem, error) {
	if !(qty > 0) { // rejects zero, negatives, and NaN
		return LineItem{}, fmt.Errorf("line item quantity must be positive, got %v", qty)
	}
	if math.IsInf(qty, 0) {
		return LineItem{}, fmt.Errorf("line item quantity must be finite, got %v", qty)
	}
	return LineItem{Code: code, Name: name, Unit: unit, Qty: qty}, nil
}

// String renders the item for log output.
func (li LineItem) String() string {
	return fmt.Sprintf("%s %q x%v %s", li.Code, li.Name, li.Qty, li.Unit)
}
