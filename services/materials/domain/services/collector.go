// Package services contains stateless domain services for the materials
// bounded context. They operate purely on domain types and have zero
// dependencies beyond stdlib and the domain layer.
package services

import (
	"strconv"
	"strings"

	"github.com/ghuser/solarbom/services/materials/domain"
	"github.com/ghuser/solarbom/services/materials/domain/models"
)

// The entry form encodes a dynamic number of candidate rows in a flat field
// namespace. Each row is identified by a suffix token shared across four
// sibling fields:
//
//	qty_<suffix>   quantity (decides whether the row is kept)
//	code_<suffix>  catalog code
//	name_<suffix>  description
//	unit_<suffix>  unit of measure
//
// Fixed catalog rows use a numeric index as the suffix ("qty_3"); rows added
// dynamically on the client use an "extra_<token>" suffix ("qty_extra_17123").
// Both are handled by the same rule: the token is whatever follows "qty_".
const (
	qtyFieldPrefix  = "qty_"
	codeFieldPrefix = "code_"
	nameFieldPrefix = "name_"
	unitFieldPrefix = "unit_"
)

// FormField is one name/value pair from a form-encoded submission.
//
// Submissions are passed as an ordered slice, not a map: output order is the
// wire order of the quantity fields, which is the contract callers may rely
// on. (Browsers send fields in DOM order, so this matches what the operator
// saw on screen.)
type FormField struct {
	Name  string
	Value string
}

// CollectFromForm converts a form submission into an ordered list of line
// items, one per quantity field carrying a parseable, strictly positive
// number.
//
// Per-candidate fallback policy:
//   - quantity empty, non-numeric, zero, negative, NaN, or infinite →
//     candidate dropped silently, never an error
//   - code/name/unit sibling absent → field defaults to ""
//
// Every quantity field occurrence is an independent candidate; duplicate
// suffixes are not merged or summed.
//
// Returns domain.ErrNoItemsSelected when no candidate survives, so callers
// never persist an empty list.
func CollectFromForm(fields []FormField) ([]models.LineItem, error) {
	// First occurrence wins for sibling lookups.
	byName := make(map[string]string, len(fields))
	for _, f := range fields {
		if _, ok := byName[f.Name]; !ok {
			byName[f.Name] = f.Value
		}
	}

	var items []models.LineItem
	for _, f := range fields {
		if !strings.HasPrefix(f.Name, qtyFieldPrefix) {
			continue
		}
		suffix := f.Name[len(qtyFieldPrefix):]

		qty, err := strconv.ParseFloat(strings.TrimSpace(f.Value), 64)
		if err != nil || !(qty > 0) {
			continue
		}

		item, err := models.NewLineItem(
			byName[codeFieldPrefix+suffix],
			byName[nameFieldPrefix+suffix],
			byName[unitFieldPrefix+suffix],
			qty,
		)
		if err != nil {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, domain.ErrNoItemsSelected
	}
	return items, nil
}

// ItemInput is one candidate row from a structured (JSON) submission.
// The array is ordered; order is preserved in the output.
type ItemInput struct {
	Code string  `json:"code"`
	Name string  `json:"name"`
	Unit string  `json:"unit"`
	Qty  float64 `json:"qty"`
}

// CollectItems applies the same keep/drop rule as CollectFromForm to an
// explicit ordered array of candidates: rows with qty ≤ 0 (or NaN/Inf) are
// dropped silently, and an all-dropped submission yields
// domain.ErrNoItemsSelected.
func CollectItems(in []ItemInput) ([]models.LineItem, error) {
	var items []models.LineItem
	for _, c := range in {
		item, err := models.NewLineItem(c.Code, c.Name, c.Unit, c.Qty)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, domain.ErrNoItemsSelected
	}
	return items, nil
}
