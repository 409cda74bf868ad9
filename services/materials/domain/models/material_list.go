package models

import (
	"fmt"
	"strings"
	"time"
)

// MaterialList is the core aggregate for this bounded context: a persisted
// bill of materials for one solar-panel installation job.
//
// ID is assigned by storage on insert and immutable thereafter.
// DocumentPath is empty until the renderer completes, then updated once.
// There is no edit-in-place of items — the only mutations over the record's
// lifetime are the document-path update and whole-record deletion.
type MaterialList struct {
	ID           int64
	Client       string
	Technician   string
	CreatedAt    time.Time
	Items        []LineItem
	DocumentPath string
}

// NewMaterialList constructs an unsaved MaterialList (ID zero until insert).
// Client and technician are required; items must be a non-empty sequence of
// already-collected line items (every Qty > 0).
func NewMaterialList(client, technician string, items []LineItem) (*MaterialList, error) {
	client = strings.TrimSpace(client)
	technician = strings.TrimSpace(technician)
	if client == "" {
		return nil, fmt.Errorf("client is required")
	}
	if technician == "" {
		return nil, fmt.Errorf("technician is required")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("material list must contain at least one item")
	}
	for i, it := range items {
		if !(it.Qty > 0) {
			return nil, fmt.Errorf("item %d: quantity must be positive, got %v", i, it.Qty)
		}
	}
	return &MaterialList{
		Client:     client,
		Technician: technician,
		CreatedAt:  time.Now().UTC(),
		Items:      items,
	}, nil
}
