package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the materials context.
const (
	// TopicListCreated is published when a material list is persisted.
	TopicListCreated = "materials.list_created"

	// TopicDocumentRendered is published when a list's PDF has been written
	// and its document path recorded.
	TopicDocumentRendered = "materials.document_rendered"
)

// ListCreatedEvent is published in the same transaction as the list insert.
type ListCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ListID     int64     `json:"list_id"`
	Client     string    `json:"client"`
	Technician string    `json:"technician"`
	ItemCount  int       `json:"item_count"`
	OccurredAt time.Time `json:"occurred_at"`
}

// DocumentRenderedEvent is published in the same transaction as the
// document-path update.
type DocumentRenderedEvent struct {
	EventID      uuid.UUID `json:"event_id"`
	Version      int       `json:"version"`
	ListID       int64     `json:"list_id"`
	DocumentPath string    `json:"document_path"`
	OccurredAt   time.Time `json:"occurred_at"`
}
