package repositories

import (
	"context"

	"github.com/ghuser/solarbom/services/materials/domain/models"
)

// ListRepository is the persistence interface for the MaterialList aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ListRepository interface {
	// Insert persists a new list and assigns its storage-generated ID to
	// list.ID. DocumentPath is stored empty; SetDocumentPath records it
	// once rendering completes.
	Insert(ctx context.Context, list *models.MaterialList) error

	// SetDocumentPath records the rendered document location for an existing
	// list. Returns ErrListNotFound if no such list exists.
	SetDocumentPath(ctx context.Context, id int64, path string) error

	// GetByID returns one list. Returns ErrListNotFound if absent.
	GetByID(ctx context.Context, id int64) (*models.MaterialList, error)

	// FindAll returns every list, newest first.
	FindAll(ctx context.Context) ([]*models.MaterialList, error)

	// Delete removes a list. Returns ErrListNotFound if absent.
	Delete(ctx context.Context, id int64) error
}
