package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/solarbom/pkg/database"
	"github.com/ghuser/solarbom/pkg/events"
	materialsdomain "github.com/ghuser/solarbom/services/materials/domain"
	domainevents "github.com/ghuser/solarbom/services/materials/domain/events"
	"github.com/ghuser/solarbom/services/materials/domain/models"
)

// ListRepository implements repositories.ListRepository against PostgreSQL.
// Items are stored as a JSON text column — the list is always read and
// written whole, so a denormalized column beats a child table here.
type ListRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewListRepository returns a ListRepository backed by the given connection
// pool and event bus. The bus publishes ListCreated and DocumentRendered
// events inside the same transaction as the corresponding write (outbox).
func NewListRepository(db *database.Database, bus *events.EventBus) *ListRepository {
	return &ListRepository{db: db, bus: bus}
}

// Insert persists a new list, assigns the generated ID to list.ID, and
// publishes a ListCreatedEvent within the same transaction.
func (r *ListRepository) Insert(ctx context.Context, list *models.MaterialList) error {
	itemsJSON, err := json.Marshal(list.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO material_lists (client, technician, created_at, items, document_path)
			 VALUES ($1, $2, $3, $4, '')
			 RETURNING id`,
			list.Client, list.Technician, list.CreatedAt, string(itemsJSON),
		).Scan(&list.ID)
		if err != nil {
			return fmt.Errorf("insert material list: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, list); err != nil {
				return fmt.Errorf("publish list created: %w", err)
			}
		}
		return nil
	})
}

// SetDocumentPath records the rendered document location and publishes a
// DocumentRenderedEvent within the same transaction.
func (r *ListRepository) SetDocumentPath(ctx context.Context, id int64, path string) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE material_lists SET document_path = $1 WHERE id = $2`, path, id)
		if err != nil {
			return fmt.Errorf("update document path: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if affected == 0 {
			return materialsdomain.ErrListNotFound
		}

		if r.bus != nil {
			if err := r.publishRendered(tx, id, path); err != nil {
				return fmt.Errorf("publish document rendered: %w", err)
			}
		}
		return nil
	})
}

// GetByID returns one list. Returns ErrListNotFound if absent.
func (r *ListRepository) GetByID(ctx context.Context, id int64) (*models.MaterialList, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT id, client, technician, created_at, items, document_path
		 FROM material_lists WHERE id = $1`, id)
	list, err := scanList(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, materialsdomain.ErrListNotFound
		}
		return nil, fmt.Errorf("query material list: %w", err)
	}
	return list, nil
}

// FindAll returns every list, newest first.
func (r *ListRepository) FindAll(ctx context.Context) ([]*models.MaterialList, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, client, technician, created_at, items, document_path
		 FROM material_lists ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query material lists: %w", err)
	}
	defer rows.Close()

	var lists []*models.MaterialList
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("scan material list: %w", err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate material lists: %w", err)
	}
	return lists, nil
}

// Delete removes a list. Returns ErrListNotFound if absent.
func (r *ListRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM material_lists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete material list: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return materialsdomain.ErrListNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanList(row rowScanner) (*models.MaterialList, error) {
	var (
		list      models.MaterialList
		itemsJSON string
	)
	if err := row.Scan(&list.ID, &list.Client, &list.Technician,
		&list.CreatedAt, &itemsJSON, &list.DocumentPath); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(itemsJSON), &list.Items); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}
	return &list, nil
}

func (r *ListRepository) publishCreated(tx *sql.Tx, list *models.MaterialList) error {
	event := domainevents.ListCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ListID:     list.ID,
		Client:     list.Client,
		Technician: list.Technician,
		ItemCount:  len(list.Items),
		OccurredAt: list.CreatedAt,
	}
	return r.publish(tx, domainevents.TopicListCreated, event, event.EventID)
}

func (r *ListRepository) publishRendered(tx *sql.Tx, id int64, path string) error {
	event := domainevents.DocumentRenderedEvent{
		EventID:      uuid.New(),
		Version:      1,
		ListID:       id,
		DocumentPath: path,
		OccurredAt:   time.Now().UTC(),
	}
	return r.publish(tx, domainevents.TopicDocumentRendered, event, event.EventID)
}

func (r *ListRepository) publish(tx *sql.Tx, topic string, event any, eventID uuid.UUID) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	if err := p.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}
