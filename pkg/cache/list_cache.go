package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ghuser/solarbom/services/materials/domain/models"
)

const (
	// ListCacheTTL is the time-to-live for cached material lists.
	ListCacheTTL = 24 * time.Hour

	listCacheKeyPrefix = "material_list"
)

// ListCache provides structured read/write operations for material-list
// cache entries stored as Redis hashes. Key format: "material_list:{id}".
//
// A record never changes after its document path is set, so a stale entry
// can only predate that single update; the worker re-warms the cache on
// the document-rendered event to close that window.
type ListCache struct {
	client *RedisClient
}

// NewListCache creates a ListCache backed by the given RedisClient.
func NewListCache(r *RedisClient) *ListCache {
	return &ListCache{client: r}
}

// Get retrieves a cached list by ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ListCache) Get(ctx context.Context, id int64) (*models.MaterialList, error) {
	vals, err := c.client.Client().HGetAll(ctx, c.key(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	cachedID, err := strconv.ParseInt(vals["id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}
	var items []models.LineItem
	if err := json.Unmarshal([]byte(vals["items"]), &items); err != nil {
		return nil, fmt.Errorf("cache parse items: %w", err)
	}

	return &models.MaterialList{
		ID:           cachedID,
		Client:       vals["client"],
		Technician:   vals["technician"],
		CreatedAt:    createdAt,
		Items:        items,
		DocumentPath: vals["document_path"],
	}, nil
}

// Set writes a cached list as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *ListCache) Set(ctx context.Context, list *models.MaterialList) error {
	itemsJSON, err := json.Marshal(list.Items)
	if err != nil {
		return fmt.Errorf("cache marshal items: %w", err)
	}

	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, c.key(list.ID),
		"id", strconv.FormatInt(list.ID, 10),
		"client", list.Client,
		"technician", list.Technician,
		"created_at", list.CreatedAt.UTC().Format(time.RFC3339Nano),
		"items", string(itemsJSON),
		"document_path", list.DocumentPath,
	)
	pipe.Expire(ctx, c.key(list.ID), ListCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached list.
func (c *ListCache) Delete(ctx context.Context, id int64) error {
	if err := c.client.Client().Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (c *ListCache) key(id int64) string {
	return fmt.Sprintf("%s:%d", listCacheKeyPrefix, id)
}
