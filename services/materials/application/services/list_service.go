package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/solarbom/pkg/cache"
	"github.com/ghuser/solarbom/pkg/logger"
	"github.com/ghuser/solarbom/pkg/telemetry"
	materialsdomain "github.com/ghuser/solarbom/services/materials/domain"
	"github.com/ghuser/solarbom/services/materials/domain/models"
	"github.com/ghuser/solarbom/services/materials/domain/repositories"
	"github.com/ghuser/solarbom/services/materials/infrastructure/rendering"
)

// DocumentRenderer is the rendering dependency of ListService; satisfied by
// rendering.DocumentRenderer and by fakes in tests.
type DocumentRenderer interface {
	Render(ctx context.Context, in rendering.RenderInput) (string, error)
}

// ListService orchestrates the submission pipeline: collected items in,
// persisted record plus rendered document out. Event publishing is handled
// by the repository layer (outbox pattern). Reads are served from Redis
// cache when available.
type ListService struct {
	repo     repositories.ListRepository
	renderer DocumentRenderer
	cache    *pkgcache.ListCache
	company  *CompanyService
	log      logger.Logger
	metrics  *telemetry.RenderMetrics // nil-safe; absent in tests
}

// NewListService wires the service with its repository, renderer, cache,
// and company profile.
func NewListService(
	repo repositories.ListRepository,
	renderer DocumentRenderer,
	listCache *pkgcache.ListCache,
	company *CompanyService,
	log logger.Logger,
) *ListService {
	return &ListService{repo: repo, renderer: renderer, cache: listCache, company: company, log: log}
}

// WithMetrics attaches render instruments. Separate from the constructor so
// test wiring stays unchanged.
func (s *ListService) WithMetrics(m *telemetry.RenderMetrics) *ListService {
	s.metrics = m
	return s
}

// Create runs the insert-then-render sequence for one submission:
//
//  1. insert a record with an empty document path (publishes ListCreated)
//  2. render the PDF under the company identity
//  3. record the document path (publishes DocumentRendered)
//
// Each step is a single attempt. The request is not complete until the
// document is on disk, so the whole sequence runs synchronously; a render
// or storage failure propagates to the caller's generic error path with the
// record left holding an empty path.
//
// items must be the collector's output — callers never pass raw candidates.
func (s *ListService) Create(ctx context.Context, client, technician string, items []models.LineItem) (*models.MaterialList, error) {
	if strings.TrimSpace(client) == "" {
		return nil, materialsdomain.ErrMissingClient
	}
	if strings.TrimSpace(technician) == "" {
		return nil, materialsdomain.ErrMissingTechnician
	}
	if len(items) == 0 {
		return nil, materialsdomain.ErrNoItemsSelected
	}

	list, err := models.NewMaterialList(client, technician, items)
	if err != nil {
		return nil, fmt.Errorf("new material list: %w", err)
	}

	if err := s.repo.Insert(ctx, list); err != nil {
		return nil, fmt.Errorf("insert list: %w", err)
	}

	companyName, logoPath := s.company.Profile()
	renderStart := time.Now()
	path, err := s.renderer.Render(ctx, rendering.RenderInput{
		ListID:      list.ID,
		Client:      list.Client,
		Technician:  list.Technician,
		Items:       list.Items,
		CompanyName: companyName,
		LogoPath:    logoPath,
	})
	if err != nil {
		return nil, fmt.Errorf("render document for list %d: %w", list.ID, err)
	}
	s.metrics.RecordRender(ctx, time.Since(renderStart))

	if err := s.repo.SetDocumentPath(ctx, list.ID, path); err != nil {
		return nil, fmt.Errorf("record document path for list %d: %w", list.ID, err)
	}
	list.DocumentPath = path

	if s.cache != nil {
		go func() {
			if err := s.cache.Set(context.Background(), list); err != nil {
				s.log.Warn("failed to warm list cache", "list_id", list.ID, "error", err)
			}
		}()
	}

	return list, nil
}

// GetByID retrieves a list using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ListService) GetByID(ctx context.Context, id int64) (*models.MaterialList, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return cached, nil
		} else if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "list cache read failed", "list_id", id, "error", err)
		}
	}

	list, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), list)
		}()
	}

	return list, nil
}

// List returns every material list, newest first.
func (s *ListService) List(ctx context.Context) ([]*models.MaterialList, error) {
	lists, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list material lists: %w", err)
	}
	return lists, nil
}

// Delete removes a record. The rendered document file is removed best-effort;
// an orphaned PDF is preferable to a delete that fails halfway.
func (s *ListService) Delete(ctx context.Context, id int64) error {
	list, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get list: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete list: %w", err)
	}

	if list.DocumentPath != "" {
		if err := os.Remove(list.DocumentPath); err != nil && !os.IsNotExist(err) {
			s.log.WarnContext(ctx, "failed to remove document file", "list_id", id, "path", list.DocumentPath, "error", err)
		}
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return nil
}

// DocumentPath returns the rendered document location for a list, verifying
// the file still exists. Returns ErrDocumentNotFound when the record has no
// document or the file is gone.
func (s *ListService) DocumentPath(ctx context.Context, id int64) (string, error) {
	list, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if list.DocumentPath == "" {
		return "", materialsdomain.ErrDocumentNotFound
	}
	if _, err := os.Stat(list.DocumentPath); err != nil {
		return "", fmt.Errorf("%w: %s", materialsdomain.ErrDocumentNotFound, list.DocumentPath)
	}
	return list.DocumentPath, nil
}

// ShareLink builds a wa.me URL with a pre-filled message announcing the
// list. The document itself is not attached — the link only carries text.
func (s *ListService) ShareLink(ctx context.Context, id int64) (string, error) {
	list, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	msg := fmt.Sprintf("Lista de materiais pronta para o cliente %s.\nResponsável técnico: %s.",
		list.Client, list.Technician)
	return "https://wa.me/?text=" + url.QueryEscape(msg), nil
}
