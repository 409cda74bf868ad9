package services

import (
	"fmt"

	"github.com/ghuser/solarbom/pkg/app"
	"github.com/ghuser/solarbom/pkg/cache"
	"github.com/ghuser/solarbom/pkg/telemetry"
	"github.com/ghuser/solarbom/services/materials/infrastructure/persistence/postgres"
	"github.com/ghuser/solarbom/services/materials/infrastructure/rendering"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	List    *ListService
	Company *CompanyService
}

// New wires all materials application services with infrastructure from the
// Application container. Creates the documents and uploads directories if
// they do not exist yet.
func New(a *app.Application) (*Services, error) {
	repo := postgres.NewListRepository(a.Db, a.EventBus)
	listCache := cache.NewListCache(a.Redis)

	renderer, err := rendering.NewDocumentRenderer(a.Cfg.DocumentsDir)
	if err != nil {
		return nil, fmt.Errorf("materials services: %w", err)
	}
	company, err := NewCompanyService(a.Cfg)
	if err != nil {
		return nil, fmt.Errorf("materials services: %w", err)
	}
	renderMetrics, err := telemetry.NewRenderMetrics()
	if err != nil {
		return nil, fmt.Errorf("materials services: %w", err)
	}

	return &Services{
		List:    NewListService(repo, renderer, listCache, company, a.Logger).WithMetrics(renderMetrics),
		Company: company,
	}, nil
}
