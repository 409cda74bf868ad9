package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/solarbom/pkg/app"
	"github.com/ghuser/solarbom/services/materials/application/handlers"
	appsvcs "github.com/ghuser/solarbom/services/materials/application/services"
	"github.com/ghuser/solarbom/services/materials/infrastructure/catalog"
)

// MaterialRoutes registers material list endpoints on the provided chi router.
func MaterialRoutes(r chi.Router, a *app.Application, cat *catalog.Catalog) error {
	svcs, err := appsvcs.New(a)
	if err != nil {
		return err
	}

	r.Group(func(r chi.Router) {
		r.Route("/lists", func(r chi.Router) {
			r.Post("/", handlers.NewPostListHandler(svcs, a.Flash).Execute)
			r.Get("/", handlers.NewGetListsHandler(svcs, a.Flash).Execute)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handlers.NewGetListHandler(svcs).Execute)
				r.Delete("/", handlers.NewDeleteListHandler(svcs, a.Flash).Execute)
				r.Get("/document", handlers.NewGetDocumentHandler(svcs).Execute)
				r.Get("/share", handlers.NewGetShareHandler(svcs).Execute)
			})
		})
		r.Get("/catalog", handlers.NewGetCatalogHandler(cat).Execute)
		r.Get("/kits", handlers.NewGetKitsHandler(cat).Execute)
		r.Post("/config/logo", handlers.NewPostLogoHandler(svcs).Execute)
	})

	return nil
}
