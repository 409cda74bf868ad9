// Package catalog loads the read-only material catalog and kit templates
// from JSON files at startup. Both are validated on load and immutable
// afterwards — handlers receive the loaded structs by reference, never a
// path or a global.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/ghuser/solarbom/services/materials/domain/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Catalog holds the materials the entry form is built from plus the kit
// templates used to pre-fill a submission.
type Catalog struct {
	Entries []models.CatalogEntry
	Kits    []models.Kit
}

type catalogFile struct {
	Materials []catalogEntryFile `json:"materials" validate:"required,dive"`
}

type catalogEntryFile struct {
	Code string `json:"code" validate:"required,max=64"`
	Name string `json:"name" validate:"required,max=255"`
	Unit string `json:"unit" validate:"required,max=16"`
}

type kitsFile struct {
	Kits []kitFile `json:"kits" validate:"dive"`
}

type kitFile struct {
	Name  string        `json:"name" validate:"required,max=255"`
	Items []kitItemFile `json:"items" validate:"required,min=1,dive"`
}

type kitItemFile struct {
	Code string  `json:"code" validate:"max=64"`
	Name string  `json:"name" validate:"required,max=255"`
	Unit string  `json:"unit" validate:"required,max=16"`
	Qty  float64 `json:"qty" validate:"required,gt=0"`
}

// Load reads and validates the catalog and kits files. A missing kits file
// is not an error — kits are optional; a missing catalog file is fatal
// because the entry form cannot be built without it.
func Load(catalogPath, kitsPath string) (*Catalog, error) {
	entries, err := loadCatalog(catalogPath)
	if err != nil {
		return nil, err
	}

	kits, err := loadKits(kitsPath)
	if err != nil {
		return nil, err
	}

	return &Catalog{Entries: entries, Kits: kits}, nil
}

func loadCatalog(path string) ([]models.CatalogEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var f catalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("catalog: invalid %s: %w", path, err)
	}

	entries := make([]models.CatalogEntry, len(f.Materials))
	for i, m := range f.Materials {
		entries[i] = models.CatalogEntry{Code: m.Code, Name: m.Name, Unit: m.Unit}
	}
	return entries, nil
}

func loadKits(path string) ([]models.Kit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var f kitsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("catalog: invalid %s: %w", path, err)
	}

	kits := make([]models.Kit, len(f.Kits))
	for i, k := range f.Kits {
		items := make([]models.LineItem, len(k.Items))
		for j, it := range k.Items {
			items[j] = models.LineItem{Code: it.Code, Name: it.Name, Unit: it.Unit, Qty: it.Qty}
		}
		kits[i] = models.Kit{Name: k.Name, Items: items}
	}
	return kits, nil
}
