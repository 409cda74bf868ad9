package handlers

import (
	"net/http"

	"github.com/ghuser/solarbom/pkg/httpx"
	"github.com/ghuser/solarbom/services/materials/infrastructure/catalog"
)

// CatalogEntryResponse is one selectable material in the catalog.
type CatalogEntryResponse struct {
	Code string `json:"code" example:"PNL550"`
	Name string `json:"name" example:"Painel Solar 550W"`
	Unit string `json:"unit" example:"un"`
} // @name CatalogEntryResponse

// CatalogResponse is the full material catalog the entry form is built from.
type CatalogResponse struct {
	Materials []CatalogEntryResponse `json:"materials"`
} // @name CatalogResponse

// KitResponse is a named bundle of pre-filled line items.
type KitResponse struct {
	Name  string             `json:"name" example:"Kit Residencial 5kWp"`
	Items []LineItemResponse `json:"items"`
} // @name KitResponse

// KitsResponse lists every kit template.
type KitsResponse struct {
	Kits []KitResponse `json:"kits"`
} // @name KitsResponse

// GetCatalogHandler handles GET /catalog requests.
type GetCatalogHandler struct {
	cat *catalog.Catalog
}

// NewGetCatalogHandler returns a GetCatalogHandler serving the loaded catalog.
func NewGetCatalogHandler(cat *catalog.Catalog) *GetCatalogHandler {
	return &GetCatalogHandler{cat: cat}
}

// Execute returns the material catalog.
//
//	@Summary		Get material catalog
//	@Description	Returns the fixed set of materials the entry form offers
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	CatalogResponse
//	@Router			/catalog [get]
func (h *GetCatalogHandler) Execute(w http.ResponseWriter, _ *http.Request) {
	resp := CatalogResponse{Materials: make([]CatalogEntryResponse, len(h.cat.Entries))}
	for i, e := range h.cat.Entries {
		resp.Materials[i] = CatalogEntryResponse{Code: e.Code, Name: e.Name, Unit: e.Unit}
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// GetKitsHandler handles GET /kits requests.
type GetKitsHandler struct {
	cat *catalog.Catalog
}

// NewGetKitsHandler returns a GetKitsHandler serving the loaded kit templates.
func NewGetKitsHandler(cat *catalog.Catalog) *GetKitsHandler {
	return &GetKitsHandler{cat: cat}
}

// Execute returns the kit templates used to pre-fill a submission.
//
//	@Summary		Get kit templates
//	@Description	Returns named bundles of line items that pre-fill the entry form
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	KitsResponse
//	@Router			/kits [get]
func (h *GetKitsHandler) Execute(w http.ResponseWriter, _ *http.Request) {
	resp := KitsResponse{Kits: make([]KitResponse, len(h.cat.Kits))}
	for i, k := range h.cat.Kits {
		items := make([]LineItemResponse, len(k.Items))
		for j, it := range k.Items {
			items[j] = LineItemResponse{Code: it.Code, Name: it.Name, Unit: it.Unit, Qty: it.Qty}
		}
		resp.Kits[i] = KitResponse{Name: k.Name, Items: items}
	}
	httpx.JSON(w, http.StatusOK, resp)
}
