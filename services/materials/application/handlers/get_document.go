package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/ghuser/solarbom/pkg/errhttp"
	appsvcs "github.com/ghuser/solarbom/services/materials/application/services"
)

// GetDocumentHandler handles GET /lists/{id}/document requests.
type GetDocumentHandler struct {
	svc *appsvcs.Services
}

// NewGetDocumentHandler returns a GetDocumentHandler backed by the given services.
func NewGetDocumentHandler(svc *appsvcs.Services) *GetDocumentHandler {
	return &GetDocumentHandler{svc: svc}
}

// Execute streams the rendered PDF as an attachment download.
//
//	@Summary		Download list document
//	@Description	Streams the list's rendered PDF with an attachment disposition
//	@Tags			lists
//	@Produce		application/pdf
//	@Param			id	path	int	true	"List ID"
//	@Success		200	{file}	binary
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/lists/{id}/document [get]
func (h *GetDocumentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := listID(w, r)
	if !ok {
		return
	}

	path, err := h.svc.List.DocumentPath(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", filepath.Base(path)))
	http.ServeFile(w, r, path)
}
