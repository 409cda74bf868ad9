package handlers

import (
	"net/http"

	"github.com/ghuser/solarbom/pkg/errhttp"
	appsvcs "github.com/ghuser/solarbom/services/materials/application/services"
)

// DeleteListHandler handles DELETE /lists/{id} requests.
type DeleteListHandler struct {
	svc     *appsvcs.Services
	notices Notifier
}

// NewDeleteListHandler returns a DeleteListHandler backed by the given services.
func NewDeleteListHandler(svc *appsvcs.Services, notices Notifier) *DeleteListHandler {
	return &DeleteListHandler{svc: svc, notices: notices}
}

// Execute removes a material list, its cached copy, and its document file.
//
//	@Summary		Delete material list
//	@Description	Deletes the list record and removes its rendered document from disk
//	@Tags			lists
//	@Produce		json
//	@Param			id	path	int	true	"List ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/lists/{id} [delete]
func (h *DeleteListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := listID(w, r)
	if !ok {
		return
	}

	if err := h.svc.List.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if h.notices != nil {
		_ = h.notices.Add(w, r, "Registro excluído.")
	}
	w.WriteHeader(http.StatusNoContent)
}
