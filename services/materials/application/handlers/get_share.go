package handlers

import (
	"net/http"

	"github.com/ghuser/solarbom/pkg/errhttp"
	appsvcs "github.com/ghuser/solarbom/services/materials/application/services"
)

// GetShareHandler handles GET /lists/{id}/share requests.
type GetShareHandler struct {
	svc *appsvcs.Services
}

// NewGetShareHandler returns a GetShareHandler backed by the given services.
func NewGetShareHandler(svc *appsvcs.Services) *GetShareHandler {
	return &GetShareHandler{svc: svc}
}

// Execute redirects to a WhatsApp share link for the list.
//
//	@Summary		Share list over WhatsApp
//	@Description	Redirects to a wa.me link carrying a pre-filled message about the list
//	@Tags			lists
//	@Param			id	path	int	true	"List ID"
//	@Success		302
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/lists/{id}/share [get]
func (h *GetShareHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := listID(w, r)
	if !ok {
		return
	}

	link, err := h.svc.List.ShareLink(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	http.Redirect(w, r, link, http.StatusFound)
}
