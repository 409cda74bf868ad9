package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/solarbom/pkg/errhttp"
	"github.com/ghuser/solarbom/pkg/httpx"
	appsvcs "github.com/ghuser/solarbom/services/materials/application/services"
)

// GetListHandler handles GET /lists/{id} requests.
type GetListHandler struct {
	svc *appsvcs.Services
}

// NewGetListHandler returns a GetListHandler backed by the given services.
func NewGetListHandler(svc *appsvcs.Services) *GetListHandler {
	return &GetListHandler{svc: svc}
}

// Execute returns a single material list by id.
//
//	@Summary		Get material list
//	@Description	Returns one saved list with its line items
//	@Tags			lists
//	@Produce		json
//	@Param			id	path		int	true	"List ID"
//	@Success		200	{object}	ListResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/lists/{id} [get]
func (h *GetListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := listID(w, r)
	if !ok {
		return
	}

	list, err := h.svc.List.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toListResponse(list))
}

// listID parses the {id} route parameter, writing a 400 on malformed input.
func listID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid list id")
		return 0, false
	}
	return id, true
}
