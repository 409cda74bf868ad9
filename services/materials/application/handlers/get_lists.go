package handlers

import (
	"net/http"

	"github.com/ghuser/solarbom/pkg/errhttp"
	"github.com/ghuser/solarbom/pkg/httpx"
	appsvcs "github.com/ghuser/solarbom/services/materials/application/services"
)

// ListsResponse is the history view: every saved list, newest first, plus
// any notices queued by earlier requests in the same browser session.
type ListsResponse struct {
	Lists   []ListResponse `json:"lists"`
	Notices []string       `json:"notices,omitempty"`
} // @name ListsResponse

// GetListsHandler handles GET /lists requests.
type GetListsHandler struct {
	svc     *appsvcs.Services
	notices Notifier
}

// NewGetListsHandler returns a GetListsHandler backed by the given services.
func NewGetListsHandler(svc *appsvcs.Services, notices Notifier) *GetListsHandler {
	return &GetListsHandler{svc: svc, notices: notices}
}

// Execute returns all saved material lists, newest first.
//
//	@Summary		List material lists
//	@Description	Returns every saved list ordered by creation time descending, with pending notices
//	@Tags			lists
//	@Produce		json
//	@Success		200	{object}	ListsResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/lists [get]
func (h *GetListsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.List.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ListsResponse{Lists: make([]ListResponse, len(lists))}
	for i, l := range lists {
		resp.Lists[i] = toListResponse(l)
	}
	if h.notices != nil {
		resp.Notices = h.notices.Pop(w, r)
	}

	httpx.JSON(w, http.StatusOK, resp)
}
