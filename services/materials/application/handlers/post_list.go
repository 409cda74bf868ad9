package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ghuser/solarbom/pkg/errhttp"
	"github.com/ghuser/solarbom/pkg/httpx"
	pkgvalidator "github.com/ghuser/solarbom/pkg/validator"
	appsvcs "github.com/ghuser/solarbom/services/materials/application/services"
	materialsdomain "github.com/ghuser/solarbom/services/materials/domain"
	"github.com/ghuser/solarbom/services/materials/domain/models"
	domainsvcs "github.com/ghuser/solarbom/services/materials/domain/services"
)

// CreateListRequest is the JSON request body for POST /lists. Items is an
// ordered array; rows whose qty is not strictly positive are dropped, and a
// submission where every row is dropped is rejected as a whole.
type CreateListRequest struct {
	Client     string                 `json:"client" validate:"required,min=1,max=255" example:"Dona Maria"`
	Technician string                 `json:"technician" validate:"required,min=1,max=255" example:"Carlos Andrade"`
	Items      []domainsvcs.ItemInput `json:"items" validate:"required,min=1"`
} // @name CreateListRequest

// LineItemResponse is one material row in API responses.
type LineItemResponse struct {
	Code string  `json:"code" example:"PNL550"`
	Name string  `json:"name" example:"Painel Solar 550W"`
	Unit string  `json:"unit" example:"un"`
	Qty  float64 `json:"qty"  example:"3"`
} // @name LineItemResponse

// ListResponse is a material list in API responses.
type ListResponse struct {
	ID           int64              `json:"id"            example:"12"`
	Client       string             `json:"client"        example:"Dona Maria"`
	Technician   string             `json:"technician"    example:"Carlos Andrade"`
	CreatedAt    time.Time          `json:"created_at"    example:"2024-01-15T10:30:00Z"`
	Items        []LineItemResponse `json:"items"`
	DocumentPath string             `json:"document_path" example:"/documents/lista_12_2024-01-15_103000.pdf"`
} // @name ListResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"no items selected"`
} // @name ErrorResponse

func toListResponse(list *models.MaterialList) ListResponse {
	items := make([]LineItemResponse, len(list.Items))
	for i, it := range list.Items {
		items[i] = LineItemResponse{Code: it.Code, Name: it.Name, Unit: it.Unit, Qty: it.Qty}
	}
	return ListResponse{
		ID:           list.ID,
		Client:       list.Client,
		Technician:   list.Technician,
		CreatedAt:    list.CreatedAt,
		Items:        items,
		DocumentPath: list.DocumentPath,
	}
}

// PostListHandler handles POST /lists requests.
type PostListHandler struct {
	svc     *appsvcs.Services
	notices Notifier
}

// NewPostListHandler returns a PostListHandler backed by the given services.
func NewPostListHandler(svc *appsvcs.Services, notices Notifier) *PostListHandler {
	return &PostListHandler{svc: svc, notices: notices}
}

// Execute creates a material list and renders its document.
//
//	@Summary		Create material list
//	@Description	Collects line items from the submission, persists the list, and renders its PDF before responding
//	@Tags			lists
//	@Accept			json
//	@Accept			x-www-form-urlencoded
//	@Accept			mpfd
//	@Produce		json
//	@Param			request	body		CreateListRequest	true	"List creation request"
//	@Success		201		{object}	ListResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/lists [post]
func (h *PostListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	client, technician, items, ok := h.collect(w, r)
	if !ok {
		return
	}

	list, err := h.svc.List.Create(r.Context(), client, technician, items)
	if err != nil {
		// collect already rejects empty submissions, so failures here are
		// missing names or storage/render errors — the notice must say so.
		if errors.Is(err, materialsdomain.ErrNoItemsSelected) {
			h.flash(w, r, "Nenhum item selecionado. A lista não foi criada.")
		} else {
			h.flash(w, r, "Não foi possível gerar a lista. Tente novamente.")
		}
		errhttp.WriteError(w, err)
		return
	}

	h.flash(w, r, "PDF gerado e salvo com sucesso!")
	httpx.JSON(w, http.StatusCreated, toListResponse(list))
}

// collect extracts client, technician, and collected items from either a
// JSON body (structured, ordered array) or a form-encoded body (legacy
// field-naming convention). Writes the error response itself on failure.
func (h *PostListHandler) collect(w http.ResponseWriter, r *http.Request) (client, technician string, items []models.LineItem, ok bool) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		req, reqOK := pkgvalidator.ValidateRequest[CreateListRequest](w, r)
		if !reqOK {
			return "", "", nil, false
		}
		collected, err := domainsvcs.CollectItems(req.Items)
		if err != nil {
			h.flash(w, r, "Nenhum item selecionado. A lista não foi criada.")
			errhttp.WriteError(w, err)
			return "", "", nil, false
		}
		return req.Client, req.Technician, collected, true
	}

	fields, err := readOrderedForm(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid form body")
		return "", "", nil, false
	}
	collected, err := domainsvcs.CollectFromForm(fields)
	if err != nil {
		h.flash(w, r, "Nenhum item selecionado. A lista não foi criada.")
		errhttp.WriteError(w, err)
		return "", "", nil, false
	}
	return firstValue(fields, "client"), firstValue(fields, "technician"), collected, true
}

func (h *PostListHandler) flash(w http.ResponseWriter, r *http.Request, notice string) {
	if h.notices == nil {
		return
	}
	_ = h.notices.Add(w, r, notice) // a lost notice never fails the request
}
