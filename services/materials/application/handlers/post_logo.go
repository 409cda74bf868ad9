package handlers

import (
	"net/http"

	"github.com/ghuser/solarbom/pkg/errhttp"
	"github.com/ghuser/solarbom/pkg/httpx"
	appsvcs "github.com/ghuser/solarbom/services/materials/application/services"
)

// maxLogoSize caps logo uploads at 5 MiB.
const maxLogoSize = 5 << 20

// LogoResponse is returned after a successful logo upload.
type LogoResponse struct {
	LogoPath string `json:"logo_path" example:"/uploads/logo.png"`
} // @name LogoResponse

// PostLogoHandler handles POST /config/logo requests.
type PostLogoHandler struct {
	svc *appsvcs.Services
}

// NewPostLogoHandler returns a PostLogoHandler backed by the given services.
func NewPostLogoHandler(svc *appsvcs.Services) *PostLogoHandler {
	return &PostLogoHandler{svc: svc}
}

// Execute stores an uploaded company logo for use in rendered documents.
//
//	@Summary		Upload company logo
//	@Description	Accepts a PNG, JPEG, or GIF file and uses it in the header of documents rendered afterwards
//	@Tags			config
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			logo	formData	file	true	"Logo image file"
//	@Success		200		{object}	LogoResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		415		{object}	ErrorResponse
//	@Router			/config/logo [post]
func (h *PostLogoHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxLogoSize); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "logo file is required")
		return
	}
	defer file.Close()

	path, err := h.svc.Company.SaveLogo(header.Filename, file)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, LogoResponse{LogoPath: path})
}
