// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/solarbom/pkg/httpx"
	materialsdomain "github.com/ghuser/solarbom/services/materials/domain"
)

var production bool

// SetProduction controls whether 5xx responses expose internal error text.
// Call once at startup.
func SetProduction(p bool) {
	production = p
}

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors — storage
// and file-write failures are deliberately unhandled by the pipeline and
// land here. In production the 5xx message is replaced with the generic
// status text.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, production))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, materialsdomain.ErrListNotFound),
		errors.Is(err, materialsdomain.ErrDocumentNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, materialsdomain.ErrNoItemsSelected),
		errors.Is(err, materialsdomain.ErrMissingClient),
		errors.Is(err, materialsdomain.ErrMissingTechnician):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, materialsdomain.ErrUnsupportedLogoType):
		return http.StatusUnsupportedMediaType // 415
	default:
		return http.StatusInternalServerError // 500
	}
}
