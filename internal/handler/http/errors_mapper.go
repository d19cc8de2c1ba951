package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/coffee-shop-env/internal/app"
	"github.com/MKhiriev/coffee-shop-env/internal/service"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponses = map[error]errorResponse{
	service.ErrInvalidCallbackPath: {http.StatusBadRequest, app.MsgInvalidCallbackPath},
	service.ErrEmptyToken:          {http.StatusBadRequest, app.MsgNoTokenProvided},
	service.ErrMalformedToken:      {http.StatusBadRequest, app.MsgMalformedToken},
}

// writeError maps service errors onto a status and a fixed message. Unknown
// errors become 500 so internal details never reach the caller.
func writeError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)
	http.Error(w, resp.message, resp.status)
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorResponses {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}
