package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/coffee-shop-env/internal/app"
	"github.com/MKhiriev/coffee-shop-env/internal/logger"
	"github.com/MKhiriev/coffee-shop-env/internal/utils"
	"github.com/MKhiriev/coffee-shop-env/models"
)

// maxInspectBodySize caps the token inspection body; access tokens are a few
// kilobytes at most.
const maxInspectBodySize = 64 << 10

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	target, err := h.services.EnvironmentService.AuthorizeURL(r.Context(), r.URL.Query().Get("callbackPath"))
	if err != nil {
		log.Debug().Err(err).Msg("login rejected")
		writeError(w, err)
		return
	}

	http.Redirect(w, r, target, http.StatusFound)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.services.EnvironmentService.LogoutURL(r.Context()), http.StatusFound)
}

// inspectToken reads the token from the JSON body or, when the body carries
// none, from the Authorization header.
func (h *Handler) inspectToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.TokenInspectRequest
	body := http.MaxBytesReader(w, r.Body, maxInspectBodySize)
	if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Debug().Err(err).Msg("invalid inspect request body")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	if req.Token == "" {
		req.Token = r.Header.Get("Authorization")
	}

	report, err := h.services.TokenService.InspectToken(r.Context(), req.Token)
	if err != nil {
		log.Debug().Err(err).Msg("token inspection failed")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, report, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing token report")
	}
}
