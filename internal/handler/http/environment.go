// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/coffee-shop-env/internal/app"
	"github.com/MKhiriev/coffee-shop-env/internal/logger"
	"github.com/MKhiriev/coffee-shop-env/internal/render"
	"github.com/MKhiriev/coffee-shop-env/internal/utils"
)

func (h *Handler) getEnvironmentJSON(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	env := h.services.EnvironmentService.GetEnvironment(r.Context())
	if _, err := utils.WriteJSON(w, env, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing environment")
	}
}

func (h *Handler) getEnvironmentModule(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	env := h.services.EnvironmentService.GetEnvironment(r.Context())

	var buf bytes.Buffer
	if err := render.Render(&buf, env, render.FormatTS); err != nil {
		log.Err(err).Msg("error rendering environment module")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/typescript; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
