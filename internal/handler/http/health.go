package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type healthResponse struct {
	Status     string              `json:"status"`
	Build      models.AppBuildInfo `json:"build"`
	Configured bool                `json:"configured"`
	SignedIn   bool                `json:"signed_in"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:     "ok",
		Build:      h.appInfo.GetBuildInfo(r.Context()),
		Configured: h.auth.Configured(),
		SignedIn:   h.auth.Session() != nil,
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.health").Msg("error writing health response")
	}
}

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	version := h.appInfo.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(version))
}
