package http

import (
	"net/http"

	"github.com/MKhiriev/go-soft-descriptor/internal/app"
	"github.com/MKhiriev/go-soft-descriptor/internal/logger"
	"github.com/MKhiriev/go-soft-descriptor/internal/utils"
)

// getServerVersion answers with the configured version as plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())
	if serverVersion == "" {
		logger.FromRequest(r).Error().Msg("server version is empty")
		utils.WriteError(w, r, app.MsgVersionIsNotSpecified, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(serverVersion))
}
