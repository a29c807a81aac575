package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-soft-descriptor/internal/app"
	"github.com/MKhiriev/go-soft-descriptor/internal/logger"
	"github.com/MKhiriev/go-soft-descriptor/internal/utils"
	"github.com/MKhiriev/go-soft-descriptor/models"
)

const maxRequestBody = 1 << 20

// validateDescriptor answers 200 for a valid descriptor and 422 for an
// invalid one; both carry a models.ValidationResult.
func (h *Handler) validateDescriptor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		log.Err(err).Msg("error reading request body")
		utils.WriteError(w, r, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err = checkSchema(descriptorSchema, body); err != nil {
		log.Err(err).Msg("invalid descriptor body")
		utils.WriteError(w, r, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	var descriptor models.SoftDescriptor
	if err = json.Unmarshal(body, &descriptor); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, r, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	result, err := h.services.DescriptorService.ValidateDescriptor(ctx, descriptor, requestedFields(r)...)
	if err != nil {
		resp := responseFromError(err)
		log.Err(err).Msg("descriptor validation could not run")
		utils.WriteError(w, r, resp.message, resp.status)
		return
	}

	status := http.StatusOK
	if !result.Valid {
		status = http.StatusUnprocessableEntity
	}
	if _, err = utils.WriteJSON(w, result, status); err != nil {
		log.Err(err).Msg("error writing validation result")
	}
}

// requestedFields collects ?fields=a,b&fields=c into a flat list.
func requestedFields(r *http.Request) []string {
	var fields []string
	for _, raw := range r.URL.Query()["fields"] {
		for _, f := range strings.Split(raw, ",") {
			if f = strings.TrimSpace(f); f != "" {
				fields = append(fields, f)
			}
		}
	}
	return fields
}
