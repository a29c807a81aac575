package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-soft-descriptor/internal/app"
	"github.com/MKhiriev/go-soft-descriptor/internal/gateway"
	"github.com/MKhiriev/go-soft-descriptor/internal/logger"
	"github.com/MKhiriev/go-soft-descriptor/internal/utils"
	"github.com/MKhiriev/go-soft-descriptor/internal/validators"
	"github.com/MKhiriev/go-soft-descriptor/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) executeGateway(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	action, err := gateway.ParseAction(chi.URLParam(r, "action"))
	if err != nil {
		log.Err(err).Msg("unknown gateway action")
		utils.WriteError(w, r, app.MsgUnknownGatewayAction, http.StatusNotFound)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		log.Err(err).Msg("error reading request body")
		utils.WriteError(w, r, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	if err = checkSchema(gatewaySchema, body); err != nil {
		log.Err(err).Msg("invalid gateway body")
		utils.WriteError(w, r, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	var req models.GatewayRequest
	if err = json.Unmarshal(body, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, r, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	resp, err := h.services.GatewayService.Execute(ctx, action, req)
	if err != nil {
		var (
			descErr *validators.DescriptorError
			gwErr   *gateway.GatewayError
		)
		switch {
		case errors.As(err, &descErr):
			log.Info().Strs("invalid_fields", descErr.Errors.Fields()).Msg("gateway call rejected: invalid soft descriptor")
			_, _ = utils.WriteJSON(w, models.ValidationResult{
				Valid:  false,
				Scheme: descErr.Scheme,
				Errors: descErr.Errors,
			}, http.StatusUnprocessableEntity)
		case errors.As(err, &gwErr):
			log.Warn().Err(err).Str("action", string(action)).Msg("gateway refused request")
			utils.WriteError(w, r, gwErr.Message, http.StatusBadGateway)
		default:
			errResp := responseFromError(err)
			log.Err(err).Str("action", string(action)).Msg("gateway call failed")
			utils.WriteError(w, r, errResp.message, errResp.status)
		}
		return
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing gateway response")
	}
}
