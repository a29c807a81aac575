package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-soft-descriptor/internal/app"
	"github.com/MKhiriev/go-soft-descriptor/internal/gateway"
	"github.com/MKhiriev/go-soft-descriptor/internal/service"
	"github.com/MKhiriev/go-soft-descriptor/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrInvalidDataProvided:  {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrInvalidPaymentSource: {http.StatusBadRequest, app.MsgInvalidPaymentSource},
	service.ErrGatewayUnavailable:   {http.StatusServiceUnavailable, http.StatusText(http.StatusServiceUnavailable)},

	validators.ErrUnknownField:    {http.StatusBadRequest, app.MsgUnknownField},
	validators.ErrUnsupportedType: {http.StatusBadRequest, app.MsgInvalidDataProvided},

	gateway.ErrNilPaymentSource: {http.StatusBadRequest, app.MsgPaymentSourceRequired},
	gateway.ErrUnknownAction:    {http.StatusNotFound, app.MsgUnknownGatewayAction},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}
