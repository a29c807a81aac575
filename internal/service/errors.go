package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrInvalidPaymentSource = errors.New("invalid payment source")
	ErrGatewayUnavailable   = errors.New("gateway is unavailable")
)
