package gateway

import "errors"

// Messages carried by GatewayError, one per operation family.
const (
	ErrorMessage        = "Bogus Gateway: Use CreditCard number ending in 1 for success, 2 for exception and anything else for error"
	UnstoreErrorMessage = "Bogus Gateway: Use trans_id ending in 1 for success, 2 for exception and anything else for error"
	CaptureErrorMessage = "Bogus Gateway: Use authorization number ending in 1 for exception, 2 for error and anything else for success"
	VoidErrorMessage    = "Bogus Gateway: Use authorization number ending in 1 for exception, 2 for error and anything else for success"
	RefundErrorMessage  = "Bogus Gateway: Use trans_id number ending in 1 for exception, 2 for error and anything else for success"
	CheckErrorMessage   = "Bogus Gateway: Use bank account number ending in 1 for success, 2 for exception and anything else for error"
	TokenErrorMessage   = "Bogus Gateway: Use token ending in 1 for success, 2 for exception and anything else for error"
)

const (
	SuccessMessage = "Bogus Gateway: Forced success"
	FailureMessage = "Bogus Gateway: Forced failure"

	// Authorization is the fixed authorization code handed out on success.
	// Purchase also accepts it as a raw token.
	Authorization = "53433"
)

var (
	// ErrGateway is matched by every *GatewayError.
	ErrGateway = errors.New("gateway error")

	ErrNilPaymentSource = errors.New("payment source is required")
	ErrUnknownAction    = errors.New("unknown gateway action")
)

// GatewayError is raised when the gateway refuses to process a request at
// all, as opposed to declining it with an unsuccessful response.
type GatewayError struct {
	Message string
}

func (e *GatewayError) Error() string {
	return e.Message
}

func (e *GatewayError) Unwrap() error {
	return ErrGateway
}
