package models

// GatewayAction names an operation accepted by a payment gateway.
type GatewayAction string

const (
	ActionAuthorize GatewayAction = "authorize"
	ActionPurchase  GatewayAction = "purchase"
	ActionRecurring GatewayAction = "recurring"
	ActionCredit    GatewayAction = "credit"
	ActionRefund    GatewayAction = "refund"
	ActionCapture   GatewayAction = "capture"
	ActionVoid      GatewayAction = "void"
	ActionStore     GatewayAction = "store"
	ActionUnstore   GatewayAction = "unstore"
)

// GatewayResponse is the outcome of a gateway operation that reached the
// gateway. A declined operation is a response with Success == false, not
// an error.
type GatewayResponse struct {
	Success       bool              `json:"success"`
	Message       string            `json:"message"`
	Params        map[string]string `json:"params,omitempty"`
	Authorization string            `json:"authorization,omitempty"`
	Test          bool              `json:"test"`
}

// GatewayRequest is the transport shape of a gateway call.
//
// Amount is expressed in minor units (cents). Source is used by
// authorize, purchase, recurring, credit and store; Reference by refund,
// capture, void and unstore.
type GatewayRequest struct {
	Amount     int64                  `json:"amount,omitempty"`
	Source     *PaymentSourceEnvelope `json:"source,omitempty"`
	Reference  string                 `json:"reference,omitempty"`
	Descriptor *SoftDescriptor        `json:"soft_descriptor,omitempty"`
}
