package gateway

import (
	"encoding/xml"

	"github.com/MKhiriev/go-soft-descriptor/models"
)

// lastRequest is the XML document remembered for authorize, purchase and
// void calls.
type lastRequest struct {
	XMLName    xml.Name             `xml:"Request"`
	Action     models.GatewayAction `xml:"action"`
	Money      *int64               `xml:"money"`
	PaySource  *lastPaySource       `xml:"paysource"`
	Reference  string               `xml:"reference"`
	Parameters *lastParameters      `xml:"parameters"`
}

type lastPaySource struct {
	Type       models.PaymentSourceKind `xml:"type,attr"`
	Identifier string                   `xml:",chardata"`
}

type lastParameters struct {
	Descriptor *models.SoftDescriptor `xml:"soft_descriptor,omitempty"`
}

func buildRequest(action models.GatewayAction, money *int64, source models.PaymentSource, reference string, opts Options) string {
	req := lastRequest{
		Action:     action,
		Money:      money,
		Reference:  reference,
		Parameters: &lastParameters{Descriptor: opts.Descriptor},
	}
	if source != nil {
		req.PaySource = &lastPaySource{Type: source.Kind(), Identifier: maskIdentifier(source.Identifier())}
	}

	out, err := xml.MarshalIndent(req, "", "  ")
	if err != nil {
		return ""
	}
	return xml.Header + string(out)
}

// maskIdentifier keeps the last four characters of a card or account number.
func maskIdentifier(id string) string {
	if len(id) <= 4 {
		return id
	}
	masked := make([]byte, len(id))
	for i := range masked {
		if i < len(id)-4 {
			masked[i] = 'X'
		} else {
			masked[i] = id[i]
		}
	}
	return string(masked)
}
