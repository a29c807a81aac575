package models

import (
	"encoding/json"
	"fmt"
)

// Scheme identifies the settlement network rule set that applies to a
// soft descriptor.
type Scheme int

const (
	// SchemeUnknown means the merchant id length matched neither network.
	SchemeUnknown Scheme = iota

	// SchemeSalem applies to 6-character merchant ids.
	SchemeSalem

	// SchemePNS applies to 12-character merchant ids (PNS/Tampa host).
	SchemePNS
)

const (
	SalemMerchantIDLength = 6
	PNSMerchantIDLength   = 12
)

// DetectScheme classifies a merchant id. The length selects the network
// and the id must be all decimal digits; anything else is SchemeUnknown.
func DetectScheme(merchantID string) Scheme {
	if !isDigits(merchantID) {
		return SchemeUnknown
	}
	switch {
	case IsSalem(merchantID):
		return SchemeSalem
	case IsPNS(merchantID):
		return SchemePNS
	default:
		return SchemeUnknown
	}
}

// IsSalem reports whether merchantID has the Salem length.
func IsSalem(merchantID string) bool {
	return len(merchantID) == SalemMerchantIDLength
}

// IsPNS reports whether merchantID has the PNS/Tampa length.
func IsPNS(merchantID string) bool {
	return len(merchantID) == PNSMerchantIDLength
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (s Scheme) String() string {
	switch s {
	case SchemeSalem:
		return "salem"
	case SchemePNS:
		return "pns"
	default:
		return "unknown"
	}
}

func (s Scheme) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Scheme) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch v {
	case "salem":
		*s = SchemeSalem
	case "pns":
		*s = SchemePNS
	case "unknown", "":
		*s = SchemeUnknown
	default:
		return fmt.Errorf("unknown scheme %q", v)
	}
	return nil
}
