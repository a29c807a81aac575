package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-soft-descriptor/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidSoftDescriptor = errors.New("invalid soft descriptor")
)

// Kind classifies a recorded validation failure.
type Kind string

const (
	KindMissingOrMalformedMerchantID Kind = "MissingOrMalformedMerchantId"
	KindMissingMerchantName          Kind = "MissingMerchantName"
	KindInvalidMerchantNameLength    Kind = "InvalidMerchantNameLength"
	KindMissingProductDescription    Kind = "MissingProductDescription"
	KindProductDescriptionTooLong    Kind = "ProductDescriptionTooLong"
	KindInvalidPhoneFormat           Kind = "InvalidPhoneFormat"
	KindContactFieldTooLong          Kind = "ContactFieldTooLong"
)

// Violation is a single failed rule.
type Violation struct {
	Field   string
	Kind    Kind
	Message string
}

// DescriptorError is returned by [SoftDescriptorValidator.Validate] when at
// least one rule failed. It matches [ErrInvalidSoftDescriptor] with errors.Is.
type DescriptorError struct {
	Scheme     models.Scheme
	Errors     models.FieldErrors
	Violations []Violation
}

func (e *DescriptorError) Error() string {
	parts := make([]string, 0, e.Errors.Len())
	for _, f := range e.Errors.Fields() {
		parts = append(parts, f+" "+strings.Join(e.Errors.On(f), ", "))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidSoftDescriptor, strings.Join(parts, "; "))
}

func (e *DescriptorError) Unwrap() error {
	return ErrInvalidSoftDescriptor
}
