// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-soft-descriptor/models"
)

// Field name constants used both as error keys and to scope Validate to a
// subset of rules.
const (
	FieldMerchantID         = "merchant_id"
	FieldMerchantName       = "merchant_name"
	FieldProductDescription = "product_description"
	FieldMerchantPhone      = "merchant_phone"
	FieldMerchantEmail      = "merchant_email"
	FieldMerchantURL        = "merchant_url"
)

// Messages recorded on failure. Clients match on the exact text.
const (
	MsgMerchantIDInvalid       = "is required and must be either 6 or 12 digits"
	MsgRequired                = "is required"
	MsgSalemNameLength         = "must be either 3, 7, or 12 bytes"
	MsgProductDescriptionRange = "is required to be 1 to %d bytes"
	MsgPNSNameTooLong          = "is required to be 25 bytes or less"
	MsgPhoneFormat             = `is required to follow "NNN-NNN-NNNN" or "NNN-AAAAAAA" format`
	MsgContactTooLong          = "is required to be 13 bytes or less"
)

const (
	pnsMaxMerchantName = 25
	maxContactField    = 13
)

// salemDescriptionLimits maps the byte length of a Salem merchant name to
// the widest product description that still fits on the statement line.
var salemDescriptionLimits = map[int]int{
	3:  18,
	7:  14,
	12: 9,
}

var (
	phoneFormats = []*regexp.Regexp{
		regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`),
		regexp.MustCompile(`^\d{3}-\w{7}$`),
	}
)

var defaultDescriptorFields = []string{
	FieldMerchantID,
	FieldMerchantName,
	FieldMerchantPhone,
	FieldMerchantEmail,
	FieldMerchantURL,
}

// SoftDescriptorValidator applies the Salem and PNS/Tampa soft descriptor
// rules. It holds no state and may be shared between goroutines.
type SoftDescriptorValidator struct {
}

// NewSoftDescriptorValidator returns the validator as the Validator interface.
func NewSoftDescriptorValidator() Validator {
	return &SoftDescriptorValidator{}
}

// Validate implements Validator for models.SoftDescriptor values and
// pointers. Without fields every rule runs. FieldProductDescription is an
// alias of FieldMerchantName because the two are checked together.
func (v *SoftDescriptorValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SoftDescriptor:
		return v.validate(ctx, value, fields...)
	case *models.SoftDescriptor:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validate(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// Check runs every rule against d and returns the recorded messages.
// An empty result means d is valid.
func (v *SoftDescriptorValidator) Check(d models.SoftDescriptor) models.FieldErrors {
	errs, _, _ := v.run(d, defaultDescriptorFields)
	return errs
}

func (v *SoftDescriptorValidator) validate(_ context.Context, d models.SoftDescriptor, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultDescriptorFields
	}

	errs, violations, err := v.run(d, fields)
	if err != nil {
		return err
	}
	if errs.IsEmpty() {
		return nil
	}

	return &DescriptorError{
		Scheme:     d.Scheme(),
		Errors:     errs,
		Violations: violations,
	}
}

func (v *SoftDescriptorValidator) run(d models.SoftDescriptor, fields []string) (models.FieldErrors, []Violation, error) {
	c := &checker{d: d}

	for _, f := range fields {
		switch f {
		case FieldMerchantID:
			c.merchantID()
		case FieldMerchantName, FieldProductDescription:
			c.merchantName()
		case FieldMerchantPhone:
			c.merchantPhone()
		case FieldMerchantEmail:
			c.contactField(FieldMerchantEmail, d.MerchantEmail)
		case FieldMerchantURL:
			c.contactField(FieldMerchantURL, d.MerchantURL)
		default:
			return models.FieldErrors{}, nil, fmt.Errorf("%w: %q", ErrUnknownField, f)
		}
	}

	return c.errs, c.violations, nil
}

// checker accumulates the outcome of one validation pass.
type checker struct {
	d          models.SoftDescriptor
	errs       models.FieldErrors
	violations []Violation

	nameChecked bool
}

func (c *checker) add(field string, kind Kind, msg string) {
	c.errs.Add(field, msg)
	c.violations = append(c.violations, Violation{Field: field, Kind: kind, Message: msg})
}

func (c *checker) merchantID() {
	if c.d.Scheme() != models.SchemeUnknown {
		return
	}
	c.add(FieldMerchantID, KindMissingOrMalformedMerchantID, MsgMerchantIDInvalid)
}

// merchantName checks the name and, on Salem, the product description
// whose width depends on the name. It runs at most once per pass. An id
// that belongs to no scheme (wrong length or non-digits) only gets the
// blank check.
func (c *checker) merchantName() {
	if c.nameChecked {
		return
	}
	c.nameChecked = true

	name := c.d.MerchantName
	if isBlank(name) {
		c.add(FieldMerchantName, KindMissingMerchantName, MsgRequired)
		return
	}

	switch c.d.Scheme() {
	case models.SchemeSalem:
		limit, ok := salemDescriptionLimits[len(name)]
		if !ok {
			c.add(FieldMerchantName, KindInvalidMerchantNameLength, MsgSalemNameLength)
			return
		}
		c.productDescription(limit)
	case models.SchemePNS:
		if len(name) > pnsMaxMerchantName {
			c.add(FieldMerchantName, KindInvalidMerchantNameLength, MsgPNSNameTooLong)
		}
	}
}

func (c *checker) productDescription(limit int) {
	desc := c.d.ProductDescription
	switch {
	case isBlank(desc):
		c.add(FieldProductDescription, KindMissingProductDescription, MsgRequired)
	case len(desc) > limit:
		c.add(FieldProductDescription, KindProductDescriptionTooLong, fmt.Sprintf(MsgProductDescriptionRange, limit))
	}
}

func (c *checker) merchantPhone() {
	phone := c.d.MerchantPhone
	if isBlank(phone) {
		return
	}
	for _, re := range phoneFormats {
		if re.MatchString(phone) {
			return
		}
	}
	c.add(FieldMerchantPhone, KindInvalidPhoneFormat, MsgPhoneFormat)
}

func (c *checker) contactField(field, value string) {
	if isBlank(value) || len(value) <= maxContactField {
		return
	}
	c.add(field, KindContactFieldTooLong, MsgContactTooLong)
}

// isBlank treats empty and whitespace-only strings as absent.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
