// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SoftDescriptor is the merchant-identifying text transmitted with an ACH
// transaction and printed on the cardholder statement.
//
// The rule set applied to the record is selected by the length of MerchantID
// (see [DetectScheme]); the record itself never caches the scheme, so
// reassigning MerchantID and validating again picks up the new rules.
type SoftDescriptor struct {
	// MerchantID is the decimal merchant identifier: 6 digits for Salem,
	// 12 digits for PNS/Tampa.
	MerchantID string `json:"merchant_id"`

	// MerchantName is the DBA name shown on the statement. Required.
	MerchantName string `json:"merchant_name"`

	// ProductDescription is the entry description. Required on Salem, where
	// its width depends on the byte length of MerchantName.
	ProductDescription string `json:"product_description,omitempty"`

	// MerchantCity is carried for completeness and is not validated.
	MerchantCity string `json:"merchant_city,omitempty"`

	// MerchantPhone is optional, "NNN-NNN-NNNN" or "NNN-AAAAAAA".
	MerchantPhone string `json:"merchant_phone,omitempty"`

	// MerchantURL is optional, at most 13 bytes.
	MerchantURL string `json:"merchant_url,omitempty"`

	// MerchantEmail is optional, at most 13 bytes.
	MerchantEmail string `json:"merchant_email,omitempty"`
}

// SoftDescriptorOptions holds the optional fields of a [SoftDescriptor].
type SoftDescriptorOptions struct {
	ProductDescription string
	MerchantCity       string
	MerchantPhone      string
	MerchantURL        string
	MerchantEmail      string
}

// NewSoftDescriptor builds a descriptor from the required merchant id and
// name plus the optional fields in opts.
func NewSoftDescriptor(merchantID, merchantName string, opts SoftDescriptorOptions) *SoftDescriptor {
	return &SoftDescriptor{
		MerchantID:         merchantID,
		MerchantName:       merchantName,
		ProductDescription: opts.ProductDescription,
		MerchantCity:       opts.MerchantCity,
		MerchantPhone:      opts.MerchantPhone,
		MerchantURL:        opts.MerchantURL,
		MerchantEmail:      opts.MerchantEmail,
	}
}

// Scheme returns the settlement scheme selected by the current merchant id.
func (d SoftDescriptor) Scheme() Scheme {
	return DetectScheme(d.MerchantID)
}

// ValidationResult is the transport shape of a descriptor validation.
type ValidationResult struct {
	Valid  bool        `json:"valid"`
	Scheme Scheme      `json:"scheme"`
	Errors FieldErrors `json:"errors"`
}
