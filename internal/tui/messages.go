package tui

import (
	"github.com/MKhiriev/go-soft-descriptor/models"
)

type versionMsg struct {
	version string
	err     error
}

type submitDoneMsg struct {
	result models.ValidationResult
	err    error
}

type purchaseDoneMsg struct {
	resp models.GatewayResponse
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
