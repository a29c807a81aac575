// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-soft-descriptor/internal/gateway"
	"github.com/MKhiriev/go-soft-descriptor/internal/service"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var gwErr *gateway.GatewayError
	switch {
	case errors.As(err, &gwErr):
		return "Gateway error: " + gwErr.Message
	case errors.Is(err, service.ErrGatewayUnavailable):
		return "The server has no gateway configured"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}
