package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-soft-descriptor/internal/config"
	"github.com/MKhiriev/go-soft-descriptor/internal/logger"
	"github.com/MKhiriev/go-soft-descriptor/internal/utils"
	"github.com/MKhiriev/go-soft-descriptor/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ValidateDescriptor implements [ServerAdapter]. Both 200 and 422 carry a
// validation result.
func (h *httpServerAdapter) ValidateDescriptor(ctx context.Context, d models.SoftDescriptor) (models.ValidationResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(d).
		Post("/api/descriptors/validate")
	if err != nil {
		return models.ValidationResult{}, fmt.Errorf("validate descriptor request: %w", err)
	}

	if resp.StatusCode() != http.StatusUnprocessableEntity {
		if err = mapHTTPError(resp); err != nil {
			return models.ValidationResult{}, err
		}
	}

	var result models.ValidationResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.ValidationResult{}, fmt.Errorf("decode validation result: %w", err)
	}

	h.logger.Debug().
		Str("merchant_id", d.MerchantID).
		Bool("valid", result.Valid).
		Msg("descriptor validated by server")

	return result, nil
}

// Gateway implements [ServerAdapter].
func (h *httpServerAdapter) Gateway(ctx context.Context, action models.GatewayAction, req models.GatewayRequest) (models.GatewayResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("action", string(action)).
		SetBody(req).
		Post("/api/gateway/{action}")
	if err != nil {
		return models.GatewayResponse{}, fmt.Errorf("gateway request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.GatewayResponse{}, err
	}

	var out models.GatewayResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.GatewayResponse{}, fmt.Errorf("decode gateway response: %w", err)
	}

	return out, nil
}

// GetServerVersion implements [ServerAdapter].
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
