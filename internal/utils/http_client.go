package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// Retry settings applied by NewHTTPClient. Only transport failures are
// retried; HTTP error statuses are returned to the caller as they are.
const (
	DefaultRetryCount   = 2
	DefaultRetryWait    = 100 * time.Millisecond
	DefaultRetryMaxWait = time.Second
)

// NewHTTPClient returns an independent client speaking JSON to baseURL.
// A zero timeout leaves resty's default (none) in place.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 5*time.Second)
//	resp, err := client.R().SetBody(descriptor).Post("/api/descriptors/validate")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(DefaultRetryCount).
		SetRetryWaitTime(DefaultRetryWait).
		SetRetryMaxWaitTime(DefaultRetryMaxWait)

	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	return &HTTPClient{Client: c}
}
