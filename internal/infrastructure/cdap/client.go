// Package cdap issues the GET against a CDAP router's system services
// status endpoint.
package cdap

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/doeshing/check-cdap/internal/domain"
	"github.com/doeshing/check-cdap/internal/ports"
	"github.com/doeshing/check-cdap/internal/version"
)

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds optional collaborators for the client.
type ClientConfig struct {
	// HTTPClient replaces the per-request client built from the request's
	// timeout and insecure flag. Tests use it to reach httptest servers.
	HTTPClient HTTPDoer

	Logger ports.Logger
}

// Client implements ports.StatusFetcher.
type Client struct {
	httpClient HTTPDoer
	logger     ports.Logger
}

// NewClient creates a new status client.
func NewClient(cfg ClientConfig) *Client {
	return &Client{
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}
}

// Fetch implements ports.StatusFetcher.
func (c *Client) Fetch(ctx context.Context, req domain.StatusRequest) (domain.StatusResponse, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	requestID := "req_" + uuid.New().String()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return domain.StatusResponse{RequestID: requestID}, fmt.Errorf("%w: build request: %v", domain.ErrUnreachable, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", "check_cdap/"+version.Version)
	httpReq.Header.Set(domain.RequestIDHeader, requestID)
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	if c.logger != nil {
		c.logger.Debug("sending request", map[string]interface{}{
			"method":     http.MethodGet,
			"url":        req.URL,
			"request_id": requestID,
		})
	}

	resp, err := c.client(req).Do(httpReq)
	if err != nil {
		// *url.Error repeats method and URL, which the caller already knows.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return domain.StatusResponse{RequestID: requestID}, fmt.Errorf("%w: %v", domain.ErrUnreachable, err)
	}
	defer resp.Body.Close()

	var body bytes.Buffer
	if _, err := body.ReadFrom(io.LimitReader(resp.Body, domain.MaxResponseBytes)); err != nil {
		return domain.StatusResponse{RequestID: requestID}, fmt.Errorf("%w: read body: %v", domain.ErrUnreachable, err)
	}

	return domain.StatusResponse{
		Code:      resp.StatusCode,
		Body:      body.Bytes(),
		RequestID: requestID,
	}, nil
}

func (c *Client) client(req domain.StatusRequest) HTTPDoer {
	if c.httpClient != nil {
		return c.httpClient
	}
	return newHTTPClient(req)
}

func newHTTPClient(req domain.StatusRequest) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if req.Insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // operator opted in with -k
	}
	return &http.Client{
		Timeout:   req.Timeout,
		Transport: transport,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

var _ ports.StatusFetcher = (*Client)(nil)
