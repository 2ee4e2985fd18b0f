// Package kycapi is the HTTP client for the KYC, bank and company registry
// provider.
package kycapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"dsa-onboarding/internal/platform/config"
	"dsa-onboarding/internal/verification/providers"
)

const providerID = "kycapi"

// defaultTokenTTL applies when the provider does not say how long a token lives.
const defaultTokenTTL = 23 * time.Hour

// Client talks to the verification provider. It implements
// ports.IDRegistry, ports.BankRegistry and ports.CompanyRegistry.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	apiVersion   string
	http         *http.Client
	tokens       *tokenCache
	logger       *slog.Logger
}

// Option configures the client.
type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func withClock(now func() time.Time) Option {
	return func(c *Client) { c.tokens.now = now }
}

// New builds a client from provider configuration.
func New(cfg config.ProviderConfig, opts ...Option) *Client {
	c := &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		apiVersion:   cfg.APIVersion,
		http:         &http.Client{Timeout: cfg.Timeout},
		logger:       slog.Default(),
	}
	c.tokens = newTokenCache(c.authenticate, time.Now, cfg.Timeout)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type authResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (c *Client) authenticate(ctx context.Context) (string, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/authenticate", nil)
	if err != nil {
		return "", 0, providers.NewProviderError(providers.ErrorInternal, providerID, "authenticate", "build request", err)
	}
	req.Header.Set("x-api-key", c.clientID)
	req.Header.Set("x-api-secret", c.clientSecret)
	req.Header.Set("x-api-version", c.apiVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", 0, transportError("authenticate", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", 0, statusError("authenticate", resp)
	}
	var auth authResponse
	if err := decodeEnvelope(resp.Body, &auth); err != nil {
		return "", 0, providers.NewProviderError(providers.ErrorBadData, providerID, "authenticate", "decode token", err)
	}
	if auth.AccessToken == "" {
		return "", 0, providers.NewProviderError(providers.ErrorAuthentication, providerID, "authenticate", "empty access token", nil)
	}
	ttl := defaultTokenTTL
	if auth.ExpiresIn > 0 {
		ttl = time.Duration(auth.ExpiresIn) * time.Second
	}
	c.logger.Info("provider access token refreshed", "provider", providerID, "ttl", ttl.String())
	return auth.AccessToken, ttl, nil
}

// call performs an authenticated JSON request. An auth rejection of the
// cached token is retried exactly once with a fresh token; nothing else is.
func (c *Client) call(ctx context.Context, op, method, path string, body, out any) error {
	resp, err := c.send(ctx, op, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(op, resp)
	}
	if out == nil {
		return nil
	}
	if err := decodeEnvelope(resp.Body, out); err != nil {
		return providers.NewProviderError(providers.ErrorBadData, providerID, op, "decode response", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, op, method, path string, body any) (*http.Response, error) {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, providers.NewProviderError(providers.ErrorInternal, providerID, op, "encode request", err)
		}
		payload = b
	}

	for attempt := 0; ; attempt++ {
		token, err := c.tokens.Get(ctx)
		if err != nil {
			return nil, err
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return nil, providers.NewProviderError(providers.ErrorInternal, providerID, op, "build request", err)
		}
		req.Header.Set("authorization", token)
		req.Header.Set("x-api-key", c.clientID)
		req.Header.Set("x-api-version", c.apiVersion)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, transportError(op, err)
		}
		if resp.StatusCode == http.StatusUnauthorized && attempt == 0 {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			c.tokens.Invalidate(token)
			c.logger.Warn("provider rejected access token, refreshing once", "provider", providerID, "operation", op)
			continue
		}
		return resp, nil
	}
}

func decodeEnvelope(r io.Reader, out any) error {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return err
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return errors.New("response has no data")
	}
	return json.Unmarshal(env.Data, out)
}

func transportError(op string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return providers.NewProviderError(providers.ErrorTimeout, providerID, op, "request timed out", err)
	}
	return providers.NewProviderError(providers.ErrorProviderOutage, providerID, op, "request failed", err)
}

func statusError(op string, resp *http.Response) error {
	msg := readMessage(resp.Body)
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return providers.NewProviderError(providers.ErrorAuthentication, providerID, op, msg, nil)
	case resp.StatusCode == http.StatusNotFound:
		return providers.NewProviderError(providers.ErrorNotFound, providerID, op, msg, nil)
	case resp.StatusCode == http.StatusTooManyRequests:
		return providers.NewProviderError(providers.ErrorRateLimited, providerID, op, msg, nil)
	case resp.StatusCode == http.StatusGatewayTimeout || resp.StatusCode == http.StatusRequestTimeout:
		return providers.NewProviderError(providers.ErrorTimeout, providerID, op, msg, nil)
	case resp.StatusCode >= 500:
		return providers.NewProviderError(providers.ErrorProviderOutage, providerID, op, msg, nil)
	case resp.StatusCode >= 400:
		return providers.NewProviderError(providers.ErrorRejected, providerID, op, msg, nil)
	default:
		return providers.NewProviderError(providers.ErrorBadData, providerID, op, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}
}

func readMessage(r io.Reader) string {
	var env envelope
	b, _ := io.ReadAll(io.LimitReader(r, 4096))
	if json.Unmarshal(b, &env) == nil && env.Message != "" {
		return env.Message
	}
	if s := strings.TrimSpace(string(b)); s != "" {
		return s
	}
	return "no message"
}
