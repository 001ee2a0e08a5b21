// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/internal/utils"
	"github.com/MKhiriev/devkit-vault/models"
)

const defaultRequestTimeout = 10 * time.Second

// BridgeClientConfig configures [NewBridgeClient].
type BridgeClientConfig struct {
	// Address is the bridge host:port or base URL.
	Address string

	PluginID string

	// RequestTimeout bounds every call except RequestAccess, which waits
	// for the user and is bounded by its context only.
	RequestTimeout time.Duration
}

type httpBridgeClient struct {
	client   *utils.HTTPClient
	pluginID string
	timeout  time.Duration

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewBridgeClient returns an HTTP [BridgeClient]. The address is normalised
// to a base URL; a missing scheme means http.
func NewBridgeClient(cfg BridgeClientConfig, logger *logger.Logger) (BridgeClient, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid bridge address: %w", err)
	}
	if cfg.PluginID == "" {
		return nil, errors.New("plugin id is required")
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &httpBridgeClient{
		client:   utils.NewHTTPClient(baseURL, 0),
		pluginID: cfg.PluginID,
		timeout:  timeout,
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpBridgeClient) PluginID() string {
	return c.pluginID
}

func (c *httpBridgeClient) setToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *httpBridgeClient) getToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *httpBridgeClient) Status(ctx context.Context) (models.VaultStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var status models.VaultStatus
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/api/vault/status")
	if err != nil {
		return models.VaultStatus{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultStatus{}, err
	}
	return status, nil
}

func (c *httpBridgeClient) RequestAccess(ctx context.Context) (models.AccessResponse, error) {
	var access models.AccessResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("pluginID", c.pluginID).
		SetResult(&access).
		Post("/api/plugins/{pluginID}/access")
	if err != nil {
		return models.AccessResponse{}, fmt.Errorf("access request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		c.logger.Warn().Err(err).Str("plugin_id", c.pluginID).Msg("vault access not granted")
		return models.AccessResponse{}, err
	}
	if access.Token == "" {
		return models.AccessResponse{}, fmt.Errorf("%w: empty token in response", ErrInternalServerError)
	}

	c.setToken(access.Token)
	c.logger.Info().Str("plugin_id", c.pluginID).Time("expires_at", access.ExpiresAt).Msg("vault access granted")
	return access, nil
}

func (c *httpBridgeClient) GetSecret(ctx context.Context, name string) (string, error) {
	req, cancel, err := c.authorized(ctx)
	if err != nil {
		return "", err
	}
	defer cancel()

	var secret models.SecretValue
	resp, err := req.
		SetPathParam("name", name).
		SetResult(&secret).
		Get("/api/plugins/{pluginID}/secrets/{name}")
	if err != nil {
		return "", fmt.Errorf("get secret request: %w", err)
	}
	if err = c.mapAuthorizedError(resp); err != nil {
		return "", err
	}
	return secret.Value, nil
}

func (c *httpBridgeClient) PutSecret(ctx context.Context, name, value string) error {
	req, cancel, err := c.authorized(ctx)
	if err != nil {
		return err
	}
	defer cancel()

	resp, err := req.
		SetPathParam("name", name).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SecretValue{Value: value}).
		Put("/api/plugins/{pluginID}/secrets/{name}")
	if err != nil {
		return fmt.Errorf("put secret request: %w", err)
	}
	return c.mapAuthorizedError(resp)
}

// authorized builds a request carrying the bearer token and the per-call
// timeout.
func (c *httpBridgeClient) authorized(ctx context.Context) (*resty.Request, context.CancelFunc, error) {
	token := c.getToken()
	if token == "" {
		return nil, nil, ErrNoToken
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	req := c.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetPathParam("pluginID", c.pluginID)
	return req, cancel, nil
}

// mapAuthorizedError maps the response and drops the token once the bridge
// rejects it, so the next call reports ErrNoToken.
func (c *httpBridgeClient) mapAuthorizedError(resp *resty.Response) error {
	err := mapHTTPError(resp)
	if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden) {
		c.setToken("")
	}
	return err
}
