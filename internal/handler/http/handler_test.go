// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/devkit-vault/internal/config"
	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/internal/service"
	"github.com/MKhiriev/devkit-vault/internal/service/mock"
	"github.com/MKhiriev/devkit-vault/internal/utils"
	"github.com/MKhiriev/devkit-vault/models"
)

const testPluginID = "code_scanner"

var testSignKey = []byte("0123456789abcdef0123456789abcdef")

type bridgeFixture struct {
	handler *Handler
	router  http.Handler
	session *mock.MockSessionService
	plugins *mock.MockPluginAccessService
	pv      *mock.MockPluginVault
}

func newBridgeFixture(t *testing.T) *bridgeFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &bridgeFixture{
		session: mock.NewMockSessionService(ctrl),
		plugins: mock.NewMockPluginAccessService(ctrl),
		pv:      mock.NewMockPluginVault(ctrl),
	}
	f.pv.EXPECT().PluginID().Return(testPluginID).AnyTimes()

	f.handler = &Handler{
		session: f.session,
		plugins: f.plugins,
		signKey: testSignKey,
		cfg: config.Bridge{
			TokenDuration: time.Minute,
			AccessTimeout: 50 * time.Millisecond,
		},
		logger: logger.Nop(),
	}
	f.router = f.handler.Init()
	return f
}

func (f *bridgeFixture) do(t *testing.T, method, target string, body any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	return f.doContext(t, context.Background(), method, target, body, header)
}

func (f *bridgeFixture) doContext(t *testing.T, ctx context.Context, method, target string, body any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		buf := &bytes.Buffer{}
		require.NoError(t, json.NewEncoder(buf).Encode(b))
		rd = buf
	}

	req := httptest.NewRequestWithContext(ctx, method, target, rd)
	for k, v := range header {
		req.Header[k] = v
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func bearer(t *testing.T, pluginID string, key []byte) http.Header {
	t.Helper()
	token, err := utils.GenerateJWTToken(utils.BridgeTokenIssuer, pluginID, time.Minute, key)
	require.NoError(t, err)
	return http.Header{"Authorization": {"Bearer " + token.SignedString}}
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp utils.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp.Error
}

func TestNewHandler(t *testing.T) {
	services := &service.Services{}
	h1, err := NewHandler(services, config.Bridge{RateLimit: 5, RateBurst: 1}, logger.Nop())
	require.NoError(t, err)
	h2, err := NewHandler(services, config.Bridge{}, logger.Nop())
	require.NoError(t, err)

	assert.Len(t, h1.signKey, signKeySize)
	assert.NotEqual(t, h1.signKey, h2.signKey, "every process gets its own key")
	assert.NotNil(t, h1.limiter)
	assert.Nil(t, h2.limiter)
}

func TestVaultStatus(t *testing.T) {
	for _, locked := range []bool{true, false} {
		f := newBridgeFixture(t)
		f.session.EXPECT().Locked().Return(locked)

		rr := f.do(t, http.MethodGet, "/api/vault/status", nil, nil)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))

		var status models.VaultStatus
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&status))
		assert.Equal(t, locked, status.Locked)
	}
}

func TestUnknownRoutes(t *testing.T) {
	f := newBridgeFixture(t)

	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/nope"},
		{http.MethodDelete, "/api/vault/status"},
		{http.MethodGet, "/api/plugins/code_scanner/access"},
		{http.MethodPost, "/api/plugins/code_scanner/secrets/api_key"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rr := f.do(t, tt.method, tt.target, nil, nil)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}
