package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/congo-pay/walletpro/internal/config"
	"github.com/congo-pay/walletpro/internal/logging"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Config{AppName: "WalletPro", Env: "test", Port: "0", StaticDir: t.TempDir(), CORSAllowOrigins: "*"}
	srv, err := New(cfg, nil, logging.Discard())
	require.NoError(t, err)
	return srv
}

func call(t *testing.T, srv *Server, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, payload
}

func TestServerEndToEnd(t *testing.T) {
	srv := newTestServer(t)

	resp, payload := call(t, srv, http.MethodPost, "/setup", `{"name":"Main","balance":100}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(payload))
	var w struct {
		ID      string  `json:"id"`
		Balance float64 `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(payload, &w))
	assert.Equal(t, 100.0, w.Balance)

	resp, payload = call(t, srv, http.MethodPost, "/transact/"+w.ID, `{"amount":-150}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"insufficient funds"}`, string(payload))

	resp, payload = call(t, srv, http.MethodPost, "/transact/"+w.ID, `{"amount":-100}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var res struct {
		Balance       float64 `json:"balance"`
		TransactionID string  `json:"transactionId"`
	}
	require.NoError(t, json.Unmarshal(payload, &res))
	assert.Equal(t, 0.0, res.Balance)
	assert.NotEmpty(t, res.TransactionID)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestServerNotFoundIsJSON(t *testing.T) {
	srv := newTestServer(t)

	resp, payload := call(t, srv, http.MethodGet, "/wallet/unknown", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"wallet not found"}`, string(payload))
}
