package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/feadoor/cryptopals/internal/auth"
)

func TestRouterAuthFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)
	srv := httptest.NewServer(NewRouter(nil, zap.NewNop().Sugar(), hash))
	defer srv.Close()

	// Health endpoint is public.
	res, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Attack endpoints require a bearer token.
	res, err = http.Post(srv.URL+"/v1/attacks/cut-and-paste", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// Log in, then retry with the token.
	res, err = http.Post(srv.URL+"/v1/auth/login", "application/json",
		strings.NewReader(`{"password":"hunter2"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&login))
	res.Body.Close()

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/v1/attacks/cut-and-paste", strings.NewReader("{}"))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	res, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	var forge struct {
		Admin bool `json:"admin"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&forge))
	assert.True(t, forge.Admin)

	// Runs listing is protected too, and reports missing persistence.
	req, err = http.NewRequest(http.MethodGet, srv.URL+"/v1/runs", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	res, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
}
