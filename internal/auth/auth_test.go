package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := Sign("operator")
	require.NoError(t, err)

	claims, err := Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Subject)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := Sign("operator")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRES_IN", "-1h")
	token, err := Sign("operator")
	require.NoError(t, err)

	_, err = Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := Verify("not.a.token")
	assert.Error(t, err)
}

func TestBearerMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := Sign("operator")
	require.NoError(t, err)

	var gotSubject string
	handler := Bearer()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject = FromContext(r.Context()).Subject
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "operator", gotSubject)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer nope")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NoError(t, CheckPassword(hash, "hunter2"))
	assert.Error(t, CheckPassword(hash, "hunter3"))
}

func TestClaimsContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, FromContext(req.Context()).Subject)
	ctx := WithClaims(req.Context(), Claims{Subject: "operator"})
	assert.Equal(t, "operator", FromContext(ctx).Subject)
}
