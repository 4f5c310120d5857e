package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, subject string, expiresIn time.Duration) string {
	t.Helper()

	claims := Claims{
		Email: "user@example.com",
		Name:  "Test User",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	verifier := NewTokenVerifier(testSecret)
	api := r.Group("/api", RequireAuth(verifier))
	api.GET("/:user_id/whoami", RequireOwnUser(), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	return r
}

func doRequest(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestVerifyReturnsClaims(t *testing.T) {
	verifier := NewTokenVerifier(testSecret)
	token := signToken(t, testSecret, "user-123", time.Hour)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "Test User", claims.Name)
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	verifier := NewTokenVerifier(testSecret)

	_, err := verifier.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = verifier.Verify(signToken(t, "other-secret", "user-123", time.Hour))
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = verifier.Verify(signToken(t, testSecret, "user-123", -time.Hour))
	assert.ErrorIs(t, err, ErrExpiredToken)

	// A token without a subject carries no owner identity.
	_, err = verifier.Verify(signToken(t, testSecret, "", time.Hour))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRequireAuth(t *testing.T) {
	r := newAuthRouter()

	w := doRequest(r, "/api/user-123/whoami", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, "/api/user-123/whoami", "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, "/api/user-123/whoami", "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := signToken(t, testSecret, "user-123", time.Hour)
	w = doRequest(r, "/api/user-123/whoami", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
}

func TestRequireOwnUserRejectsMismatch(t *testing.T) {
	r := newAuthRouter()

	token := signToken(t, testSecret, "user-123", time.Hour)
	w := doRequest(r, "/api/someone-else/whoami", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
