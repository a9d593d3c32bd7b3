package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartapp "github.com/storefront/cartsync/internal/application/cart"
	"github.com/storefront/cartsync/internal/infrastructure/auth"
	"github.com/storefront/cartsync/internal/infrastructure/config"
)

const sessionTestSecret = "0123456789abcdef0123456789abcdef"

func issueToken(t *testing.T, userID string, expiresIn time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "storefront",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   userID,
		Username: "tester",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(sessionTestSecret))
	require.NoError(t, err)
	return signed
}

func newSessionTestRouter() (*gin.Engine, *cartapp.Session) {
	gin.SetMode(gin.TestMode)
	credentials := auth.NewCredentialService(config.JWTConfig{
		Secret: sessionTestSecret,
		Issuer: "storefront",
	})

	var captured cartapp.Session
	r := gin.New()
	r.Use(SessionAuth(credentials))
	r.GET("/protected", func(c *gin.Context) {
		captured = GetSession(c)
		c.Status(http.StatusOK)
	})
	r.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, &captured
}

func TestSessionAuth_ValidToken(t *testing.T) {
	r, captured := newSessionTestRouter()
	token := issueToken(t, "user-1", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", captured.UserID)
	assert.Equal(t, token, captured.Token)
	assert.True(t, captured.Authenticated())
}

func TestSessionAuth_Rejections(t *testing.T) {
	r, _ := newSessionTestRouter()

	tests := []struct {
		name     string
		header   string
		wantCode string
	}{
		{"missing header", "", "ERR_TOKEN_INVALID"},
		{"not bearer", "Basic abc", "ERR_TOKEN_INVALID"},
		{"empty token", "Bearer ", "ERR_TOKEN_INVALID"},
		{"garbage token", "Bearer not-a-token", "ERR_TOKEN_INVALID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusUnauthorized, w.Code)

			var resp struct {
				Success bool `json:"success"`
				Error   struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestSessionAuth_ExpiredToken(t *testing.T) {
	r, _ := newSessionTestRouter()
	token := issueToken(t, "user-1", -time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ERR_TOKEN_EXPIRED", resp.Error.Code)
}

func TestSessionAuth_SkipPaths(t *testing.T) {
	r, _ := newSessionTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetSession_Unset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	sess := GetSession(c)
	assert.False(t, sess.Authenticated())
}
