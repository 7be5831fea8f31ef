package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altamirahr/hris-service/internal/config"
)

func signToken(t *testing.T, secret, subject string, expiresAt time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}

	var capturedUser string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedUser = Username(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	guarded := AuthMiddleware(cfg)(next)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantUser   string
	}{
		{
			name:       "valid token",
			authHeader: "Bearer " + signToken(t, "test-secret", "hradmin", time.Now().Add(time.Hour)),
			wantStatus: http.StatusOK,
			wantUser:   "hradmin",
		},
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong secret",
			authHeader: "Bearer " + signToken(t, "other-secret", "hradmin", time.Now().Add(time.Hour)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			authHeader: "Bearer " + signToken(t, "test-secret", "hradmin", time.Now().Add(-time.Hour)),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capturedUser = ""
			req := httptest.NewRequest("GET", "/employees", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			guarded.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUser, capturedUser)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"unauthenticated"}`, rec.Body.String())
			}
		})
	}
}

type recorderStub struct {
	entries []string
}

func (r *recorderStub) RecordActivity(username, method, path string) {
	r.entries = append(r.entries, method+" "+path+" by "+username)
}

func TestActivityMiddleware_RecordsOnlyMutations(t *testing.T) {
	stub := &recorderStub{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := ActivityMiddleware(stub)(next)

	for _, method := range []string{"GET", "POST", "PUT", "DELETE"} {
		req := httptest.NewRequest(method, "/tickets", nil)
		wrapped.ServeHTTP(httptest.NewRecorder(), req)
	}

	require.Len(t, stub.entries, 3)
	assert.Equal(t, "POST /tickets by ", stub.entries[0])
}
