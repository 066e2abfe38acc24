package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/booking-service/internal/entities"
	"github.com/SergeyBogomolovv/booking-service/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("0123456789abcdef")

func sign(t *testing.T, method jwt.SigningMethod, key any, claims middleware.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func claims(userID string, role entities.Role, expires time.Time) middleware.Claims {
	return middleware.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
}

func TestAuth(t *testing.T) {
	valid := sign(t, jwt.SigningMethodHS256, secret, claims("c1", entities.RoleCustomer, time.Now().Add(time.Hour)))

	testCases := []struct {
		name       string
		header     string
		query      string
		wantStatus int
		wantActor  entities.Actor
	}{
		{
			name:       "bearer header",
			header:     "Bearer " + valid,
			wantStatus: http.StatusOK,
			wantActor:  entities.Actor{ID: "c1", Role: entities.RoleCustomer},
		},
		{
			name:       "query token",
			query:      "?token=" + valid,
			wantStatus: http.StatusOK,
			wantActor:  entities.Actor{ID: "c1", Role: entities.RoleCustomer},
		},
		{
			name:       "missing token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired",
			header:     "Bearer " + sign(t, jwt.SigningMethodHS256, secret, claims("c1", entities.RoleCustomer, time.Now().Add(-time.Minute))),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong secret",
			header:     "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("another-secret-key"), claims("c1", entities.RoleCustomer, time.Now().Add(time.Hour))),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "other hmac algorithm",
			header:     "Bearer " + sign(t, jwt.SigningMethodHS512, secret, claims("c1", entities.RoleCustomer, time.Now().Add(time.Hour))),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown role",
			header:     "Bearer " + sign(t, jwt.SigningMethodHS256, secret, claims("c1", "root", time.Now().Add(time.Hour))),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage",
			header:     "Bearer abc.def.ghi",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got entities.Actor
			r := chi.NewRouter()
			r.Use(middleware.Auth(secret))
			r.Get("/", func(w http.ResponseWriter, r *http.Request) {
				got, _ = middleware.ActorFrom(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/"+tc.query, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Equal(t, tc.wantActor, got)
		})
	}
}

func TestRequireRoles(t *testing.T) {
	testCases := []struct {
		name       string
		actor      *entities.Actor
		wantStatus int
	}{
		{name: "allowed", actor: &entities.Actor{ID: "v1", Role: entities.RoleVendor}, wantStatus: http.StatusOK},
		{name: "denied", actor: &entities.Actor{ID: "c1", Role: entities.RoleCustomer}, wantStatus: http.StatusForbidden},
		{name: "anonymous", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := middleware.RequireRoles(entities.RoleVendor, entities.RoleAdmin)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tc.actor != nil {
				req = req.WithContext(middleware.WithActor(req.Context(), *tc.actor))
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}
