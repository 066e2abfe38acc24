package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/SergeyBogomolovv/booking-service/internal/entities"
	"github.com/SergeyBogomolovv/booking-service/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
)

type actorKey struct{}

// Claims are issued by the auth service; this service only verifies them.
type Claims struct {
	UserID string        `json:"user_id"`
	Role   entities.Role `json:"role"`
	jwt.RegisteredClaims
}

var errInvalidToken = errors.New("invalid token")

// ParseToken verifies an HS256 token and returns the actor it identifies.
func ParseToken(secret []byte, raw string) (entities.Actor, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return entities.Actor{}, errInvalidToken
	}
	if claims.UserID == "" || !claims.Role.Valid() {
		return entities.Actor{}, errInvalidToken
	}
	return entities.Actor{ID: claims.UserID, Role: claims.Role}, nil
}

// Auth authenticates the request by its bearer token. The websocket endpoint
// cannot set headers from browsers, so a token query parameter is accepted too.
func Auth(secret []byte) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				raw = r.URL.Query().Get("token")
			}
			if raw == "" {
				utils.WriteError(w, "missing token", http.StatusUnauthorized)
				return
			}

			actor, err := ParseToken(secret, raw)
			if err != nil {
				utils.WriteError(w, err.Error(), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// RequireRoles must run after Auth.
func RequireRoles(roles ...entities.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFrom(r.Context())
			if !ok {
				utils.WriteError(w, "missing token", http.StatusUnauthorized)
				return
			}
			if !slices.Contains(roles, actor.Role) {
				utils.WriteError(w, "access denied", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFrom(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(entities.Actor)
	return actor, ok
}
