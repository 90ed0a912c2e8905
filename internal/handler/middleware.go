package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/BuzzLyutic/todo-auth-api/internal/token"
	"github.com/BuzzLyutic/todo-auth-api/pkg/respond"
)

type ctxKey int

const ownerIDKey ctxKey = iota

// RequireAuth пропускает запрос дальше только с валидным токеном.
// Ответ 401 одинаков для отсутствующего, битого и истекшего токена -
// клиенту не сообщается, что именно не так
func RequireAuth(tokens *token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))

			ownerID, err := tokens.Resolve(raw)
			if err != nil {
				respond.Error(w, r, http.StatusUnauthorized, "invalid or missing token")
				return
			}

			ctx := context.WithValue(r.Context(), ownerIDKey, ownerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OwnerID достает id владельца, положенный RequireAuth
func OwnerID(ctx context.Context) int64 {
	id, _ := ctx.Value(ownerIDKey).(int64)
	return id
}
