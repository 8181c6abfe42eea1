package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/mindpairing/mindpairing-backend/internal/forum"
	"github.com/mindpairing/mindpairing-backend/internal/identity"
)

type ctxKey int

const userCtxKey ctxKey = iota

// Authenticator resolves the bearer token through the identity provider and
// maps the external identity to a users row, creating it on first sight.
// Requests without a valid token stop here with 401.
type Authenticator struct {
	provider identity.Provider
	users    forum.UserRepo
	logger   *zap.SugaredLogger
}

func NewAuthenticator(provider identity.Provider, users forum.UserRepo, logger *zap.SugaredLogger) *Authenticator {
	return &Authenticator{provider: provider, users: users, logger: logger}
}

func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeUnauthorized(w, "authorization required")
			return
		}

		id, err := a.provider.Resolve(r.Context(), token)
		if err != nil {
			if errors.Is(err, identity.ErrUnauthorized) {
				writeUnauthorized(w, "invalid token")
				return
			}
			a.logger.Errorw("Identity resolution failed", "error", err)
			http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
			return
		}

		user, err := a.users.GetOrCreateByExternalID(r.Context(), id.ExternalID, id.Profile)
		if err != nil {
			a.logger.Errorw("User lookup failed", "external_id", id.ExternalID, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), userCtxKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"msg":"` + msg + `"}`))
}

// userFrom returns the authenticated user. Handlers behind the Authenticator
// may assume it is present.
func userFrom(ctx context.Context) *forum.User {
	user, _ := ctx.Value(userCtxKey).(*forum.User)
	return user
}
