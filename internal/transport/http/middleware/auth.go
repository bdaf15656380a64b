package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/logger"
)

type authKey struct{}

// Claims is the bearer token payload issued by the user directory.
type Claims struct {
	Name        string            `json:"name"`
	GroupID     string            `json:"groupId"`
	Permissions map[string]string `json:"permissions"`
	jwt.RegisteredClaims
}

func (c Claims) Authorization() model.AuthorizationContext {
	perms := make(map[model.Resource]model.Access, len(c.Permissions))
	for res, acc := range c.Permissions {
		switch a := model.Access(strings.ToLower(acc)); a {
		case model.AccessAdd, model.AccessEdit:
			perms[model.Resource(res)] = a
		}
	}

	return model.AuthorizationContext{
		UserID:      c.Subject,
		UserName:    c.Name,
		GroupID:     c.GroupID,
		Permissions: perms,
	}
}

// Auth validates an HS256 bearer token and stores the caller's
// AuthorizationContext on the request context.
func Auth(secret []byte) func(http.Handler) http.Handler {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearer(r.Header.Get("Authorization"))
			if !ok {
				unauthorized(w, r, errors.New("missing bearer token"))
				return
			}

			var claims Claims
			_, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) { return secret, nil })
			if err != nil {
				unauthorized(w, r, err)
				return
			}
			if claims.Subject == "" {
				unauthorized(w, r, errors.New("token has no subject"))
				return
			}

			ctx := WithAuth(r.Context(), claims.Authorization())
			ctx = logger.WithContextFields(ctx, logger.String("user_id", claims.Subject))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithAuth(ctx context.Context, auth model.AuthorizationContext) context.Context {
	return context.WithValue(ctx, authKey{}, auth)
}

func AuthFromContext(ctx context.Context) (model.AuthorizationContext, bool) {
	auth, ok := ctx.Value(authKey{}).(model.AuthorizationContext)
	return auth, ok
}

func bearer(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter, r *http.Request, err error) {
	logger.Warn(r.Context(), "rejected request", logger.String("path", r.URL.Path), logger.ErrorF(err))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"code":    http.StatusUnauthorized,
		"message": model.ErrUnauthorized.Error(),
	})
}
