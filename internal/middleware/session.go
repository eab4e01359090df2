package middleware

import (
	"context"
	"net/http"
	"strings"

	"maori_dictionary/internal/model"
	"maori_dictionary/internal/webutil"
)

// IdentityResolver はセッショントークンからログイン中のユーザーを復元します。
// 未ログインは nil, nil。
type IdentityResolver interface {
	CurrentIdentity(ctx context.Context, token string) (*model.Identity, error)
}

// SessionMiddleware はリクエストのトークンを解決し、Identity (未ログインなら nil) をコンテキストに入れます。
// ここでは拒否しない。権限の判定は Guard が行う。
func SessionMiddleware(resolver IdentityResolver, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			token := TokenFromRequest(r, cookieName)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := resolver.CurrentIdentity(r.Context(), token)
			if err != nil {
				logger.Error("Failed to resolve session", "error", err)
				webutil.HandleError(w, logger, err)
				return
			}
			if identity == nil {
				logger.Debug("Session token did not resolve to a session")
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithLogger(r.Context(), logger.With("user_id", identity.UserID.String()))
			ctx = WithIdentity(ctx, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TokenFromRequest は Authorization: Bearer ヘッダーを優先し、無ければ cookie からトークンを取り出します。
// Bearer 以外のスキーム (プロキシの Basic など) は無視して cookie を見る。
func TokenFromRequest(r *http.Request, cookieName string) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookie, err := r.Cookie(cookieName); err == nil {
		return cookie.Value
	}
	return ""
}

func WithIdentity(ctx context.Context, identity *model.Identity) context.Context {
	return context.WithValue(ctx, model.IdentityKey, identity)
}

// IdentityFromContext はログイン中のユーザーを返します。未ログインなら nil。
func IdentityFromContext(ctx context.Context) *model.Identity {
	identity, _ := ctx.Value(model.IdentityKey).(*model.Identity)
	return identity
}
