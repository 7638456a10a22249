package auth

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// SessionRefresh is API middleware implementing the sliding session: when a
// request carries a valid cookie that is more than halfway through its
// duration, a fresh cookie is issued on the response. Requests without a
// valid token pass through untouched; authorization stays with the handlers.
func (h *AuthHandler) SessionRefresh(ctx huma.Context, next func(huma.Context)) {
	tokenString := cookieValue(ctx.Header("Cookie"), "auth_token")
	if tokenString != "" {
		if userID, expiresAt, err := h.parseToken(tokenString); err == nil && !expiresAt.IsZero() {
			if time.Until(expiresAt) < TokenDuration/2 {
				if newToken, err := h.GenerateToken(userID); err == nil {
					cookie := sessionCookie(newToken)
					ctx.AppendHeader("Set-Cookie", cookie.String())
				}
			}
		}
	}

	next(ctx)
}
