package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hacklabr/wordpress-linkedin-login/internal/auth/provider"
)

// attemptCookieName carries the visitor's attempt id between the
// authorization redirect and the callback. The state value itself stays
// server-side; the cookie only keys it.
const attemptCookieName = "__oauth_attempt"

// beginAttempt stores a fresh state for this visitor and returns the
// provider authorization URL carrying it.
func (h *Handler) beginAttempt(c *gin.Context, p provider.OAuthProvider) (string, error) {
	attemptID, state, err := h.states.Begin(c.Request.Context())
	if err != nil {
		return "", err
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     attemptCookieName,
		Value:    attemptID,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.stateTTL.Seconds()),
	})

	return p.AuthCodeURL(state), nil
}

func attemptIDFromRequest(c *gin.Context) string {
	cookie, err := c.Request.Cookie(attemptCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func clearAttemptCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     attemptCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
