package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hacklabr/wordpress-linkedin-login/internal/auth/provider"
	"github.com/hacklabr/wordpress-linkedin-login/internal/auth/resolver"
	"github.com/hacklabr/wordpress-linkedin-login/internal/auth/state"
	"github.com/hacklabr/wordpress-linkedin-login/internal/logger"
	"github.com/hacklabr/wordpress-linkedin-login/internal/session"
	"github.com/hacklabr/wordpress-linkedin-login/internal/ui"
)

// loginAction is the action value the callback must carry; requests for
// other actions are not ours.
const loginAction = "login"

type Handler struct {
	providers    *provider.Registry
	states       state.Store
	sessionStore session.Store
	resolver     resolver.Resolver

	loginURL   string
	stateTTL   time.Duration
	sessionTTL time.Duration
}

func NewHandler(
	registry *provider.Registry,
	states state.Store,
	sessionStore session.Store,
	resolver resolver.Resolver,
	loginURL string,
	stateTTL time.Duration,
	sessionTTL time.Duration,
) *Handler {
	return &Handler{
		providers:    registry,
		states:       states,
		sessionStore: sessionStore,
		resolver:     resolver,
		loginURL:     loginURL,
		stateTTL:     stateTTL,
		sessionTTL:   sessionTTL,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/oauth/login/:provider", h.login)
	r.GET("/oauth/callback/:provider", h.callback)
	r.GET("/oauth/button/:provider", h.loginButton)
	r.POST("/auth/logout", h.Logout)
}

// login starts an authorization attempt: fresh state persisted
// server-side, attempt id handed to the visitor, redirect to the
// provider.
func (h *Handler) login(c *gin.Context) {
	p, err := h.providers.Get(c.Param("provider"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown oauth provider"})
		return
	}

	authURL, err := h.beginAttempt(c, p)
	if err != nil {
		logger.Error("failed to begin login attempt", map[string]any{
			"provider": p.Name(),
			"error":    err.Error(),
		})
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusFound, authURL)
}

// callback finishes the flow: state check, code exchange, profile fetch,
// account resolution. Every failure is terminal for the request.
func (h *Handler) callback(c *gin.Context) {
	p, err := h.providers.Get(c.Param("provider"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown oauth provider"})
		return
	}

	if c.Query("action") != loginAction {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	// Provider-side denial. No detail leaks to the visitor.
	if errParam := c.Query("error"); errParam != "" {
		logger.Warn("oauth callback returned error", map[string]any{
			"provider": p.Name(),
			"error":    errParam,
		})
		clearAttemptCookie(c)
		c.Redirect(http.StatusFound, h.loginURL)
		return
	}

	code := c.Query("code")
	if code == "" {
		logger.Error("oauth callback missing code and error", nil)
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	if !h.checkState(c) {
		logger.Warn("oauth state mismatch", map[string]any{
			"provider": p.Name(),
		})
		c.Redirect(http.StatusFound, h.loginURL)
		return
	}

	accessToken, err := p.Exchange(c.Request.Context(), code)
	if err != nil {
		logger.Error("token exchange failed", map[string]any{
			"provider": p.Name(),
			"error":    err.Error(),
		})
		c.Redirect(http.StatusFound, h.loginURL)
		return
	}

	profile, err := p.FetchProfile(c.Request.Context(), accessToken)
	if err != nil {
		logger.Error("profile fetch failed", map[string]any{
			"provider": p.Name(),
			"error":    err.Error(),
		})
		c.Redirect(http.StatusFound, h.loginURL)
		return
	}

	outcome, err := h.resolver.Resolve(c.Request.Context(), profile.Email)
	if err != nil {
		logger.Error("failed to resolve account", map[string]any{
			"provider": p.Name(),
			"error":    err.Error(),
		})
		c.Redirect(http.StatusFound, h.loginURL)
		return
	}

	if outcome.Kind == resolver.Rejected {
		logger.Info("login rejected", map[string]any{
			"provider": p.Name(),
			"reason":   string(outcome.Reason),
		})
		h.renderLoginError(c, outcome.Message)
		return
	}

	if err := h.establishSession(c, outcome.UserID); err != nil {
		logger.Error("failed to establish session", map[string]any{
			"error": err.Error(),
		})
		c.Redirect(http.StatusFound, h.loginURL)
		return
	}

	logger.Info("login succeeded", map[string]any{
		"provider":    p.Name(),
		"user_id":     outcome.UserID,
		"provisioned": outcome.Kind == resolver.Provisioned,
	})

	c.Redirect(http.StatusFound, outcome.RedirectURL)
}

// checkState consumes the pending state for this attempt and compares it
// with the callback value. Consuming first makes the state single-use: a
// replayed callback finds nothing stored and fails here.
func (h *Handler) checkState(c *gin.Context) bool {
	stateQuery := c.Query("state")
	attemptID := attemptIDFromRequest(c)
	clearAttemptCookie(c)

	stored, err := h.states.Consume(c.Request.Context(), attemptID)
	if err != nil {
		return false
	}

	return stateQuery != "" && stored == stateQuery
}

func (h *Handler) establishSession(c *gin.Context, userID string) error {
	sessionID, err := session.GenerateID()
	if err != nil {
		return err
	}

	now := time.Now()
	expiresAt := now.Add(h.sessionTTL)

	sess := session.Session{
		SessionID: sessionID,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}

	if err := h.sessionStore.Create(c.Request.Context(), sess); err != nil {
		return err
	}

	session.SetCookie(c.Writer, sessionID, expiresAt, session.CookieOptions{
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func (h *Handler) renderLoginError(c *gin.Context, message string) {
	html, err := ui.LoginError(message)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *Handler) Logout(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		// best-effort delete; the cookie is cleared regardless
		_ = h.sessionStore.Delete(c.Request.Context(), cookie.Value)
	}

	session.ClearCookie(c.Writer, session.CookieOptions{
		Path:     "/",
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	c.Status(http.StatusNoContent)
}
