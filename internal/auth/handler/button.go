package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hacklabr/wordpress-linkedin-login/internal/logger"
	"github.com/hacklabr/wordpress-linkedin-login/internal/ui"
)

// loginButton renders the login link markup for embedding in a page.
// Each render starts a fresh attempt, so the URL carries a usable state.
// An optional text query overrides the link label.
func (h *Handler) loginButton(c *gin.Context) {
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

	html, err := ui.LoginLink(authURL, c.Query("text"))
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
