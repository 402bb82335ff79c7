package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ===================================
// CONSTANTS
// ===================================

const (
	SessionCookieName = "session_id"

	ContextKeySessionID = "session_id"
)

// SessionConfig holds cookie settings for the browser session.
type SessionConfig struct {
	MaxAge         int    // seconds
	CookieDomain   string // "" for current domain
	CookiePath     string // Default: "/"
	CookieSecure   bool   // true for HTTPS only
	CookieSameSite http.SameSite
}

// DefaultSessionConfig returns secure defaults.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		MaxAge:         60 * 60 * 24, // 1 day
		CookieDomain:   "",
		CookiePath:     "/",
		CookieSecure:   true, // set false for localhost dev
		CookieSameSite: http.SameSiteLaxMode,
	}
}

// ===================================
// SESSION MIDDLEWARE
// ===================================

// Session identifies the browser with a uuid cookie so the page can
// restore the last selection. A missing or malformed cookie is replaced.
//
// Usage:
//
//	router.Use(middleware.Session(config))
func Session(config SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := getSessionID(c)
		if sessionID == "" {
			sessionID = uuid.New().String()
			setSessionCookie(c, sessionID, config)
		}

		c.Set(ContextKeySessionID, sessionID)
		c.Next()
	}
}

// ===================================
// HELPER FUNCTIONS
// ===================================

// getSessionID retrieves session ID from cookie
func getSessionID(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || sessionID == "" {
		return ""
	}

	// Validate UUID format for security
	if _, err := uuid.Parse(sessionID); err != nil {
		return ""
	}

	return sessionID
}

func setSessionCookie(c *gin.Context, sessionID string, config SessionConfig) {
	c.SetSameSite(config.CookieSameSite)
	c.SetCookie(
		SessionCookieName,
		sessionID,
		config.MaxAge,
		config.CookiePath,
		config.CookieDomain,
		config.CookieSecure,
		true, // httpOnly
	)
}

// GetSessionID retrieves session ID from context
func GetSessionID(c *gin.Context) string {
	sessionID, exists := c.Get(ContextKeySessionID)
	if !exists {
		return ""
	}

	sid, ok := sessionID.(string)
	if !ok {
		return ""
	}
	return sid
}
