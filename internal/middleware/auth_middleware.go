package middleware

import (
	"net/http"

	"cancha_reservas_web/internal/session"
	"cancha_reservas_web/pkg/utils"

	"github.com/gin-gonic/gin"
)

// sessionKey is the gin context key holding the hydrated session.
const sessionKey = "session"

// SessionMiddleware rehydrates the session from the cookie on every request.
// The guard decision is never cached across requests.
func SessionMiddleware(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionKey, manager.FromRequest(c))
		c.Next()
	}
}

// CurrentSession returns the session hydrated by SessionMiddleware, or an
// anonymous session if the middleware did not run.
func CurrentSession(c *gin.Context) session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(session.Session); ok {
			return s
		}
	}
	return session.Session{}
}

// RequireSession gates a route subtree behind an authenticated session.
// Authorization failures are answered with a navigation target, never an
// inline error.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).LoggedIn() {
			utils.RespondWithRedirect(c,
				utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authentication required.", ""),
				"/login")
			return
		}
		c.Next()
	}
}

// RequireAdmin gates a route subtree behind the admin role. Logged-in
// non-admins are sent back to the catalog root.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := CurrentSession(c)
		if !s.LoggedIn() {
			utils.RespondWithRedirect(c,
				utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authentication required.", ""),
				"/login")
			return
		}
		if !s.IsAdmin() {
			utils.RespondWithRedirect(c,
				utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Admin role required.", ""),
				"/")
			return
		}
		c.Next()
	}
}
