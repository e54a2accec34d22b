// Package session persists the access token in a cookie and derives the user
// identity from it on every request. The cookie plays the role the original
// storefront gave localStorage: a single token under a fixed key, rehydrated
// at the start of each interaction, removed on logout or decode failure.
package session

import (
	"net/http"
	"time"

	"cancha_reservas_web/internal/models"
	"cancha_reservas_web/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CookieName is the fixed storage key for the access token.
const CookieName = "auth_token"

// cookieMaxAge outlives any token the users service issues; token expiry, not
// cookie expiry, is what ends a session.
const cookieMaxAge = int(7 * 24 * time.Hour / time.Second)

// Session pairs the raw token with its decoded identity. Identity is non-nil
// if and only if the token is present and decodable.
type Session struct {
	Token    string
	Identity *models.Identity
}

// LoggedIn reports whether an identity could be derived.
func (s Session) LoggedIn() bool {
	return s.Identity != nil
}

// IsAdmin reports whether the session belongs to an admin.
func (s Session) IsAdmin() bool {
	return s.Identity != nil && s.Identity.IsAdmin()
}

// Manager reads and writes the session cookie. Now is injectable so tests can
// feed a fixed clock to the expiry check.
type Manager struct {
	Secure bool
	Now    func() time.Time
}

// NewManager creates a Manager. secure controls the cookie's Secure flag.
func NewManager(secure bool) *Manager {
	return &Manager{Secure: secure, Now: time.Now}
}

// FromRequest rehydrates the session from the cookie. An undecodable stored
// token is dropped immediately so the browser stops resending it, and the
// request proceeds logged out.
func (m *Manager) FromRequest(c *gin.Context) Session {
	token, err := c.Cookie(CookieName)
	if err != nil || token == "" {
		return Session{}
	}
	identity, err := utils.DecodeIdentity(token, m.Now())
	if err != nil {
		m.clearCookie(c)
		return Session{}
	}
	return Session{Token: token, Identity: identity}
}

// Login stores the token and derives the identity. On decode failure it
// clears any persisted token and returns an anonymous session; it never
// reports an error to the caller.
func (m *Manager) Login(c *gin.Context, token string) Session {
	identity, err := utils.DecodeIdentity(token, m.Now())
	if err != nil {
		utils.LogWarn(err, "session: received undecodable token on login")
		m.clearCookie(c)
		return Session{}
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, cookieMaxAge, "/", "", m.Secure, true)
	return Session{Token: token, Identity: identity}
}

// Logout removes the persisted token.
func (m *Manager) Logout(c *gin.Context) {
	m.clearCookie(c)
}

func (m *Manager) clearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", m.Secure, true)
}
