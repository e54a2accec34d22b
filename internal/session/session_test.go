package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

func testManager() *Manager {
	m := NewManager(false)
	m.Now = func() time.Time { return fixedNow }
	return m
}

func clientToken(t *testing.T, exp time.Time) string {
	t.Helper()
	header, _ := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	payload, err := json.Marshal(map[string]interface{}{
		"id":  float64(7),
		"sub": "ana@example.com",
		"rol": "cliente",
		"exp": exp.Unix(),
	})
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	return base64.RawURLEncoding.EncodeToString(header) + "." +
		base64.RawURLEncoding.EncodeToString(payload) + "." +
		base64.RawURLEncoding.EncodeToString([]byte("sig"))
}

func requestWithCookie(token string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		c.Request.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	}
	return c, w
}

func TestFromRequestValidCookie(t *testing.T) {
	token := clientToken(t, fixedNow.Add(time.Hour))
	c, _ := requestWithCookie(token)

	s := testManager().FromRequest(c)
	if !s.LoggedIn() {
		t.Fatal("session with valid cookie not logged in")
	}
	if s.Token != token {
		t.Errorf("Token = %q, want the cookie value", s.Token)
	}
	if s.Identity.Email != "ana@example.com" {
		t.Errorf("Email = %q, want ana@example.com", s.Identity.Email)
	}
	if s.IsAdmin() {
		t.Error("cliente session reported as admin")
	}
}

func TestFromRequestNoCookie(t *testing.T) {
	c, w := requestWithCookie("")

	s := testManager().FromRequest(c)
	if s.LoggedIn() {
		t.Fatal("session without cookie reported logged in")
	}
	if got := w.Header().Get("Set-Cookie"); got != "" {
		t.Errorf("no cookie to clear, but Set-Cookie = %q", got)
	}
}

// An undecodable stored token is removed immediately so the browser stops
// resending it, and the request proceeds logged out.
func TestFromRequestUndecodableCookieIsCleared(t *testing.T) {
	for name, token := range map[string]string{
		"garbage": "not-a-jwt",
		"expired": clientToken(t, fixedNow.Add(-time.Minute)),
	} {
		t.Run(name, func(t *testing.T) {
			c, w := requestWithCookie(token)

			s := testManager().FromRequest(c)
			if s.LoggedIn() {
				t.Fatal("undecodable token produced a logged-in session")
			}
			setCookie := w.Header().Get("Set-Cookie")
			if !strings.Contains(setCookie, CookieName+"=") {
				t.Fatalf("Set-Cookie = %q, want a %s clearing cookie", setCookie, CookieName)
			}
			if !strings.Contains(setCookie, "Max-Age=0") {
				t.Errorf("Set-Cookie = %q, want Max-Age=0", setCookie)
			}
		})
	}
}

func TestLoginStoresToken(t *testing.T) {
	token := clientToken(t, fixedNow.Add(time.Hour))
	c, w := requestWithCookie("")

	s := testManager().Login(c, token)
	if !s.LoggedIn() {
		t.Fatal("login with valid token did not produce a session")
	}
	setCookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, CookieName+"="+token) {
		t.Errorf("Set-Cookie = %q, want the token under %s", setCookie, CookieName)
	}
	if !strings.Contains(setCookie, "HttpOnly") {
		t.Errorf("Set-Cookie = %q, want HttpOnly", setCookie)
	}
}

func TestLoginUndecodableTokenFailsOpen(t *testing.T) {
	c, w := requestWithCookie("")

	s := testManager().Login(c, "broken")
	if s.LoggedIn() {
		t.Fatal("login with broken token produced a session")
	}
	if got := w.Header().Get("Set-Cookie"); !strings.Contains(got, "Max-Age=0") {
		t.Errorf("Set-Cookie = %q, want a clearing cookie", got)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	c, w := requestWithCookie(clientToken(t, fixedNow.Add(time.Hour)))

	testManager().Logout(c)
	setCookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, "Max-Age=0") {
		t.Errorf("Set-Cookie = %q, want Max-Age=0", setCookie)
	}
}
