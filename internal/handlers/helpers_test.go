package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cancha_reservas_web/internal/middleware"
	"cancha_reservas_web/internal/session"

	"github.com/gin-gonic/gin"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testSessions() *session.Manager {
	m := session.NewManager(false)
	m.Now = func() time.Time { return fixedNow }
	return m
}

// sessionEngine wires the session middleware the way the router does, so
// handlers under test see a hydrated session.
func sessionEngine(register func(*gin.Engine)) *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.SessionMiddleware(testSessions()))
	register(engine)
	return engine
}

func sessionToken(t *testing.T, rol string) string {
	t.Helper()
	header, _ := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	payload, err := json.Marshal(map[string]interface{}{
		"id":  float64(7),
		"sub": "ana@example.com",
		"rol": rol,
		"exp": fixedNow.Add(time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	return base64.RawURLEncoding.EncodeToString(header) + "." +
		base64.RawURLEncoding.EncodeToString(payload) + "." +
		base64.RawURLEncoding.EncodeToString([]byte("sig"))
}

func performJSON(t *testing.T, engine *gin.Engine, method, path, token, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			// Array-shaped responses land here; callers decode those
			// themselves.
			decoded = nil
		}
	}
	return w, decoded
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
