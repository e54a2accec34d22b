package handlers

import (
	"errors"
	"net/http"

	"cancha_reservas_web/internal/middleware"
	"cancha_reservas_web/internal/models"
	"cancha_reservas_web/internal/services"
	"cancha_reservas_web/internal/session"
	"cancha_reservas_web/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the auth service and the session manager.
type AuthHandler struct {
	authService services.AuthService
	sessions    *session.Manager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService, sm *session.Manager) *AuthHandler {
	return &AuthHandler{authService: as, sessions: sm}
}

// Login exchanges credentials for a token and establishes the session. If the
// issued token cannot be decoded the session stays anonymous; the store fails
// open rather than erroring.
func (h *AuthHandler) Login(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	token, err := h.authService.Login(c.Request.Context(), creds)
	if err != nil {
		utils.LogError(err, "Login: users service rejected credentials")
		respondServiceError(c, err, "Login failed.")
		return
	}

	s := h.sessions.Login(c, token)
	c.JSON(http.StatusOK, gin.H{"usuario": s.Identity, "redirect": "/"})
}

// Register creates an account; the page redirects to login on success.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	usuario, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "Register: users service rejected registration")
		respondServiceError(c, err, "Registration failed.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"usuario": usuario, "redirect": "/login"})
}

// ConsultarDNI resolves a national ID into name prefill fields.
func (h *AuthHandler) ConsultarDNI(c *gin.Context) {
	prefill, err := h.authService.LookupDNI(c.Request.Context(), c.Query("dni"))
	if err != nil {
		if errors.Is(err, services.ErrDNIInvalido) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "ConsultarDNI: lookup failed")
		respondServiceError(c, err, "DNI lookup failed.")
		return
	}
	c.JSON(http.StatusOK, prefill)
}

// Logout clears the persisted token.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Logout(c)
	c.JSON(http.StatusOK, gin.H{"redirect": "/login"})
}

// Me returns the identity of the current session for the nav bar.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"usuario": middleware.CurrentSession(c).Identity})
}
