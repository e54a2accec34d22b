package services

import (
	"context"
	"errors"
	"strings"

	"cancha_reservas_web/internal/clients"
	"cancha_reservas_web/internal/models"
)

// ErrDNIInvalido rejects lookups before they reach the registry proxy.
var ErrDNIInvalido = errors.New("dni must be exactly 8 digits")

// DNIPrefill is what the registration form pre-fills from a registry lookup.
type DNIPrefill struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}

// AuthService backs the login and registration pages.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (string, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.UsuarioPublico, error)
	LookupDNI(ctx context.Context, dni string) (*DNIPrefill, error)
}

type authService struct {
	users clients.UsersClient
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(users clients.UsersClient) AuthService {
	return &authService{users: users}
}

// Login exchanges credentials for an access token. The token is returned raw;
// deriving an identity from it is the session layer's job.
func (s *authService) Login(ctx context.Context, creds models.Credentials) (string, error) {
	token, err := s.users.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		return "", err
	}
	return token.AccessToken, nil
}

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.UsuarioPublico, error) {
	return s.users.Register(ctx, req)
}

// LookupDNI resolves a national ID into name fields for the registration
// form. The surname pre-fill joins both registry surnames, as the form shows
// a single apellido field.
func (s *authService) LookupDNI(ctx context.Context, dni string) (*DNIPrefill, error) {
	if len(dni) != 8 {
		return nil, ErrDNIInvalido
	}
	for _, r := range dni {
		if r < '0' || r > '9' {
			return nil, ErrDNIInvalido
		}
	}

	persona, err := s.users.LookupDNI(ctx, dni)
	if err != nil {
		return nil, err
	}
	apellido := strings.TrimSpace(persona.FirstLastName + " " + persona.SecondLastName)
	return &DNIPrefill{Nombre: persona.FirstName, Apellido: apellido}, nil
}
