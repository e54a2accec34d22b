package clients

import (
	"context"
	"net/url"
	"time"

	"cancha_reservas_web/internal/models"
)

// UsersClient consumes the users service: session establishment, account
// creation and the national-registry proxy used by the registration form.
type UsersClient interface {
	Login(ctx context.Context, email, password string) (*models.Token, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.UsuarioPublico, error)
	LookupDNI(ctx context.Context, dni string) (*models.PersonaDNI, error)
}

type usersClient struct {
	*apiClient
}

// NewUsersClient creates a UsersClient against the given base URL.
func NewUsersClient(baseURL string, timeout time.Duration) UsersClient {
	return &usersClient{apiClient: newAPIClient(baseURL, timeout)}
}

func (c *usersClient) Login(ctx context.Context, email, password string) (*models.Token, error) {
	payload := models.Credentials{Email: email, Password: password}
	var token models.Token
	if err := c.postJSON(ctx, "/usuarios/login", payload, "", &token); err != nil {
		return nil, err
	}
	return &token, nil
}

func (c *usersClient) Register(ctx context.Context, req models.RegisterRequest) (*models.UsuarioPublico, error) {
	var usuario models.UsuarioPublico
	if err := c.postJSON(ctx, "/usuarios/registrar", req, "", &usuario); err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (c *usersClient) LookupDNI(ctx context.Context, dni string) (*models.PersonaDNI, error) {
	query := url.Values{}
	query.Set("dni", dni)
	var persona models.PersonaDNI
	if err := c.getJSON(ctx, "/usuarios/consultar-dni", query, "", &persona); err != nil {
		return nil, err
	}
	return &persona, nil
}
