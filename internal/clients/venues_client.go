package clients

import (
	"context"
	"io"
	"net/url"
	"time"

	"cancha_reservas_web/internal/models"
	"cancha_reservas_web/pkg/utils"
)

// SedePayload is the venue create/update body.
type SedePayload struct {
	Nombre    string  `json:"nombre"`
	Direccion string  `json:"direccion"`
	Distrito  *string `json:"distrito,omitempty"`
	URLFoto   *string `json:"url_foto_sede,omitempty"`
}

// CanchaPayload is the field create/update body.
type CanchaPayload struct {
	Nombre         string  `json:"nombre"`
	Descripcion    *string `json:"descripcion,omitempty"`
	TipoSuperficie *string `json:"tipo_superficie,omitempty"`
	PrecioHora     float64 `json:"precio_hora"`
	URLFoto        *string `json:"url_foto,omitempty"`
	SedeID         *int64  `json:"id_sede_fk,omitempty"`
}

// DescripcionPayload feeds the AI description endpoint.
type DescripcionPayload struct {
	Nombre         string `json:"nombre"`
	TipoSuperficie string `json:"tipo_superficie"`
	Sede           string `json:"sede"`
}

// VenuesClient consumes the venues/fields service. Reads are public; every
// mutation forwards the admin bearer token.
type VenuesClient interface {
	ListSedes(ctx context.Context) ([]models.Sede, error)
	CreateSede(ctx context.Context, payload SedePayload, token string) (*models.Sede, error)
	UpdateSede(ctx context.Context, sedeID int64, payload SedePayload, token string) (*models.Sede, error)
	DeleteSede(ctx context.Context, sedeID int64, token string) error

	ListCanchas(ctx context.Context, sedeID *int64) ([]models.Cancha, error)
	GetCancha(ctx context.Context, canchaID int64) (*models.Cancha, error)
	CreateCancha(ctx context.Context, payload CanchaPayload, token string) (*models.Cancha, error)
	UpdateCancha(ctx context.Context, canchaID int64, payload CanchaPayload, token string) (*models.Cancha, error)
	DeleteCancha(ctx context.Context, canchaID int64, token string) error

	UploadImage(ctx context.Context, filename string, file io.Reader, token string) (string, error)
	GenerateDescription(ctx context.Context, payload DescripcionPayload, token string) (string, error)
}

type venuesClient struct {
	*apiClient
}

// NewVenuesClient creates a VenuesClient against the given base URL.
func NewVenuesClient(baseURL string, timeout time.Duration) VenuesClient {
	return &venuesClient{apiClient: newAPIClient(baseURL, timeout)}
}

func (c *venuesClient) ListSedes(ctx context.Context) ([]models.Sede, error) {
	var sedes []models.Sede
	if err := c.getJSON(ctx, "/sedes/", nil, "", &sedes); err != nil {
		return nil, err
	}
	return sedes, nil
}

func (c *venuesClient) CreateSede(ctx context.Context, payload SedePayload, token string) (*models.Sede, error) {
	var sede models.Sede
	if err := c.postJSON(ctx, "/sedes/", payload, token, &sede); err != nil {
		return nil, err
	}
	return &sede, nil
}

func (c *venuesClient) UpdateSede(ctx context.Context, sedeID int64, payload SedePayload, token string) (*models.Sede, error) {
	var sede models.Sede
	if err := c.putJSON(ctx, "/sedes/"+utils.Int64ToStr(sedeID), payload, token, &sede); err != nil {
		return nil, err
	}
	return &sede, nil
}

func (c *venuesClient) DeleteSede(ctx context.Context, sedeID int64, token string) error {
	return c.delete(ctx, "/sedes/"+utils.Int64ToStr(sedeID), token)
}

func (c *venuesClient) ListCanchas(ctx context.Context, sedeID *int64) ([]models.Cancha, error) {
	// "All venues" omits the filter entirely; the service treats an empty
	// id_sede differently from a missing one.
	var query url.Values
	if sedeID != nil {
		query = url.Values{}
		query.Set("id_sede", utils.Int64ToStr(*sedeID))
	}
	var canchas []models.Cancha
	if err := c.getJSON(ctx, "/canchas/", query, "", &canchas); err != nil {
		return nil, err
	}
	return canchas, nil
}

func (c *venuesClient) GetCancha(ctx context.Context, canchaID int64) (*models.Cancha, error) {
	var cancha models.Cancha
	if err := c.getJSON(ctx, "/canchas/"+utils.Int64ToStr(canchaID), nil, "", &cancha); err != nil {
		return nil, err
	}
	return &cancha, nil
}

func (c *venuesClient) CreateCancha(ctx context.Context, payload CanchaPayload, token string) (*models.Cancha, error) {
	var cancha models.Cancha
	if err := c.postJSON(ctx, "/canchas/", payload, token, &cancha); err != nil {
		return nil, err
	}
	return &cancha, nil
}

func (c *venuesClient) UpdateCancha(ctx context.Context, canchaID int64, payload CanchaPayload, token string) (*models.Cancha, error) {
	var cancha models.Cancha
	if err := c.putJSON(ctx, "/canchas/"+utils.Int64ToStr(canchaID), payload, token, &cancha); err != nil {
		return nil, err
	}
	return &cancha, nil
}

func (c *venuesClient) DeleteCancha(ctx context.Context, canchaID int64, token string) error {
	return c.delete(ctx, "/canchas/"+utils.Int64ToStr(canchaID), token)
}

func (c *venuesClient) UploadImage(ctx context.Context, filename string, file io.Reader, token string) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	if err := c.postMultipart(ctx, "/subir-imagen/", "file", filename, file, token, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

func (c *venuesClient) GenerateDescription(ctx context.Context, payload DescripcionPayload, token string) (string, error) {
	var resp struct {
		Descripcion string `json:"descripcion"`
	}
	if err := c.postJSON(ctx, "/canchas/generar-descripcion-ia", payload, token, &resp); err != nil {
		return "", err
	}
	return resp.Descripcion, nil
}
