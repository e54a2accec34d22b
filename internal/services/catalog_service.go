package services

import (
	"context"

	"cancha_reservas_web/internal/clients"
	"cancha_reservas_web/internal/models"
)

// CatalogView is everything the storefront landing page renders: the venue
// filter options, the (possibly filtered) field cards, and whether a card
// links to slot selection or to login.
type CatalogView struct {
	Sedes      []models.Sede   `json:"sedes"`
	Canchas    []models.Cancha `json:"canchas"`
	Reservable bool            `json:"reservable"`
}

// CatalogService backs the venue/field browsing page.
type CatalogService interface {
	Catalog(ctx context.Context, sedeID *int64, loggedIn bool) (*CatalogView, error)
}

type catalogService struct {
	venues clients.VenuesClient
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(venues clients.VenuesClient) CatalogService {
	return &catalogService{venues: venues}
}

func (s *catalogService) Catalog(ctx context.Context, sedeID *int64, loggedIn bool) (*CatalogView, error) {
	sedes, err := s.venues.ListSedes(ctx)
	if err != nil {
		return nil, err
	}
	canchas, err := s.venues.ListCanchas(ctx, sedeID)
	if err != nil {
		return nil, err
	}

	if sedes == nil {
		sedes = []models.Sede{}
	}
	if canchas == nil {
		canchas = []models.Cancha{}
	}
	return &CatalogView{Sedes: sedes, Canchas: canchas, Reservable: loggedIn}, nil
}
