package router

import (
	"time"

	"cancha_reservas_web/internal/clients"
	"cancha_reservas_web/internal/handlers"
	"cancha_reservas_web/internal/middleware"
	"cancha_reservas_web/internal/services"
	"cancha_reservas_web/internal/session"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, cfg clients.Config, sessions *session.Manager) {
	// Initialize upstream clients
	usersClient := clients.NewUsersClient(cfg.UsersBaseURL, cfg.Timeout)
	venuesClient := clients.NewVenuesClient(cfg.CanchasBaseURL, cfg.Timeout)
	bookingsClient := clients.NewBookingsClient(cfg.ReservasBaseURL, cfg.Timeout)

	// Initialize Services
	authService := services.NewAuthService(usersClient)
	catalogService := services.NewCatalogService(venuesClient)
	agendaService := services.NewAgendaService(bookingsClient, time.Now)
	reservasService := services.NewReservasService(bookingsClient)
	adminCatalogService := services.NewAdminCatalogService(venuesClient)
	adminReservasService := services.NewAdminReservasService(bookingsClient)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService, sessions)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	agendaHandler := handlers.NewAgendaHandler(agendaService)
	reservasHandler := handlers.NewReservasHandler(reservasService)
	adminCatalogHandler := handlers.NewAdminCatalogHandler(adminCatalogService)
	adminReservasHandler := handlers.NewAdminReservasHandler(adminReservasService)

	engine.Use(middleware.SessionMiddleware(sessions))

	apiV1 := engine.Group("/api/v1")

	// Public routes: login, registration, catalog browsing and the
	// read-only agenda do not require a session.
	SetupPublicAuthRoutes(apiV1, authHandler)
	SetupCatalogRoutes(apiV1, catalogHandler)
	SetupAgendaRoutes(apiV1, agendaHandler)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.RequireSession())
	{
		SetupAuthenticatedAuthRoutes(authenticated, authHandler)
		SetupLockRoutes(authenticated, agendaHandler)
		SetupCheckoutRoutes(authenticated, reservasHandler)
		SetupHistorialRoutes(authenticated, reservasHandler)
	}

	admin := apiV1.Group("/admin")
	admin.Use(middleware.RequireSession(), middleware.RequireAdmin())
	{
		SetupAdminSedeRoutes(admin, adminCatalogHandler)
		SetupAdminCanchaRoutes(admin, adminCatalogHandler)
		SetupAdminHorarioRoutes(admin, adminReservasHandler)
		SetupAdminPagoRoutes(admin, adminReservasHandler)
	}
}
