package router

import (
	"cancha_reservas_web/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupPublicAuthRoutes sets up login, registration and the DNI lookup.
func SetupPublicAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/registro", authHandler.Register)
		authRoutes.GET("/consultar-dni", authHandler.ConsultarDNI)
	}
}

// SetupAuthenticatedAuthRoutes sets up the session-bound auth routes.
func SetupAuthenticatedAuthRoutes(authenticatedGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := authenticatedGroup.Group("/auth")
	{
		authRoutes.POST("/logout", authHandler.Logout)
		authRoutes.GET("/me", authHandler.Me)
	}
}

// SetupCatalogRoutes sets up the public storefront catalog.
func SetupCatalogRoutes(apiGroup *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	apiGroup.GET("/catalogo", catalogHandler.Catalog)
}

// SetupAgendaRoutes sets up the read-only per-field agenda.
func SetupAgendaRoutes(apiGroup *gin.RouterGroup, agendaHandler *handlers.AgendaHandler) {
	apiGroup.GET("/canchas/:id_cancha/agenda", agendaHandler.Agenda)
}

// SetupLockRoutes sets up the slot locking route. Locking mutates the slot
// on the bookings service so it stays behind the session guard.
func SetupLockRoutes(authenticatedGroup *gin.RouterGroup, agendaHandler *handlers.AgendaHandler) {
	authenticatedGroup.POST("/canchas/:id_cancha/agenda/:id_horario/bloquear", agendaHandler.Lock)
}

// SetupCheckoutRoutes sets up the checkout page routes.
func SetupCheckoutRoutes(authenticatedGroup *gin.RouterGroup, reservasHandler *handlers.ReservasHandler) {
	checkoutRoutes := authenticatedGroup.Group("/checkout")
	{
		checkoutRoutes.GET("/:id_horario", reservasHandler.Resumen)
		checkoutRoutes.POST("/:id_horario", reservasHandler.Confirmar)
		checkoutRoutes.POST("/:id_horario/cancelar", reservasHandler.Cancelar)
	}
}

// SetupHistorialRoutes sets up the booking history page.
func SetupHistorialRoutes(authenticatedGroup *gin.RouterGroup, reservasHandler *handlers.ReservasHandler) {
	authenticatedGroup.GET("/mis-reservas", reservasHandler.MiHistorial)
}

// SetupAdminSedeRoutes sets up the venue CRUD routes.
func SetupAdminSedeRoutes(adminGroup *gin.RouterGroup, adminCatalogHandler *handlers.AdminCatalogHandler) {
	sedeRoutes := adminGroup.Group("/sedes")
	{
		sedeRoutes.GET("", adminCatalogHandler.ListSedes)
		sedeRoutes.POST("", adminCatalogHandler.CreateSede)
		sedeRoutes.PUT("/:id_sede", adminCatalogHandler.UpdateSede)
		sedeRoutes.DELETE("/:id_sede", adminCatalogHandler.DeleteSede)
	}
}

// SetupAdminCanchaRoutes sets up the field CRUD routes plus the image upload
// and the description generator.
func SetupAdminCanchaRoutes(adminGroup *gin.RouterGroup, adminCatalogHandler *handlers.AdminCatalogHandler) {
	canchaRoutes := adminGroup.Group("/canchas")
	{
		canchaRoutes.GET("", adminCatalogHandler.ListCanchas)
		canchaRoutes.POST("", adminCatalogHandler.CreateCancha)
		canchaRoutes.PUT("/:id_cancha", adminCatalogHandler.UpdateCancha)
		canchaRoutes.DELETE("/:id_cancha", adminCatalogHandler.DeleteCancha)
		canchaRoutes.POST("/imagen", adminCatalogHandler.SubirImagen)
		canchaRoutes.POST("/generar-descripcion", adminCatalogHandler.GenerarDescripcion)
	}
}

// SetupAdminHorarioRoutes sets up batch slot generation.
func SetupAdminHorarioRoutes(adminGroup *gin.RouterGroup, adminReservasHandler *handlers.AdminReservasHandler) {
	adminGroup.POST("/horarios/generar", adminReservasHandler.GenerarBloque)
}

// SetupAdminPagoRoutes sets up payment confirmation and the dashboard stats.
func SetupAdminPagoRoutes(adminGroup *gin.RouterGroup, adminReservasHandler *handlers.AdminReservasHandler) {
	pagoRoutes := adminGroup.Group("/pagos")
	{
		pagoRoutes.GET("/pendientes", adminReservasHandler.PagosPendientes)
		pagoRoutes.POST("/:id_reserva/confirmar", adminReservasHandler.ConfirmarPago)
	}
	adminGroup.GET("/estadisticas", adminReservasHandler.Estadisticas)
}
