package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"cancha_reservas_web/internal/clients"
	"cancha_reservas_web/internal/router"
	"cancha_reservas_web/internal/session"
	"cancha_reservas_web/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Local development reads .env; in deployment the variables come
	// from the environment directly, so a missing file is not an error.
	_ = godotenv.Load()

	utils.InitLogger()

	engine := gin.Default()
	engine.Use(utils.GinLogger())

	// CORS configuration. The Vite dev server is the expected browser
	// origin during development.
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:5173", "http://localhost:5174"}
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = allowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	engine.Use(cors.New(corsConfig))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	timeoutSeconds, err := strconv.Atoi(utils.Getenv("UPSTREAM_TIMEOUT_SECONDS", "10"))
	if err != nil || timeoutSeconds <= 0 {
		timeoutSeconds = 10
	}
	cfg := clients.Config{
		UsersBaseURL:    utils.Getenv("USERS_API_URL", "http://127.0.0.1:8000"),
		CanchasBaseURL:  utils.Getenv("CANCHAS_API_URL", "http://127.0.0.1:8001"),
		ReservasBaseURL: utils.Getenv("RESERVAS_API_URL", "http://127.0.0.1:8002"),
		Timeout:         time.Duration(timeoutSeconds) * time.Second,
	}

	sessions := session.NewManager(utils.GetenvBool("SESSION_COOKIE_SECURE", false))

	router.Setup(engine, cfg, sessions)

	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port, "configured_from_env": true})
	utils.LogInfo("Frontend should be configured to make API calls", map[string]interface{}{"url": "http://localhost:" + port + "/api/v1"})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
