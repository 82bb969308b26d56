package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowbook/salon-booking-api/internal/config"
	dbpkg "github.com/glowbook/salon-booking-api/internal/db"
	"github.com/glowbook/salon-booking-api/internal/logger"
	"github.com/glowbook/salon-booking-api/internal/middleware"
	"github.com/glowbook/salon-booking-api/internal/routes"
	"github.com/glowbook/salon-booking-api/internal/validators"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.LogLevel)
	db := dbpkg.NewDB(cfg, log)

	validators.Register()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
