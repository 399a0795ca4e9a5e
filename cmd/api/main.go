package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hopehr/hr-api/internal/config"
	dbpkg "github.com/hopehr/hr-api/internal/db"
	"github.com/hopehr/hr-api/internal/middleware"
	"github.com/hopehr/hr-api/internal/routes"
	"github.com/hopehr/hr-api/internal/storage"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	signer := storage.NewS3Signer(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, signer)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
