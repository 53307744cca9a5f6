package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/gin-gonic/gin"

	"github.com/yudistira/siswa_app_v1/internal/config"
	"github.com/yudistira/siswa_app_v1/internal/database"
	"github.com/yudistira/siswa_app_v1/internal/middleware"
	"github.com/yudistira/siswa_app_v1/internal/routes"
)

func main() {
	// Load .env (non-fatal if missing in production)
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	if err := database.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("admin seed failed: %v", err)
	}

	r := gin.Default()
	routes.Register(r, db, cfg)

	// HTML forms only speak GET/POST; the wrapper turns _method form
	// fields into real PUT/DELETE requests before routing.
	handler := middleware.MethodOverride(r)

	log.Printf("siswa app || listening at http://localhost:%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Println("server exited with error:", err)
		os.Exit(1)
	}
}
