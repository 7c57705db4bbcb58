package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feadoor/cryptopals/internal/auth"
	"github.com/feadoor/cryptopals/internal/httpserver"
	"github.com/feadoor/cryptopals/internal/logger"
	"github.com/feadoor/cryptopals/internal/models"
)

func main() {
	_ = godotenv.Load()
	lg := logger.New()
	defer lg.Sync()

	// Attacks run entirely in memory; the database only keeps run records,
	// so the service stays fully functional without one.
	var db *gorm.DB
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		var err error
		if db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{}); err != nil {
			lg.Fatalw("db connect failed", "error", err)
		}
		if err := db.AutoMigrate(&models.AttackRun{}, &models.AuditLog{}); err != nil {
			lg.Fatalw("automigrate failed", "error", err)
		}
	} else {
		lg.Infow("DATABASE_URL is empty, attack runs will not be persisted")
	}

	hash := os.Getenv("OPERATOR_PASSWORD_HASH")
	if hash == "" {
		pw := os.Getenv("OPERATOR_PASSWORD")
		if pw == "" {
			pw = "1234"
			lg.Warnw("using default operator password, set OPERATOR_PASSWORD")
		}
		var err error
		if hash, err = auth.HashPassword(pw); err != nil {
			lg.Fatalw("password hash failed", "error", err)
		}
	}

	router := httpserver.NewRouter(db, lg, hash)
	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}
	lg.Infow("listening", "port", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal(err)
	}
}
