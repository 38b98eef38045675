package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/atolyemobilya/mobilya-api/internal/config"
	"github.com/atolyemobilya/mobilya-api/internal/database"
	"github.com/atolyemobilya/mobilya-api/internal/repository"
	"github.com/atolyemobilya/mobilya-api/internal/service"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

// createadmin seeds an admin account. Intended for initial setup:
//
//	go run ./cmd/createadmin -kullanici admin -sifre <secret> -ad "Atölye Admin" -email admin@example.com
func main() {
	kullanici := flag.String("kullanici", "admin", "admin username")
	sifre := flag.String("sifre", "", "admin password")
	ad := flag.String("ad", "Yönetici", "full name")
	email := flag.String("email", "", "email address")
	flag.Parse()

	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	if *sifre == "" || *email == "" {
		fmt.Fprintln(os.Stderr, "usage: createadmin -kullanici <name> -sifre <password> -email <address>")
		os.Exit(2)
	}
	if len(*sifre) < 6 {
		fmt.Fprintln(os.Stderr, "password must be at least 6 characters")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Connect(&cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	authSvc := service.NewAuthService(repository.NewUserRepository(db), cfg.JWTSecret, cfg.JWTExpiry)
	if err := authSvc.CreateAdmin(*kullanici, *sifre, *ad, *email); err != nil {
		if errors.Is(err, utils.ErrDuplicateUsername) || errors.Is(err, utils.ErrDuplicateEmail) {
			fmt.Fprintln(os.Stderr, "an account with this username or email already exists")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "failed to create admin: %v\n", err)
		os.Exit(1)
	}

	log.Info().Str("kullanici_adi", *kullanici).Msg("admin account created")
}
