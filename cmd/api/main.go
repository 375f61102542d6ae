package main

import (
	"log"

	"github.com/hbnb/hbnb/internal/config"
	"github.com/hbnb/hbnb/internal/database"
	"github.com/hbnb/hbnb/internal/facade"
	"github.com/hbnb/hbnb/internal/httpapi"
	jwtsvc "github.com/hbnb/hbnb/internal/pkg/jwt"
	"github.com/hbnb/hbnb/internal/repository"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	placeRepo := repository.NewPlaceRepository(db)
	amenityRepo := repository.NewAmenityRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	f := facade.New(userRepo, placeRepo, amenityRepo, reviewRepo)
	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	r := httpapi.NewRouter(f, j, httpapi.Options{
		AllowPublicSignup: cfg.AllowPublicSignup,
	})

	log.Println("Listening on", cfg.BindAddr)
	if err := r.Run(cfg.BindAddr); err != nil {
		log.Fatal(err)
	}
}
