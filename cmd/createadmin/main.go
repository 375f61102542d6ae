// Command createadmin bootstraps the first administrator account, mirroring
// the usual chicken-and-egg fix: user creation is admin-only, so the first
// admin is made from the shell.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/hbnb/hbnb/internal/config"
	"github.com/hbnb/hbnb/internal/database"
	"github.com/hbnb/hbnb/internal/facade"
	"github.com/hbnb/hbnb/internal/repository"

	"github.com/joho/godotenv"
)

func main() {
	firstName := flag.String("first-name", "Admin", "first name")
	lastName := flag.String("last-name", "User", "last name")
	email := flag.String("email", "", "email address (required)")
	password := flag.String("password", "", "password (required)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

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

	f := facade.New(
		repository.NewUserRepository(db),
		repository.NewPlaceRepository(db),
		repository.NewAmenityRepository(db),
		repository.NewReviewRepository(db),
	)

	user, err := f.CreateUser(context.Background(), facade.CreateUserInput{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Password:  *password,
		IsAdmin:   true,
	})
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("admin created: id=%s email=%s", user.ID, user.Email)
}
