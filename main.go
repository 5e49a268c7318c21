package main

import (
	"context"
	"log"

	"github.com/pressly/goose/v3"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/api"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/config"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/store"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/util"
)

func main() {
	// Loads all Env vars from .env file.
	env := config.MustLoadEnv()

	// Initializes and connects to DB.
	db := config.MustInitDB(env.DBURL)
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("error closing the database connection: %s", err)
		}
	}()

	// Run auto migrations in production.
	if util.IsProduction() {
		if err := goose.Up(db, "./migrations"); err != nil {
			log.Fatalf("failed to apply database migrations: %v", err)
		}
	}

	// The provider discovers Google's signing keys on start-up.
	provider, err := store.NewGoogleProvider(context.Background(), *env)
	if err != nil {
		log.Fatalf("failed to initialize the google provider: %v", err)
	}

	tokenStore := store.NewPostgresTokenStore(db)
	driveSVC := store.NewGoogleDriveService()

	s := api.NewAPIServer(env.Port, *env, provider, driveSVC, tokenStore)

	// All routes, handlers & middlewares are registered
	// in func Start().
	log.Fatal(s.Start())
}
