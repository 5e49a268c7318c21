package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/util"
)

type EnvConfig struct {
	Environment  string `envconfig:"ENVIRONMENT"`
	Port         string `envconfig:"PORT" default:"8000"`
	ClientID     string `envconfig:"CLIENT_ID"`
	ClientSecret string `envconfig:"CLIENT_SECRET"`
	RedirectURL  string `envconfig:"REDIRECT_URL"`
	FrontendURL  string `envconfig:"FRONTEND_URL"`
	DBURL        string `envconfig:"DB_URL"`
}

func loadEnv() (*EnvConfig, error) {
	var cfg EnvConfig

	// In production the env vars come from the runtime, not a .env file.
	if !util.IsProduction() {
		if err := godotenv.Load(); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func MustLoadEnv() *EnvConfig {
	cfg, err := loadEnv()
	if err != nil {
		panic(err)
	}

	return cfg
}
