package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	MW "github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/api/middleware"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/config"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/types"
)

type APIServer struct {
	listenAddr string
	env        config.EnvConfig
	provider   types.OAuthProvider
	drive      types.DriveService
	tokenStore types.TokenStore
}

func NewAPIServer(listenAddr string, env config.EnvConfig, provider types.OAuthProvider, drive types.DriveService, tokenStore types.TokenStore) *APIServer {
	return &APIServer{
		listenAddr: listenAddr,
		env:        env,
		provider:   provider,
		drive:      drive,
		tokenStore: tokenStore,
	}
}

func (s *APIServer) Start() error {
	app := fiber.New(fiber.Config{
		AppName:      "Drive Risk Analytics",
		ErrorHandler: MW.ErrorHandler,
	})
	logger := logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path}\n",
	})

	app.Use(logger)

	handler := NewRouter(s.provider, s.drive, s.tokenStore, s.env)
	handler.RegisterRoutes(app)

	log.Printf("Server started on http://localhost:%s", s.listenAddr)

	return app.Listen(":" + s.listenAddr)
}
