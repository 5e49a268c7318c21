package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/api/handler"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/config"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/service"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/types"
)

type Router struct {
	provider   types.OAuthProvider
	drive      types.DriveService
	tokenStore types.TokenStore
	env        config.EnvConfig
}

func NewRouter(provider types.OAuthProvider, drive types.DriveService, tokenStore types.TokenStore, env config.EnvConfig) *Router {
	return &Router{
		provider:   provider,
		drive:      drive,
		tokenStore: tokenStore,
		env:        env,
	}
}

// RegisterRoutes wires the handlers onto the app root. The paths are a
// fixed contract with the frontend.
func (h *Router) RegisterRoutes(r fiber.Router) {
	r.Get("/healthcheck", func(c *fiber.Ctx) error {
		return c.JSON("OK")
	})

	accountSVC := service.NewAccountService(h.provider, h.tokenStore)
	sessionSVC := service.NewSessionService(h.provider, h.tokenStore)
	analyticsSVC := service.NewAnalyticsService(sessionSVC, h.drive, h.tokenStore)

	googleHR := handler.NewGoogleHandler(accountSVC, h.env)
	r.Get("/auth/google", googleHR.GoogleAuthHandler)
	r.Get("/google/redirect", googleHR.GoogleRedirectHandler)

	accountHR := handler.NewAccountHandler(accountSVC, analyticsSVC)
	r.Get("/account/analytics", accountHR.AnalyticsHandler)
	r.Get("/account/revoke", accountHR.RevokeHandler)
}
