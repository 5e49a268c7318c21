package handler

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/config"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/service"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/util"
)

type GoogleHandler struct {
	account *service.AccountService
	env     config.EnvConfig
}

func NewGoogleHandler(account *service.AccountService, env config.EnvConfig) *GoogleHandler {
	return &GoogleHandler{
		account: account,
		env:     env,
	}
}

// GoogleAuthHandler sends back an URL for Google's consent page.
func (h *GoogleHandler) GoogleAuthHandler(c *fiber.Ctx) error {
	authURL, err := h.account.AuthURL()
	if err != nil {
		return err
	}

	return c.JSON(authURL)
}

// GoogleRedirectHandler exchanges the `code` in the URL for OAuth
// tokens, stores them and sends the user to the frontend analytics
// page for their email.
func (h *GoogleHandler) GoogleRedirectHandler(c *fiber.Ctx) error {
	authCode := c.Query("code")
	if len(authCode) == 0 {
		return util.NewAppError(
			http.StatusBadRequest,
			"no authorization code found in URL",
		)
	}

	email, err := h.account.CompleteAuth(c.Context(), authCode)
	if err != nil {
		return err
	}

	redirectURL := fmt.Sprintf("%s/analytics?email=%s", h.env.FrontendURL, email)

	return c.Redirect(redirectURL, http.StatusFound)
}
