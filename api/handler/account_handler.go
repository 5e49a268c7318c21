package handler

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/service"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/util"
)

type AccountHandler struct {
	account   *service.AccountService
	analytics *service.AnalyticsService
}

func NewAccountHandler(account *service.AccountService, analytics *service.AnalyticsService) *AccountHandler {
	return &AccountHandler{
		account:   account,
		analytics: analytics,
	}
}

// AnalyticsHandler sends back the storage usage and the risk report
// for the given email.
func (h *AccountHandler) AnalyticsHandler(c *fiber.Ctx) error {
	email := c.Query("email")
	if len(email) == 0 {
		return util.NewAppError(
			http.StatusBadRequest,
			"no email found in URL",
		)
	}

	result, err := h.analytics.GetAnalytics(c.Context(), email)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// RevokeHandler revokes the stored access token and deletes the
// account record.
func (h *AccountHandler) RevokeHandler(c *fiber.Ctx) error {
	email := c.Query("email")
	if len(email) == 0 {
		return util.NewAppError(
			http.StatusBadRequest,
			"no email found in URL",
		)
	}

	if err := h.account.RevokeAndDelete(c.Context(), email); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Access revoked and user deleted successfully",
	})
}
