package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"socialpulse/internal/models"
	"socialpulse/internal/service"
	"socialpulse/internal/transfer"
)

type AccountHandler struct {
	s service.AccountService
}

func NewAccountHandler(service service.AccountService) *AccountHandler {
	return &AccountHandler{s: service}
}

func (h *AccountHandler) Connect(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var req transfer.ConnectAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	account, err := h.s.Connect(c.Context(), userID, req.Platform, req.AccountName)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Account connected",
		"account": account,
	})
}

func (h *AccountHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)

	accounts, err := h.s.List(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch social accounts",
		})
	}

	if accounts == nil {
		accounts = []*models.SocialAccount{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"accounts":  accounts,
		"timestamp": time.Now(),
	})
}

func (h *AccountHandler) Disconnect(c *fiber.Ctx) error {
	userID := GetUserID(c)

	accountID, err := c.ParamsInt("id", 0)
	if err != nil || accountID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid account id",
		})
	}

	if err := h.s.Disconnect(c.Context(), userID, int64(accountID)); err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Account deleted",
	})
}
