package handlers

import (
	"github.com/bagritech/studio-api/internal/service"
	"github.com/gofiber/fiber/v2"
)

type VeilleHandler struct {
	s service.VeilleService
}

func NewVeilleHandler(s service.VeilleService) *VeilleHandler {
	return &VeilleHandler{s: s}
}

func (h *VeilleHandler) List(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.s.List())
}

func (h *VeilleHandler) Refresh(c *fiber.Ctx) error {
	items, err := h.s.Refresh(c.Context())
	if err != nil {
		return errorJSON(c, fiber.StatusBadGateway, "Échec de la veille concurrentielle")
	}
	return c.Status(fiber.StatusOK).JSON(items)
}
