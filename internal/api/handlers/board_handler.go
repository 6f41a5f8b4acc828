package handlers

import (
	"log/slog"

	"github.com/bagritech/studio-api/internal/models"
	"github.com/bagritech/studio-api/internal/service"
	"github.com/bagritech/studio-api/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type BoardHandler struct {
	s service.BoardService
}

func NewBoardHandler(s service.BoardService) *BoardHandler {
	return &BoardHandler{s: s}
}

func (h *BoardHandler) Summary(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.s.Summary())
}

func (h *BoardHandler) ListPosts(c *fiber.Ctx) error {
	network := c.Query("network", service.FilterAll)
	status := c.Query("status", service.FilterAll)
	return c.Status(fiber.StatusOK).JSON(h.s.Filter(network, status))
}

// Board returns the day-grouped calendar view. The day columns default to the
// currently selected publication days.
func (h *BoardHandler) Board(c *fiber.Ctx) error {
	days := splitList(c.Query("days"))
	if len(days) == 0 {
		days = h.s.SelectedDays()
	}
	network := c.Query("network", service.FilterAll)
	status := c.Query("status", service.FilterAll)

	buckets := h.s.Board(days, network, status)
	total := len(h.s.Filter(network, status))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"days":    days,
		"buckets": buckets,
		"total":   total,
	})
}

func (h *BoardHandler) UpdateStatus(c *fiber.Ctx) error {
	var req transfer.StatusUpdate
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return errorJSON(c, fiber.StatusBadRequest, "Requête invalide")
	}
	if !models.ValidStatus(req.Status) {
		return errorJSON(c, fiber.StatusBadRequest, "Statut inconnu")
	}
	if _, ok := h.s.Post(req.PostID); !ok {
		return errorJSON(c, fiber.StatusNotFound, "Post introuvable")
	}

	if err := h.s.SetStatus(c.Context(), req.PostID, models.PostStatus(req.Status)); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Impossible de mettre à jour le statut")
	}

	post, _ := h.s.Post(req.PostID)
	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *BoardHandler) ClearPosts(c *fiber.Ctx) error {
	if err := h.s.ClearAll(c.Context()); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Impossible de réinitialiser le flux")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Flux partagé réinitialisé"})
}

func (h *BoardHandler) Days(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"days": h.s.SelectedDays()})
}

func (h *BoardHandler) ToggleDay(c *fiber.Ctx) error {
	var req transfer.DayToggle
	if err := c.BodyParser(&req); err != nil || req.Day == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Jour manquant")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"days": h.s.ToggleDay(req.Day)})
}
