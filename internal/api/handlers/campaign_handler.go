package handlers

import (
	"errors"
	"log/slog"

	"github.com/bagritech/studio-api/internal/models"
	"github.com/bagritech/studio-api/internal/service"
	"github.com/bagritech/studio-api/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type CampaignHandler struct {
	s     service.CampaignService
	board service.BoardService
}

func NewCampaignHandler(s service.CampaignService, board service.BoardService) *CampaignHandler {
	return &CampaignHandler{s: s, board: board}
}

// Generate runs one bulk campaign generation. Days default to the selected
// publication days; networks default to all three platforms.
func (h *CampaignHandler) Generate(c *fiber.Ctx) error {
	var req transfer.CampaignRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return errorJSON(c, fiber.StatusBadRequest, "Requête invalide")
	}

	days := req.Days
	if len(days) == 0 {
		days = h.board.SelectedDays()
	}

	networks := make([]models.SocialNetwork, 0, len(req.Networks))
	for _, n := range req.Networks {
		networks = append(networks, models.SocialNetwork(n))
	}

	posts, err := h.s.Generate(c.Context(), days, networks, req.UserBrief)
	if err != nil {
		if errors.Is(err, service.ErrNoDaysSelected) {
			return errorJSON(c, fiber.StatusBadRequest, err.Error())
		}
		return errorJSON(c, fiber.StatusBadGateway, "Échec de la génération du calendrier")
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}
