package handlers

import (
	"log/slog"

	"github.com/bagritech/studio-api/internal/models"
	"github.com/bagritech/studio-api/internal/queue"
	"github.com/bagritech/studio-api/internal/service"
	"github.com/bagritech/studio-api/internal/transfer"
	"github.com/bagritech/studio-api/pkg/audio"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

type VisualHandler struct {
	vs          service.VisualService
	board       service.BoardService
	AsynqClient *asynq.Client
}

func NewVisualHandler(vs service.VisualService, board service.BoardService, asynqClient *asynq.Client) *VisualHandler {
	return &VisualHandler{vs: vs, board: board, AsynqClient: asynqClient}
}

// Generate enqueues one visual generation for a post. Video jobs can run for
// minutes, so all three kinds go through the queue and the client polls the
// post for its visual.
func (h *VisualHandler) Generate(c *fiber.Ctx) error {
	var req transfer.VisualRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return errorJSON(c, fiber.StatusBadRequest, "Requête invalide")
	}
	if !models.ValidVisualType(req.VisualType) {
		return errorJSON(c, fiber.StatusBadRequest, "Type de visuel inconnu")
	}
	if _, ok := h.board.Post(req.PostID); !ok {
		return errorJSON(c, fiber.StatusNotFound, "Post introuvable")
	}
	if h.vs.InFlight(req.PostID) {
		return errorJSON(c, fiber.StatusConflict, "Une génération est déjà en cours pour ce post")
	}

	err := queue.EnqueueVisual(h.AsynqClient, queue.GenerateVisualPayload{
		PostID:     req.PostID,
		VisualType: req.VisualType,
	})
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Erreur lors de la génération du visuel")
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "Génération du visuel lancée",
	})
}

// Status reports whether a generation is still running for a post.
func (h *VisualHandler) Status(c *fiber.Ctx) error {
	id := c.Params("id")
	post, ok := h.board.Post(id)
	if !ok {
		return errorJSON(c, fiber.StatusNotFound, "Post introuvable")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"post":       post,
		"generating": h.vs.InFlight(id),
	})
}

// Audio serves a post's speech payload as a WAV stream. The stored value is
// raw base64 PCM, not a playable container.
func (h *VisualHandler) Audio(c *fiber.Ctx) error {
	post, ok := h.board.Post(c.Params("id"))
	if !ok {
		return errorJSON(c, fiber.StatusNotFound, "Post introuvable")
	}
	if post.SuggestedVisual != models.VisualSpeech || post.VisualURL == "" {
		return errorJSON(c, fiber.StatusNotFound, "Aucun audio pour ce post")
	}

	wav, err := audio.WAVFromBase64(post.VisualURL)
	if err != nil {
		slog.Error("audio decode: " + err.Error())
		return errorJSON(c, fiber.StatusInternalServerError, "Erreur de lecture audio")
	}
	c.Set(fiber.HeaderContentType, "audio/wav")
	return c.Status(fiber.StatusOK).Send(wav)
}
