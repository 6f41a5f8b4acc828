package queue

import (
	"context"
	"encoding/json"
	"log"

	"github.com/bagritech/studio-api/internal/models"
	"github.com/hibiken/asynq"
)

func (q *Queue) HandleGenerateVisualTask(ctx context.Context, task *asynq.Task) error {
	var payload GenerateVisualPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	post, err := q.vs.Generate(ctx, payload.PostID, models.VisualType(payload.VisualType))
	if err != nil {
		log.Printf("Error generating %s visual for post %s: %v", payload.VisualType, payload.PostID, err)
		return err
	}

	log.Printf("Visual ready for post %s (%s)", post.ID, post.SuggestedVisual)
	return nil
}
