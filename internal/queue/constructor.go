package queue

import (
	"github.com/bagritech/studio-api/internal/service"
)

type Queue struct {
	vs service.VisualService
}

func NewQueue(vs service.VisualService) *Queue {
	return &Queue{vs: vs}
}

const TaskTypeGenerateVisual = "visual:generate"

type GenerateVisualPayload struct {
	PostID     string `json:"post_id"`
	VisualType string `json:"visual_type"`
}
