package queue

import (
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
)

// EnqueueVisual schedules one visual generation. MaxRetry is zero on purpose:
// a failed generation is reported, never retried automatically; the user can
// re-trigger it.
func EnqueueVisual(asynqClient *asynq.Client, payload GenerateVisualPayload) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypeGenerateVisual, taskPayload)

	_, err = asynqClient.Enqueue(task, asynq.MaxRetry(0))
	if err != nil {
		return err
	}

	log.Printf("Visual task enqueued: %+v", payload)
	return nil
}
