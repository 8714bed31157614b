package queue

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
)

func (q *Queue) HandleRecomputeTask(ctx context.Context, task *asynq.Task) error {
	var payload RecomputePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	if err := q.cs.Recompute(ctx, payload.UserID); err != nil {
		log.Printf("Error recomputing analytics for UserID %d: %v", payload.UserID, err)
		return err
	}

	return nil
}
