package queue

import (
	"socialpulse/internal/service"
)

type Queue struct {
	cs service.CacheService
}

func NewQueue(cs service.CacheService) *Queue {
	return &Queue{cs: cs}
}

const TaskTypeRecomputeAnalytics = "analytics:recompute"

type RecomputePayload struct {
	UserID int64 `json:"user_id"`
}
