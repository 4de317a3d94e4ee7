package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// This file defines the "types" and "payloads" for our async tasks.

// Task type names
const (
	TypeTaskMatchYear = "task:match_year"
	TypeTaskMatchAll  = "task:match_all"
)

// --- MatchYear Task ---

// MatchYearPayload selects the reporting year one task covers
type MatchYearPayload struct {
	Year int `json:"year"`
}

// NewMatchYearTask creates a new task for asynq
func NewMatchYearTask(year int) (*asynq.Task, error) {
	payloadBytes, err := json.Marshal(MatchYearPayload{Year: year})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(TypeTaskMatchYear, payloadBytes), nil
}

// --- MatchAll Task ---

// NewMatchAllTask creates the fan-out task that enqueues one MatchYear
// task per distinct reporting year in the store
func NewMatchAllTask() (*asynq.Task, error) {
	return asynq.NewTask(TypeTaskMatchAll, nil), nil
}
