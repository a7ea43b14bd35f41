package model

import "time"

// StudyPlan represents a structured learning plan.
// CreatedAt is set once on create and never changes; UpdatedAt refreshes on
// every successful update. Topics keep their order and are not deduplicated.
type StudyPlan struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Topics      []string  `json:"topics"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
