package model

import "time"

type FeedbackEntity struct {
	ID          string    `db:"id" json:"id"`
	CreatedByID string    `db:"created_by_id" json:"created_by_id" validate:"required"`
	Text        string    `db:"text" json:"text" validate:"required"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type FeedbackRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Text        string `json:"text" validate:"required,max=2000"`
}
