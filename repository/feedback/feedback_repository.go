package feedback

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/resource-matcher/model"
)

type SQL struct {
	conn *sqlx.DB
}

type FeedbackRepository interface {
	Create(ctx context.Context, data *model.FeedbackEntity) error
	Delete(ctx context.Context, id string) (bool, error)
}

func NewFeedbackRepository(conn *sqlx.DB) FeedbackRepository {
	return &SQL{conn: conn}
}

func (s *SQL) Create(ctx context.Context, data *model.FeedbackEntity) error {
	_, err := s.conn.ExecContext(ctx, "INSERT INTO feedback (id, created_by_id, text, created_at) VALUES (?, ?, ?, NOW())", data.ID, data.CreatedByID, data.Text)
	return err
}

func (s *SQL) Delete(ctx context.Context, id string) (bool, error) {
	result, err := s.conn.ExecContext(ctx, "DELETE FROM feedback WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
