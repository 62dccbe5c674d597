package resource

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/resource-matcher/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ResourceRepository interface {
	Create(ctx context.Context, data *model.ResourceEntity) error
	Update(ctx context.Context, data *model.ResourceEntity) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	GetForUser(ctx context.Context, userID, category, name string) (*model.ResourceEntity, error)
}

func NewResourceRepository(conn *sqlx.DB) ResourceRepository {
	return &SQL{conn: conn}
}

const (
	insertResourceQuery = `INSERT INTO resource (id, created_by_id, category, name, quantity, is_unopened) VALUES (?, ?, ?, ?, ?, ?)`
	updateResourceQuery = `UPDATE resource SET quantity = ?, is_unopened = ? WHERE id = ?`
	deleteResourceQuery = `DELETE FROM resource WHERE id = ?`
	selectResource      = `SELECT id, created_by_id, category, name, quantity, is_unopened FROM resource`
	getForUserQuery     = selectResource + ` WHERE created_by_id = ? AND category = ? AND name = ? LIMIT 1`
)

func (s *SQL) Create(ctx context.Context, data *model.ResourceEntity) error {
	_, err := s.conn.ExecContext(ctx, insertResourceQuery, data.ID, data.CreatedByID, data.Category, data.Name, data.Quantity, data.IsUnopened)
	return err
}

// Update overwrites quantity and condition only; owner and key never change.
func (s *SQL) Update(ctx context.Context, data *model.ResourceEntity) (bool, error) {
	result, err := s.conn.ExecContext(ctx, updateResourceQuery, data.Quantity, data.IsUnopened, data.ID)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQL) Delete(ctx context.Context, id string) (bool, error) {
	result, err := s.conn.ExecContext(ctx, deleteResourceQuery, id)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQL) GetForUser(ctx context.Context, userID, category, name string) (*model.ResourceEntity, error) {
	var entity model.ResourceEntity
	if err := s.conn.QueryRowxContext(ctx, getForUserQuery, userID, category, name).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
