package need

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/resource-matcher/model"
)

type SQL struct {
	conn *sqlx.DB
}

type NeedRepository interface {
	Create(ctx context.Context, data *model.NeedEntity) error
	Update(ctx context.Context, data *model.NeedEntity) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*model.NeedEntity, error)
	GetForUser(ctx context.Context, userID, category, name string) (*model.NeedEntity, error)
	ListByCategoryAndName(ctx context.Context, category, name string) ([]model.NeedEntity, error)
}

func NewNeedRepository(conn *sqlx.DB) NeedRepository {
	return &SQL{conn: conn}
}

const (
	insertNeedQuery = `INSERT INTO need (id, created_by_id, category, name, quantity, unopened_only, instructions) VALUES (?, ?, ?, ?, ?, ?, ?)`
	updateNeedQuery = `UPDATE need SET quantity = ?, unopened_only = ?, instructions = ? WHERE id = ?`
	deleteNeedQuery = `DELETE FROM need WHERE id = ?`
	selectNeed      = `SELECT id, created_by_id, category, name, quantity, unopened_only, instructions FROM need`
	getByIDQuery    = selectNeed + ` WHERE id = ?`
	getForUserQuery = selectNeed + ` WHERE created_by_id = ? AND category = ? AND name = ? LIMIT 1`
	// insertion order keeps discovery order stable between queries
	listByKeyQuery = selectNeed + ` WHERE category = ? AND name = ? ORDER BY seq`
)

func (s *SQL) Create(ctx context.Context, data *model.NeedEntity) error {
	_, err := s.conn.ExecContext(ctx, insertNeedQuery, data.ID, data.CreatedByID, data.Category, data.Name, data.Quantity, data.UnopenedOnly, data.Instructions)
	return err
}

func (s *SQL) Update(ctx context.Context, data *model.NeedEntity) (bool, error) {
	result, err := s.conn.ExecContext(ctx, updateNeedQuery, data.Quantity, data.UnopenedOnly, data.Instructions, data.ID)
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
	result, err := s.conn.ExecContext(ctx, deleteNeedQuery, id)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.NeedEntity, error) {
	return s.getOne(ctx, getByIDQuery, id)
}

func (s *SQL) GetForUser(ctx context.Context, userID, category, name string) (*model.NeedEntity, error) {
	return s.getOne(ctx, getForUserQuery, userID, category, name)
}

func (s *SQL) getOne(ctx context.Context, query string, args ...any) (*model.NeedEntity, error) {
	var entity model.NeedEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) ListByCategoryAndName(ctx context.Context, category, name string) ([]model.NeedEntity, error) {
	items := make([]model.NeedEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, listByKeyQuery, category, name); err != nil {
		return nil, err
	}
	return items, nil
}
