package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/resource-matcher/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, data *model.UserEntity) error
	Update(ctx context.Context, data *model.UserEntity) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	ListWithinDistance(ctx context.Context, point model.Coordinates, distanceMeters float64) ([]model.UserEntity, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO user (id, name, phone_number, organization, latitude, longitude, contact_enabled, reminder_frequency, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	updateUserQuery = `UPDATE user SET name = ?, phone_number = ?, organization = ?, latitude = ?, longitude = ?, contact_enabled = ?, reminder_frequency = ?, updated_at = NOW()
WHERE id = ?`
	deleteUserQuery = `DELETE FROM user WHERE id = ?`
	getUserBase     = `SELECT id, name, phone_number, organization, latitude, longitude, contact_enabled, reminder_frequency, created_at, updated_at FROM user WHERE true`
	// POINT takes (longitude, latitude)
	listWithinDistanceQuery = getUserBase + ` AND latitude IS NOT NULL AND longitude IS NOT NULL
AND ST_Distance_Sphere(POINT(longitude, latitude), POINT(?, ?)) <= ?`
)

// userRow mirrors the user table; coordinates are nullable.
type userRow struct {
	model.UserEntity
	Latitude  sql.NullFloat64 `db:"latitude"`
	Longitude sql.NullFloat64 `db:"longitude"`
}

func (r *userRow) entity() *model.UserEntity {
	e := r.UserEntity
	if r.Latitude.Valid && r.Longitude.Valid {
		e.Location = &model.Coordinates{Latitude: r.Latitude.Float64, Longitude: r.Longitude.Float64}
	}
	return &e
}

func location(u *model.UserEntity) (sql.NullFloat64, sql.NullFloat64) {
	if u.Location == nil {
		return sql.NullFloat64{}, sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: u.Location.Latitude, Valid: true},
		sql.NullFloat64{Float64: u.Location.Longitude, Valid: true}
}

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) error {
	lat, lng := location(data)
	_, err := s.conn.ExecContext(ctx, insertUserQuery, data.ID, data.Name, data.PhoneNumber, data.Organization, lat, lng, data.ContactEnabled, data.ReminderFrequency)
	return err
}

func (s *SQL) Update(ctx context.Context, data *model.UserEntity) (bool, error) {
	lat, lng := location(data)
	result, err := s.conn.ExecContext(ctx, updateUserQuery, data.Name, data.PhoneNumber, data.Organization, lat, lng, data.ContactEnabled, data.ReminderFrequency, data.ID)
	if err != nil {
		return false, err
	}
	return affected(result)
}

func (s *SQL) Delete(ctx context.Context, id string) (bool, error) {
	result, err := s.conn.ExecContext(ctx, deleteUserQuery, id)
	if err != nil {
		return false, err
	}
	return affected(result)
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 2)

	if filter.ID != "" {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.PhoneNumber != "" {
		query += " AND phone_number = ?"
		args = append(args, filter.PhoneNumber)
	}

	var row userRow
	if err := s.conn.QueryRowxContext(ctx, query+" LIMIT 1", args...).StructScan(&row); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return row.entity(), nil
}

func (s *SQL) ListWithinDistance(ctx context.Context, point model.Coordinates, distanceMeters float64) ([]model.UserEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listWithinDistanceQuery, point.Longitude, point.Latitude, distanceMeters)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.UserEntity, 0)
	for rows.Next() {
		var row userRow
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		users = append(users, *row.entity())
	}
	return users, rows.Err()
}

func affected(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
