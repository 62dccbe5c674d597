package model

// ResourceEntity is an item a user offers. At most one exists per
// (owner, category, name); a zero quantity is never persisted.
type ResourceEntity struct {
	ID          string `db:"id" json:"id"`
	CreatedByID string `db:"created_by_id" json:"created_by_id" validate:"required"`
	Category    string `db:"category" json:"category" validate:"required"`
	Name        string `db:"name" json:"name" validate:"required"`
	Quantity    int    `db:"quantity" json:"quantity" validate:"gt=0"`
	IsUnopened  bool   `db:"is_unopened" json:"is_unopened"`
}
