package model

import "time"

// Coordinates is a WGS84 point.
type Coordinates struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// UserEntity represents the user table entity. Location is nil until the
// user has shared coordinates.
type UserEntity struct {
	ID                string       `db:"id" json:"id"`
	Name              string       `db:"name" json:"name"`
	PhoneNumber       string       `db:"phone_number" json:"phone_number" validate:"required,phone"`
	Organization      string       `db:"organization" json:"organization,omitempty"`
	Location          *Coordinates `db:"-" json:"location,omitempty"`
	ContactEnabled    bool         `db:"contact_enabled" json:"contact_enabled"`
	ReminderFrequency string       `db:"reminder_frequency" json:"reminder_frequency,omitempty"`
	CreatedAt         time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt         *time.Time   `db:"updated_at" json:"updated_at,omitempty"`
}

// HasLocation reports whether the user can take part in distance matching.
func (u *UserEntity) HasLocation() bool {
	return u != nil && u.Location != nil
}

// RegisterRequest for user onboarding
type RegisterRequest struct {
	Name         string   `json:"name"`
	PhoneNumber  string   `json:"phone_number" validate:"required,phone"`
	Organization string   `json:"organization"`
	Latitude     *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

type LocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

type ContactRequest struct {
	Enabled bool `json:"enabled"`
}

// ReminderRequest selects the days a user wants reminders. An empty list
// turns reminders off.
type ReminderRequest struct {
	Days []string `json:"days" validate:"dive,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`
}

// UserFilter for querying users
type UserFilter struct {
	ID          string
	PhoneNumber string
}
