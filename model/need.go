package model

import "github.com/muhammadheryan/resource-matcher/constant"

// NeedEntity is a demand registered by an organization user.
type NeedEntity struct {
	ID           string `db:"id" json:"id"`
	CreatedByID  string `db:"created_by_id" json:"created_by_id" validate:"required"`
	Category     string `db:"category" json:"category" validate:"required"`
	Name         string `db:"name" json:"name" validate:"required"`
	Quantity     int    `db:"quantity" json:"quantity" validate:"gte=0"`
	UnopenedOnly bool   `db:"unopened_only" json:"unopened_only"`
	Instructions string `db:"instructions" json:"instructions"`
}

// AcceptsCondition reports whether a resource in the given condition can
// satisfy the need.
func (n *NeedEntity) AcceptsCondition(isUnopened bool) bool {
	return !n.UnopenedOnly || isUnopened
}

// NeedRequest upserts a need for the organization identified by phone.
type NeedRequest struct {
	PhoneNumber  string `json:"phone_number" validate:"required"`
	Category     string `json:"category" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Quantity     int    `json:"quantity" validate:"gte=0"`
	UnopenedOnly bool   `json:"unopened_only"`
	Instructions string `json:"instructions"`
}

type NeedResponse struct {
	Outcome constant.Outcome `json:"outcome"`
	Need    *NeedEntity      `json:"need,omitempty"`
}
