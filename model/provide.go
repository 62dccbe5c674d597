package model

import "github.com/muhammadheryan/resource-matcher/constant"

// ProvideState is the resumable position of one user's provide
// conversation. It is serialized between turns.
type ProvideState struct {
	Stage      constant.Stage `json:"stage"`
	Category   string         `json:"category,omitempty"`
	Resource   string         `json:"resource,omitempty"`
	Quantity   int            `json:"quantity,omitempty"`
	Pending    []PendingMatch `json:"pending,omitempty"`
	ResourceID string         `json:"resource_id,omitempty"`
}

// PendingMatch is a match found at creation time that has not been shown yet.
type PendingMatch struct {
	NeedID         string  `json:"need_id"`
	DistanceMeters float64 `json:"distance_meters"`
}

// ProvideResult is what one Advance call produced. State is nil when the
// conversation is over.
type ProvideResult struct {
	State    *ProvideState    `json:"-"`
	Outcome  constant.Outcome `json:"outcome,omitempty"`
	Messages []string         `json:"messages"`
	Matches  []Match          `json:"matches,omitempty"`
}

func (r *ProvideResult) Done() bool {
	return r.State == nil
}

type ProvideTurnRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Text        string `json:"text"`
}

type ProvideTurnResponse struct {
	Messages []string         `json:"messages"`
	Outcome  constant.Outcome `json:"outcome,omitempty"`
	Done     bool             `json:"done"`
}
