package model

// Match pairs a resource with a need it can satisfy. Never persisted.
type Match struct {
	Resource       *ResourceEntity `json:"resource"`
	Need           *NeedEntity     `json:"need"`
	NeedOwner      *UserEntity     `json:"-"`
	DistanceMeters float64         `json:"distance_meters"`
}

// ResourceMatch is a nearby offered resource for a need.
type ResourceMatch struct {
	Resource       *ResourceEntity `json:"resource"`
	Owner          *UserEntity     `json:"owner"`
	DistanceMeters float64         `json:"distance_meters"`
}

type ResourceMatchResponse struct {
	NeedID  string          `json:"need_id"`
	Matches []ResourceMatch `json:"matches"`
}
