package constant

// Collection identifies which store collection a record belongs to.
type Collection string

const (
	CollectionUsers     Collection = "users"
	CollectionResources Collection = "resources"
	CollectionNeeds     Collection = "needs"
	CollectionFeedback  Collection = "feedback"
)
