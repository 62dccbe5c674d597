package constant

// Stage is one step of the provide conversation awaiting a single reply.
type Stage int

const (
	StageStart Stage = iota
	StageCategory
	StageResource
	StageQuantity
	StageCondition
	StageNextMatch
	StageAnother
)

var stageNames = map[Stage]string{
	StageStart:     "start",
	StageCategory:  "category",
	StageResource:  "resource",
	StageQuantity:  "quantity",
	StageCondition: "condition",
	StageNextMatch: "next_match",
	StageAnother:   "another",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// Outcome is what a turn committed, if anything.
type Outcome string

const (
	OutcomeNone      Outcome = ""
	OutcomeCancelled Outcome = "cancelled"
	OutcomeNoOp      Outcome = "complete"
	OutcomeDeleted   Outcome = "deleted"
	OutcomeCreated   Outcome = "created"
	OutcomeUpdated   Outcome = "updated"
	OutcomeFinished  Outcome = "finished"
)

const (
	// DefaultMatchRadiusMeters is ten miles.
	DefaultMatchRadiusMeters = 16093.4

	NoneToken = "none"
)
