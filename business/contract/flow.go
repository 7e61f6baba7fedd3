package contract

// Stage is where the user is in the analysis flow
type Stage string

const (
	StageCollecting Stage = "collecting"
	StageReviewing  Stage = "reviewing"
)

type Event string

const (
	EventAnalyze Event = "analyze"
	EventRestart Event = "restart"
)

// MinContractsToAnalyze is how many contracts the review step needs
const MinContractsToAnalyze = 2

// Transition is the whole flow:
//
//	collecting --analyze (>= 2 contracts)--> reviewing
//	reviewing  --restart-->                  collecting
//
// Anything else leaves the stage unchanged and reports ok == false.
func Transition(stage Stage, event Event, contractCount int) (next Stage, ok bool) {
	switch {
	case stage == StageCollecting && event == EventAnalyze && contractCount >= MinContractsToAnalyze:
		return StageReviewing, true
	case stage == StageReviewing && event == EventRestart:
		return StageCollecting, true
	default:
		return stage, false
	}
}

// Workspace ties a contract set to the flow stage. Restart clears the set.
type Workspace struct {
	Stage Stage
	Set   *Set
}

func NewWorkspace(set *Set) *Workspace {
	return &Workspace{Stage: StageCollecting, Set: set}
}

func (w *Workspace) Fire(event Event) bool {
	next, ok := Transition(w.Stage, event, w.Set.Len())
	if !ok {
		return false
	}
	if event == EventRestart {
		w.Set.Clear()
	}
	w.Stage = next
	return true
}
