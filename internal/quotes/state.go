package quotes

// Phase is the stage of the search state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// State is the search state shown by the form. A state carries either
// records or an error message, never both.
type State struct {
	phase   Phase
	records []Record
	message string
}

// Begin clears any previous outcome and enters PhaseLoading.
func (s State) Begin() State {
	return State{phase: PhaseLoading}
}

// Resolve leaves PhaseLoading with the outcome of a search. A nil error
// with no records resolves as not found.
func (s State) Resolve(records []Record, err error) State {
	if err == nil && len(records) == 0 {
		err = ErrNotFound
	}
	if err != nil {
		return State{phase: PhaseError, message: UserMessage(err)}
	}
	return State{phase: PhaseSuccess, records: records}
}

func (s State) Phase() Phase      { return s.phase }
func (s State) Records() []Record { return s.records }
func (s State) Message() string   { return s.message }
func (s State) Busy() bool        { return s.phase == PhaseLoading }
