package dino

// Phase is the simulation state of a session.
type Phase int

const (
	PhaseIdle     Phase = iota // No game started yet
	PhasePlaying               // Frames are being scheduled
	PhasePaused                // Frozen, state preserved for resumption
	PhaseGameOver              // Player collided; waiting for a restart
	phaseCount
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Event is a request to change the phase.
type Event int

const (
	EventStart  Event = iota // Begin a fresh game
	EventPause               // Freeze a running game
	EventResume              // Continue a frozen game
	EventCrash               // The player hit an obstacle
	eventCount
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// transition is one cell of the phase table. Cells with fire=false are
// defined no-ops: the phase stays and no effect runs.
type transition struct {
	to   Phase
	fire bool
}

// phaseTable lists every phase x event pair explicitly.
var phaseTable = [phaseCount][eventCount]transition{
	PhaseIdle: {
		EventStart:  {to: PhasePlaying, fire: true},
		EventPause:  {to: PhaseIdle},
		EventResume: {to: PhaseIdle},
		EventCrash:  {to: PhaseIdle},
	},
	PhasePlaying: {
		EventStart:  {to: PhasePlaying},
		EventPause:  {to: PhasePaused, fire: true},
		EventResume: {to: PhasePlaying},
		EventCrash:  {to: PhaseGameOver, fire: true},
	},
	PhasePaused: {
		EventStart:  {to: PhasePaused},
		EventPause:  {to: PhasePaused},
		EventResume: {to: PhasePlaying, fire: true},
		EventCrash:  {to: PhasePaused},
	},
	PhaseGameOver: {
		EventStart:  {to: PhasePlaying, fire: true},
		EventPause:  {to: PhaseGameOver},
		EventResume: {to: PhaseGameOver},
		EventCrash:  {to: PhaseGameOver},
	},
}

// Next looks up the table. It returns the resulting phase and whether the
// transition fires; a non-firing result always equals the input phase.
func Next(p Phase, e Event) (Phase, bool) {
	if p < 0 || p >= phaseCount || e < 0 || e >= eventCount {
		return p, false
	}
	t := phaseTable[p][e]
	return t.to, t.fire
}
