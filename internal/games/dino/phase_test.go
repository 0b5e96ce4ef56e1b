package dino

import "testing"

func TestPhaseTable(t *testing.T) {
	tests := []struct {
		from  Phase
		event Event
		to    Phase
		fires bool
	}{
		{PhaseIdle, EventStart, PhasePlaying, true},
		{PhaseIdle, EventPause, PhaseIdle, false},
		{PhaseIdle, EventResume, PhaseIdle, false},
		{PhaseIdle, EventCrash, PhaseIdle, false},

		{PhasePlaying, EventStart, PhasePlaying, false},
		{PhasePlaying, EventPause, PhasePaused, true},
		{PhasePlaying, EventResume, PhasePlaying, false},
		{PhasePlaying, EventCrash, PhaseGameOver, true},

		{PhasePaused, EventStart, PhasePaused, false},
		{PhasePaused, EventPause, PhasePaused, false},
		{PhasePaused, EventResume, PhasePlaying, true},
		{PhasePaused, EventCrash, PhasePaused, false},

		{PhaseGameOver, EventStart, PhasePlaying, true},
		{PhaseGameOver, EventPause, PhaseGameOver, false},
		{PhaseGameOver, EventResume, PhaseGameOver, false},
		{PhaseGameOver, EventCrash, PhaseGameOver, false},
	}

	for _, tc := range tests {
		t.Run(tc.from.String()+"/"+tc.event.String(), func(t *testing.T) {
			to, fires := Next(tc.from, tc.event)
			if to != tc.to || fires != tc.fires {
				t.Errorf("Next(%v, %v) = (%v, %v), expected (%v, %v)",
					tc.from, tc.event, to, fires, tc.to, tc.fires)
			}
		})
	}
}

func TestPhaseTableNoopKeepsPhase(t *testing.T) {
	// Every non-firing cell must leave the phase untouched
	for p := Phase(0); p < phaseCount; p++ {
		for e := Event(0); e < eventCount; e++ {
			to, fires := Next(p, e)
			if !fires && to != p {
				t.Errorf("Next(%v, %v) moved to %v without firing", p, e, to)
			}
		}
	}
}

func TestNextOutOfRange(t *testing.T) {
	if to, fires := Next(Phase(99), EventStart); fires || to != Phase(99) {
		t.Errorf("unknown phase should be a no-op, got (%v, %v)", to, fires)
	}
	if to, fires := Next(PhaseIdle, Event(-1)); fires || to != PhaseIdle {
		t.Errorf("unknown event should be a no-op, got (%v, %v)", to, fires)
	}
}
