package reveal

import "github.com/Shekhar0165/shekhar-portfolio/internal/command"

// State is the phase of a Sequencer.
type State int

const (
	Idle State = iota
	Revealing
	Done
)

func (s State) String() string {
	switch s {
	case Revealing:
		return "revealing"
	case Done:
		return "done"
	default:
		return "idle"
	}
}

// Sequencer discloses a fixed list of entries one per tick. It owns no
// timer: the caller schedules ticks tagged with Gen and feeds them back
// through Advance, which ignores ticks from an earlier run.
type Sequencer struct {
	entries []command.OutputEntry
	next    int
	state   State
	gen     int
}

func (s *Sequencer) State() State { return s.state }

// Gen identifies the current run.
func (s *Sequencer) Gen() int { return s.gen }

// Active reports whether a reveal is in flight.
func (s *Sequencer) Active() bool { return s.state == Revealing }

// Start begins revealing entries. It refuses while another run is in
// flight. An empty list completes immediately.
func (s *Sequencer) Start(entries []command.OutputEntry) bool {
	if s.state == Revealing {
		return false
	}
	s.gen++
	s.entries = entries
	s.next = 0
	if len(entries) == 0 {
		s.state = Done
	} else {
		s.state = Revealing
	}
	return true
}

// Advance reveals the next entry for the tick tagged gen. ok is false for
// stale ticks and when nothing is left. The last entry moves the sequencer
// to Done.
func (s *Sequencer) Advance(gen int) (entry command.OutputEntry, ok bool) {
	if gen != s.gen || s.state != Revealing {
		return command.OutputEntry{}, false
	}
	entry = s.entries[s.next]
	s.next++
	if s.next >= len(s.entries) {
		s.state = Done
	}
	return entry, true
}

// Remaining is the number of entries not yet revealed.
func (s *Sequencer) Remaining() int {
	if s.state != Revealing {
		return 0
	}
	return len(s.entries) - s.next
}

// Stop abandons the current run. Ticks already scheduled become stale.
func (s *Sequencer) Stop() {
	s.gen++
	s.entries = nil
	s.next = 0
	s.state = Idle
}
