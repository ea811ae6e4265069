package game

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a session.
type Status int

const (
	StatusActive Status = iota
	StatusEnded
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Outcome classifies the result of a tap. Taps that change nothing are
// ordinary game conditions reported to the caller, never errors.
type Outcome int

const (
	// OutcomeIgnored means the session had already ended.
	OutcomeIgnored Outcome = iota
	// OutcomeBled means the tap consumed a tap and colored cells.
	OutcomeBled
	// OutcomeAlreadyColored means the cell was non-gray; nothing changed.
	OutcomeAlreadyColored
	// OutcomeNoTapsLeft means the budget was already spent before the tap.
	OutcomeNoTapsLeft
)

// TapResult reports what a tap did. Message is an advisory string for the
// presentation layer and carries no state-machine meaning.
type TapResult struct {
	Outcome   Outcome
	Ended     bool
	Completed bool // ended by reaching the completion threshold
	Message   string
}

// Config is the immutable level configuration a session plays against.
// The initial grid is implied: all cells start uncolored.
type Config struct {
	LevelID     string
	LevelName   string
	Difficulty  string
	PaletteSize int // number of selectable colors, 2-6
	MaxTaps     int
	GridSize    int
}

func (c Config) validate() error {
	if c.GridSize <= 0 {
		return fmt.Errorf("game: grid size must be positive, got %d", c.GridSize)
	}
	if c.MaxTaps <= 0 {
		return fmt.Errorf("game: max taps must be positive, got %d", c.MaxTaps)
	}
	if c.PaletteSize < 2 || c.PaletteSize > 6 {
		return fmt.Errorf("game: palette size must be 2-6, got %d", c.PaletteSize)
	}
	return nil
}

// Score is the terminal record of an ended session. It is produced exactly
// once per session that reaches a terminal condition; an abandoned session
// yields no score.
type Score struct {
	LevelID           string
	LevelName         string
	Difficulty        string
	Points            int
	TapsUsed          int
	CompletionPercent float64
	RecordedAt        time.Time
}

// ScoreSink receives the one terminal score of a session. The persistence
// and dashboard layers live behind this interface.
type ScoreSink interface {
	RecordScore(Score) error
}

// SinkFunc adapts a function to the ScoreSink interface.
type SinkFunc func(Score) error

// RecordScore calls f(s).
func (f SinkFunc) RecordScore(s Score) error { return f(s) }

// Session is the per-play state machine. It owns its grid exclusively for
// the session lifetime. All mutating operations must be serialized by the
// caller; the session holds no locks.
type Session struct {
	cfg  Config
	grid *Grid
	sink ScoreSink

	selectedColor  int // palette index, 0-based
	tapsUsed       int
	elapsedSeconds int
	completion     float64
	status         Status
	emitted        bool
	lastScore      *Score
}

// NewSession creates a session for the given level configuration with a
// fresh all-uncolored grid. sink may be nil when no one cares about the
// terminal score (e.g. tests or practice play).
func NewSession(cfg Config, sink ScoreSink) (*Session, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Session{
		cfg:  cfg,
		grid: NewGrid(cfg.GridSize),
		sink: sink,
	}, nil
}

// Grid exposes the session's grid for rendering. Callers must treat it as
// read-only; mutations go through TapCell.
func (s *Session) Grid() *Grid { return s.grid }

// Config returns the level configuration the session plays against.
func (s *Session) Config() Config { return s.cfg }

// Status returns the current lifecycle state.
func (s *Session) Status() Status { return s.status }

// TapsUsed returns the number of taps consumed so far.
func (s *Session) TapsUsed() int { return s.tapsUsed }

// TapsLeft returns the remaining tap budget.
func (s *Session) TapsLeft() int { return s.cfg.MaxTaps - s.tapsUsed }

// ElapsedSeconds returns the advisory play clock.
func (s *Session) ElapsedSeconds() int { return s.elapsedSeconds }

// CompletionPercent returns the current coverage percentage.
func (s *Session) CompletionPercent() float64 { return s.completion }

// SelectedColor returns the 0-based palette index of the active color.
func (s *Session) SelectedColor() int { return s.selectedColor }

// LastScore returns the emitted terminal score, or nil if the session has
// not ended (or was abandoned).
func (s *Session) LastScore() *Score { return s.lastScore }

// Tick advances the play clock by one second. No-op once ended. The clock
// is advisory input to scoring, so skipped or coalesced ticks never break
// invariants.
func (s *Session) Tick() {
	if s.status != StatusActive {
		return
	}
	s.elapsedSeconds++
}

// SelectColor sets the active palette color. Valid only while active; an
// out-of-range index is a programming error.
func (s *Session) SelectColor(index int) {
	if s.status != StatusActive {
		return
	}
	if index < 0 || index >= s.cfg.PaletteSize {
		panic(fmt.Sprintf("game: color index %d out of palette range [0,%d)", index, s.cfg.PaletteSize))
	}
	s.selectedColor = index
}

// TapCell handles a tap on (row, col). Coordinates must be in range; that
// is the input layer's contract. The completion check deliberately precedes
// the exhaustion check so a tap that satisfies both ends the session through
// exactly one branch with exactly one score emission.
func (s *Session) TapCell(row, col int) TapResult {
	if s.status != StatusActive {
		return TapResult{Outcome: OutcomeIgnored, Ended: true}
	}

	if s.tapsUsed >= s.cfg.MaxTaps {
		// Budget already spent: game over without consuming a tap.
		s.end(false)
		return TapResult{Outcome: OutcomeNoTapsLeft, Ended: true, Message: "no taps left"}
	}

	if s.grid.Get(row, col) != 0 {
		return TapResult{Outcome: OutcomeAlreadyColored, Message: "already colored"}
	}

	// Grid values are 1-based; 0 stays reserved for uncolored.
	ApplyBleed(s.grid, row, col, s.selectedColor+1, DefaultBleedDistance)
	s.tapsUsed++
	s.completion = Completion(s.grid)

	switch {
	case IsComplete(s.completion):
		s.end(true)
		msg := "complete"
		if IsPerfect(s.completion) {
			msg = "perfect"
		}
		return TapResult{Outcome: OutcomeBled, Ended: true, Completed: true, Message: msg}
	case s.tapsUsed >= s.cfg.MaxTaps:
		s.end(false)
		return TapResult{Outcome: OutcomeBled, Ended: true, Message: "out of taps"}
	default:
		return TapResult{Outcome: OutcomeBled}
	}
}

// end transitions to Ended and emits the terminal score at most once.
func (s *Session) end(completed bool) {
	s.status = StatusEnded
	if s.emitted {
		return
	}
	s.emitted = true

	score := Score{
		LevelID:           s.cfg.LevelID,
		LevelName:         s.cfg.LevelName,
		Difficulty:        s.cfg.Difficulty,
		Points:            ComputeScore(s.cfg.MaxTaps, s.tapsUsed, s.completion, s.elapsedSeconds),
		TapsUsed:          s.tapsUsed,
		CompletionPercent: s.completion,
		RecordedAt:        time.Now(),
	}
	_ = completed // terminal branch is carried in the TapResult, not the record
	s.lastScore = &score

	if s.sink != nil {
		// Best-effort: a failing sink must not corrupt the session.
		_ = s.sink.RecordScore(score)
	}
}

// Reload resets the session to its just-constructed state for the same
// level: fresh grid, zero taps, zero clock, first palette color, Active.
// Valid in any state.
func (s *Session) Reload() {
	s.grid.Reset()
	s.selectedColor = 0
	s.tapsUsed = 0
	s.elapsedSeconds = 0
	s.completion = 0
	s.status = StatusActive
	s.emitted = false
	s.lastScore = nil
}

// Exit abandons the session without emitting a score. The session becomes
// Ended; Reload still revives it.
func (s *Session) Exit() {
	if s.status == StatusActive {
		s.status = StatusEnded
		s.emitted = true // suppress any later emission
	}
}
