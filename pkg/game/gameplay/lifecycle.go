package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"somnium/pkg/game/levels"
	"somnium/pkg/game/state"
	"somnium/pkg/game/story"
)

// Session ties the game state, the narrative and the level provider
// into one run of the dream. The flow per level: enter (narrative
// message), wander, meet the entity (its question becomes Pending),
// answer (outcome message), descend to the next level.
type Session struct {
	Game     *state.Game
	Story    *story.Story
	Provider *levels.Provider

	// Pending is the entity's unanswered question, nil outside an
	// encounter.
	Pending *story.Segment

	// segment is the current level's story beat; its narrative shows
	// on entry and its question waits for the entity encounter.
	segment story.Segment
}

// NewSession builds a run starting at the given level. A level below 1
// starts at 1.
func NewSession(startLevel int, seed int64) (*Session, error) {
	g := state.NewGame(seed)
	if startLevel > 1 {
		g.Level = startLevel
	}

	s := &Session{
		Game:     g,
		Story:    story.New(),
		Provider: &levels.Provider{},
	}
	if err := s.enterLevel(); err != nil {
		return nil, err
	}

	g.AddMessage(gotext.Get("You drift into sleep."))
	return s, nil
}

// enterLevel loads the current level's map and opens its story beat.
func (s *Session) enterLevel() error {
	g := s.Game

	m, err := s.Provider.Load(g.Level, g.Seed)
	if err != nil {
		return err
	}
	g.EnterLevel(m)

	if m.HasFeature(levels.FallbackFeature) {
		g.AddMessage(gotext.Get("The dream shudders, then steadies around you."))
	}

	s.segment = s.Story.EnterLevel(g.Level, m)
	g.AddMessage(s.segment.Narrative)
	return nil
}

// Tick runs the per-frame checks that are not driven by input. It
// returns true when the entity encounter fired this tick.
func (s *Session) Tick() bool {
	if s.Pending != nil {
		return false
	}
	if !CheckEncounter(s.Game) {
		return false
	}

	s.Pending = &s.segment
	s.Game.AddMessage(gotext.Get("The entity turns toward you."))
	s.Game.AddMessage(s.segment.Question)
	return true
}

// Answer resolves the pending question and sinks into the next level.
// Answering with no pending question does nothing.
func (s *Session) Answer(yes bool) error {
	if s.Pending == nil {
		return nil
	}

	outcome := s.Story.Choose(*s.Pending, yes)
	s.Pending = nil
	s.Game.AddMessage(outcome)

	s.Game.AdvanceLevel()
	if err := s.enterLevel(); err != nil {
		return err
	}
	s.Game.AddMessage(gotext.Get("You sink deeper into the dream."))
	return nil
}

// Summary returns the narrative summary of the run so far.
func (s *Session) Summary() string {
	return s.Story.Summary()
}
