// Package story drives the dream narrative: one themed segment per
// level, yes/no questions with diverging outcomes, recurring elements
// that echo earlier answers, and one-line fragments for dream marks.
// A Story is deterministic: the same level maps and choices always
// tell the same tale.
package story

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"somnium/pkg/engine/world"
)

// Mood is the dream's emotional drift, shifted by the player's answers.
type Mood int

// Moods.
const (
	MoodNeutral Mood = iota
	MoodPositive
	MoodNegative
)

// Segment is one story beat: the narrative shown on entering a level
// and the question the dream asks.
type Segment struct {
	Theme     string
	Narrative string
	Question  string

	questionIndex int
}

// Story tracks narrative progression across a run.
type Story struct {
	visits    map[string]int
	depth     int
	recurring []string
	mood      Mood

	yesCount map[string]int
	noCount  map[string]int
}

// New creates an empty story at the surface of the dream.
func New() *Story {
	return &Story{
		visits:   make(map[string]int),
		yesCount: make(map[string]int),
		noCount:  make(map[string]int),
	}
}

// ThemeForLevel picks a theme from the level's shape. Feature tags win
// over the plain level cycle: a labyrinth feels like being lost, open
// caverns feel like flight.
func ThemeForLevel(level int, m *world.GridMap) string {
	switch {
	case level == 1:
		return "falling"
	case m != nil && (m.HasFeature("labyrinth") || m.HasFeature("long-corridor")):
		return "labyrinth"
	case m != nil && m.HasFeature("cavernous"):
		return "flying"
	case m != nil && m.HasFeature("claustrophobic"):
		return "chase"
	}
	return themes[(level-1)%len(themes)].Name
}

// EnterLevel advances the story into a new level and returns its
// segment. Revisiting a theme moves to its next narrative and question
// so repeated dreams keep shifting.
func (s *Story) EnterLevel(level int, m *world.GridMap) Segment {
	name := ThemeForLevel(level, m)
	theme, ok := themeByName(name)
	if !ok {
		theme = themes[0]
	}

	visit := s.visits[theme.Name]
	s.visits[theme.Name]++
	s.depth++

	idx := visit % len(theme.Questions)
	narrative := theme.Narratives[visit%len(theme.Narratives)]

	// Echo one recurring element back, oldest first, once the dream
	// has accumulated any.
	if len(s.recurring) > 0 {
		narrative = fmt.Sprintf("%s %s appears again in the distance.", narrative, s.recurring[0])
	}
	if s.depth > 3 {
		narrative = fmt.Sprintf("%s %s", gotext.Get("Deeper in the dream:"), narrative)
	}

	return Segment{
		Theme:         theme.Name,
		Narrative:     narrative,
		Question:      theme.Questions[idx],
		questionIndex: idx,
	}
}

// Choose resolves a segment's question and returns the outcome line.
// Answers tilt the dream's mood and can plant recurring elements.
func (s *Story) Choose(seg Segment, yes bool) string {
	theme, ok := themeByName(seg.Theme)
	if !ok {
		return ""
	}

	if yes {
		s.yesCount[seg.Theme]++
	} else {
		s.noCount[seg.Theme]++
	}

	switch {
	case s.yesCount[seg.Theme] > s.noCount[seg.Theme]:
		s.mood = MoodPositive
	case s.noCount[seg.Theme] > s.yesCount[seg.Theme]:
		s.mood = MoodNegative
	default:
		s.mood = MoodNeutral
	}

	switch {
	case seg.Theme == "falling" && yes:
		s.addRecurring("The sensation of weightlessness")
	case seg.Theme == "chase" && !yes:
		s.addRecurring("The sound of distant footsteps")
	case seg.Theme == "labyrinth" && yes:
		s.addRecurring("A mysterious door")
	}

	if yes {
		return theme.YesOutcomes[seg.questionIndex]
	}
	return theme.NoOutcomes[seg.questionIndex]
}

// addRecurring keeps at most the three most recent recurring elements.
func (s *Story) addRecurring(element string) {
	s.recurring = append(s.recurring, element)
	if len(s.recurring) > 3 {
		s.recurring = s.recurring[len(s.recurring)-3:]
	}
}

// Mood returns the current emotional drift.
func (s *Story) Mood() Mood { return s.mood }

// Depth returns how many levels deep the dream has gone.
func (s *Story) Depth() int { return s.depth }

// Summary describes the journey so far.
func (s *Story) Summary() string {
	if s.depth <= 0 {
		return gotext.Get("The dream begins...")
	}

	var depthText string
	switch {
	case s.depth < 3:
		depthText = gotext.Get("You are still near the surface of your dream.")
	case s.depth < 6:
		depthText = gotext.Get("You are descending deeper into your subconscious.")
	default:
		depthText = gotext.Get("You have journeyed deep into the dream world.")
	}

	var moodText string
	switch s.mood {
	case MoodPositive:
		moodText = gotext.Get("Your journey has been mostly hopeful.")
	case MoodNegative:
		moodText = gotext.Get("Your path has been filled with anxiety.")
	default:
		moodText = gotext.Get("Your dream has been a balance of light and dark.")
	}

	out := depthText + " " + moodText
	if len(s.recurring) > 0 {
		out += fmt.Sprintf(" %s seems significant.", s.recurring[len(s.recurring)-1])
	}
	return out
}

// dynamicGet looks up translation keys chosen at runtime.
var dynamicGet = gotext.Get

// FragmentForMark returns the line for a dream mark tag. Unknown tags
// get a generic fragment rather than silence.
func FragmentForMark(tag string) string {
	if line, ok := markFragments[tag]; ok {
		return dynamicGet(line)
	}
	return gotext.Get("Something half-remembered is buried here.")
}
