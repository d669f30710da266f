package story

// Theme is one recurring dream archetype: a pool of narrative openers,
// the questions the dream asks, and the outcome for each answer.
// Narratives, Questions, YesOutcomes and NoOutcomes are parallel: the
// question at index i resolves to the outcomes at index i.
type Theme struct {
	Name        string
	Narratives  []string
	Questions   []string
	YesOutcomes []string
	NoOutcomes  []string
}

// Builtin dream themes. Order matters: levels cycle through this slice
// when no map feature forces a theme.
var themes = []Theme{
	{
		Name: "falling",
		Narratives: []string{
			"You're falling through an endless sky, clouds rushing past you.",
			"The ground approaches rapidly, but you feel strangely calm.",
			"You plummet from a great height, the wind rushing through your hair.",
			"The sensation of falling wakes you with a jolt, but you're still here.",
		},
		Questions: []string{
			"Do you try to fly?",
			"Do you accept the fall?",
			"Do you close your eyes?",
			"Do you reach out for something to grab?",
		},
		YesOutcomes: []string{
			"You spread your arms and begin to glide, the falling transforms into flying.",
			"Your acceptance brings a strange peace as you continue descending.",
			"Darkness envelops you, creating a cocoon of calm in the chaos.",
			"Your hand catches something invisible, stopping your descent instantly.",
		},
		NoOutcomes: []string{
			"You struggle against the inevitable pull downward, tumbling wildly.",
			"Panic sets in as you fight against the fall, your heart racing.",
			"Your eyes remain fixed on the approaching ground, terror mounting.",
			"You curl into yourself, becoming smaller as you continue to fall.",
		},
	},
	{
		Name: "chase",
		Narratives: []string{
			"Something is pursuing you through endless corridors.",
			"Your legs feel heavy as you try to escape what's behind you.",
			"No matter how fast you run, the footsteps behind you stay close.",
			"You hide, holding your breath, as something searches for you.",
		},
		Questions: []string{
			"Do you turn to face it?",
			"Do you try to run faster?",
			"Do you call for help?",
			"Do you find a place to hide?",
		},
		YesOutcomes: []string{
			"You turn, ready to confront your pursuer, but see only shadows.",
			"You push yourself beyond your limits, gaining distance from the threat.",
			"Your voice echoes, and something answers from the distance.",
			"You discover a perfect hiding spot, tucked away from prying eyes.",
		},
		NoOutcomes: []string{
			"You continue fleeing, the presence behind you growing ever closer.",
			"Your limbs grow heavier, movements becoming sluggish and difficult.",
			"Silence is your only companion as you continue your desperate flight.",
			"Exposed and vulnerable, you keep moving as quietly as possible.",
		},
	},
	{
		Name: "flying",
		Narratives: []string{
			"You're soaring above a landscape of impossible geography.",
			"The sensation of weightlessness fills you with exhilaration.",
			"Wind rushes past as you navigate between towers of cloud.",
			"You hover above your sleeping body, free from physical constraints.",
		},
		Questions: []string{
			"Do you fly higher?",
			"Do you look down?",
			"Do you try to reach the horizon?",
			"Do you test your new abilities?",
		},
		YesOutcomes: []string{
			"You ascend toward the stratosphere, the world becoming tiny below.",
			"Vertigo grips you as you see how far you've come from the ground.",
			"The horizon approaches but seems to extend endlessly before you.",
			"You perform impossible aerial maneuvers, free from physical limitations.",
		},
		NoOutcomes: []string{
			"You maintain your altitude, gliding peacefully through the air.",
			"Your gaze remains fixed ahead, afraid of what looking down might bring.",
			"You circle aimlessly, enjoying the sensation without direction.",
			"You fly cautiously, unsure of the rules governing this strange ability.",
		},
	},
	{
		Name: "unprepared",
		Narratives: []string{
			"You suddenly realize you're in public without proper clothes.",
			"You're taking a test for a class you never attended.",
			"You're performing on stage but don't know any of the lines.",
			"You've arrived at an important meeting completely unprepared.",
		},
		Questions: []string{
			"Do you pretend everything is normal?",
			"Do you try to escape the situation?",
			"Do you admit your unpreparedness?",
			"Do you look for help around you?",
		},
		YesOutcomes: []string{
			"You act with confidence and no one seems to notice anything amiss.",
			"You find an exit, a way out of this embarrassing predicament.",
			"Your honesty is met with unexpected understanding and support.",
			"A friendly face in the crowd nods, offering silent assistance.",
		},
		NoOutcomes: []string{
			"Your discomfort is painfully obvious to everyone around you.",
			"You remain trapped in the situation as anxiety builds.",
			"You fumble forward, trying to hide your lack of preparation.",
			"You stand alone, the weight of expectations crushing you.",
		},
	},
	{
		Name: "labyrinth",
		Narratives: []string{
			"You wander through rooms that impossibly connect to one another.",
			"Doors lead to places that shouldn't exist in the same building.",
			"The hallway extends and contracts as you walk through it.",
			"You recognize this place, but everything is slightly wrong.",
		},
		Questions: []string{
			"Do you try to map the impossible space?",
			"Do you follow the strange logic of this place?",
			"Do you look for someone else caught in this maze?",
			"Do you close your eyes and trust intuition?",
		},
		YesOutcomes: []string{
			"Patterns emerge in the chaos, revealing a hidden order to the space.",
			"By accepting the dream logic, the pathways begin to make sense to you.",
			"You spot another figure in the distance, also searching for a way out.",
			"With eyes closed, your feet carry you confidently forward.",
		},
		NoOutcomes: []string{
			"The more you try to apply reason, the more chaotic the space becomes.",
			"You fight against the dream's rules, becoming more disoriented.",
			"Isolation presses in as you wander the shifting corridors alone.",
			"You stumble forward, eyes open but unseeing of the true path.",
		},
	},
	{
		Name: "teeth",
		Narratives: []string{
			"Your teeth begin to crumble and fall out one by one.",
			"You feel a loose tooth, then another, and another.",
			"Something is wrong with your mouth, teeth shifting and breaking.",
			"You run your tongue over your teeth and feel them disintegrating.",
		},
		Questions: []string{
			"Do you try to save the remaining teeth?",
			"Do you seek a mirror to examine yourself?",
			"Do you ask someone nearby for help?",
			"Do you accept this transformation?",
		},
		YesOutcomes: []string{
			"You cup your hands, collecting the fallen pieces of yourself.",
			"Your reflection reveals something unexpected about your true nature.",
			"A stranger approaches, offering mysterious advice about your condition.",
			"The discomfort fades as you allow yourself to change and transform.",
		},
		NoOutcomes: []string{
			"More teeth loosen and fall, an unstoppable cascade of loss.",
			"You avoid your reflection, afraid of what you might see.",
			"You suffer in isolation, unwilling to reveal your vulnerability.",
			"You fight the change, causing greater pain and discomfort.",
		},
	},
}

// markFragments map dream mark tags to the line shown when the player
// steps onto the mark.
var markFragments = map[string]string{
	"mirror":    "A mirror lies flat in the floor. The face looking back is almost yours.",
	"clock":     "A clock with too many hands ticks backwards beneath your feet.",
	"door":      "A door is painted on the ground, slightly ajar onto nothing.",
	"telephone": "A telephone rings under the floor. You know who is calling.",
	"garden":    "Grass grows through the stones here, from a garden you half remember.",
}

func themeByName(name string) (Theme, bool) {
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}
