package catalog

import "talentloop/internal/domain"

// SceneDefinition is one static stage of the scripted journey: a persona,
// fixed opening/transition lines, a follow-up prompt list the driver cycles
// through, and a hard cap on candidate exchanges.
type SceneDefinition struct {
	Scene          domain.Scene
	Character      string
	OpeningLine    string
	TransitionLine string
	FollowUps      []string
	MaxExchanges   int
}

var sceneDefs = []SceneDefinition{
	{
		Scene:       domain.SceneElevator,
		Character:   "Riley",
		OpeningLine: "Oh hey — fifth floor too? I'm Riley, I run ops here. You must be the one everyone's been talking about. How was the trip over?",
		FollowUps: []string{
			"First time in this part of town? It grows on you, I promise.",
			"So outside of all this, what does a normal weekend look like for you?",
			"Slowest elevator in the building, sorry. What got you out of bed for this one?",
		},
		TransitionLine: "This is us — come on, I'll walk you to the front desk.",
		MaxExchanges:   3,
	},
	{
		Scene:       domain.SceneReception,
		Character:   "Jordan",
		OpeningLine: "Welcome in! I'm Jordan, I keep this place running. Grab a coffee — they'll be a few minutes. So what are you into lately?",
		FollowUps: []string{
			"What's something you've gone down a rabbit hole on recently?",
			"If work disappeared tomorrow, what would you spend your time building or learning?",
			"What kind of problems do you catch yourself thinking about in the shower?",
			"Who do you look up to in your field, and why them?",
		},
		TransitionLine: "Looks like they're ready for you — right this way.",
		MaxExchanges:   4,
	},
	{
		Scene:       domain.SceneOffice,
		Character:   "Morgan",
		OpeningLine: "Come in, sit anywhere. I'm Morgan — I've heard good things. Let's skip the script: tell me about the work you're proudest of.",
		FollowUps: []string{
			"Walk me through the hardest problem you've untangled. What made it hard?",
			"Tell me about a time you got it badly wrong. What did you change afterwards?",
			"How do the people you've worked with describe you when you're not in the room?",
			"What would you build here in your first ninety days?",
			"Where does your field go in five years, and where do you fit in that?",
		},
		TransitionLine: "That's everything I had — genuinely enjoyed this. We'll be in touch soon.",
		MaxExchanges:   7,
	},
}
