package catalog

import "talentloop/internal/domain"

// attributeDefs is the static attribute registry. Definitions are data only:
// lowercase signal/anti-signal keywords matched as substrings against
// candidate text, plus elicitation prompts used for follow-up suggestions.
var attributeDefs = []domain.AttributeDefinition{
	// cognitive
	{
		ID:             "problem_solving",
		Category:       domain.CategoryCognitive,
		CaptureMethods: []domain.CaptureMethod{domain.MethodStoryExtraction, domain.MethodPatternDetection},
		SignalKeywords: []string{
			"broke it down", "root cause", "figured out", "debugg", "first principles",
			"hypothesis", "trade-off", "tradeoff", "narrowed it down",
		},
		AntiSignalKeywords: []string{"gave up", "someone else fixed", "no idea how"},
		ExampleQuestions: []string{
			"Walk me through the hardest problem you untangled recently.",
			"How do you approach a problem you've never seen before?",
		},
		Source: []string{"core"},
	},
	{
		ID:             "learning_agility",
		Category:       domain.CategoryCognitive,
		CaptureMethods: []domain.CaptureMethod{domain.MethodStoryExtraction, domain.MethodSelfReport},
		SignalKeywords: []string{
			"picked up", "taught myself", "learned quickly", "ramped up", "self-taught",
			"new domain", "crash course",
		},
		AntiSignalKeywords: []string{"stick to what i know", "too old to learn", "don't like change"},
		ExampleQuestions: []string{
			"Tell me about the last skill you had to learn from scratch.",
		},
		Source: []string{"core"},
	},
	{
		ID:             "technical",
		Category:       domain.CategoryCognitive,
		CaptureMethods: []domain.CaptureMethod{domain.MethodStoryExtraction, domain.MethodObservation},
		SignalKeywords: []string{
			"architecture", "deployed", "production", "api", "database", "scalab",
			"system design", "infrastructure", "wrote code", "shipped code",
		},
		AntiSignalKeywords: []string{"not technical", "never coded", "leave that to engineers"},
		ScoringRange:       &domain.ScoringRange{Min: 0, Max: 10},
		ExampleQuestions: []string{
			"What's the most complex system you've built or operated?",
		},
		Source: []string{"core"},
	},
	{
		ID:             "ai_readiness",
		Category:       domain.CategoryCognitive,
		CaptureMethods: []domain.CaptureMethod{domain.MethodDirectQuestion, domain.MethodObservation},
		SignalKeywords: []string{
			"llm", "machine learning", "prompt", "fine-tun", "embedding", "copilot",
			"automated with ai", "agents",
		},
		AntiSignalKeywords: []string{"ai is a fad", "don't trust ai", "ai will never"},
		ExampleQuestions: []string{
			"How have you folded AI tools into your day-to-day work?",
		},
		Source: []string{"core"},
	},
	// emotional
	{
		ID:             "empathy",
		Category:       domain.CategoryEmotional,
		CaptureMethods: []domain.CaptureMethod{domain.MethodStoryExtraction, domain.MethodObservation},
		SignalKeywords: []string{
			"they felt", "put myself in", "their perspective", "listened", "understood how",
			"from their side",
		},
		AntiSignalKeywords: []string{"not my problem", "they were wrong to feel", "too sensitive"},
		ExampleQuestions: []string{
			"Tell me about a time a teammate was struggling. What did you do?",
		},
		Source: []string{"core"},
	},
	{
		ID:             "self_awareness",
		Category:       domain.CategoryEmotional,
		CaptureMethods: []domain.CaptureMethod{domain.MethodSelfReport, domain.MethodPatternDetection},
		SignalKeywords: []string{
			"i realized", "my weakness", "i struggle with", "feedback taught me",
			"i tend to", "blind spot", "working on myself",
		},
		AntiSignalKeywords: []string{"no weaknesses", "never wrong", "nothing to improve"},
		ExampleQuestions: []string{
			"What piece of criticism stuck with you the longest?",
		},
		Source: []string{"core"},
	},
	{
		ID:             "resilience",
		Category:       domain.CategoryEmotional,
		CaptureMethods: []domain.CaptureMethod{domain.MethodStoryExtraction},
		SignalKeywords: []string{
			"bounced back", "kept going", "setback", "failed and", "tough quarter",
			"persisted", "didn't quit",
		},
		AntiSignalKeywords: []string{"quit immediately", "couldn't handle", "fell apart"},
		ExampleQuestions: []string{
			"Tell me about a failure that actually cost you something.",
		},
		Source: []string{"core"},
	},
	// professional
	{
		ID:             "communication",
		Category:       domain.CategoryProfessional,
		CaptureMethods: []domain.CaptureMethod{domain.MethodObservation, domain.MethodStoryExtraction},
		SignalKeywords: []string{
			"presented", "explained", "wrote up", "stakeholder", "aligned the team",
			"storytell", "pitched",
		},
		AntiSignalKeywords: []string{"hate presenting", "avoid meetings", "let others talk"},
		ExampleQuestions: []string{
			"How do you land a complicated idea with a skeptical audience?",
		},
		Source: []string{"core"},
	},
	{
		ID:             "leadership",
		Category:       domain.CategoryProfessional,
		CaptureMethods: []domain.CaptureMethod{domain.MethodStoryExtraction},
		SignalKeywords: []string{
			"mentored", "led the", "my team", "delegated", "hired", "coached",
			"grew the team",
		},
		AntiSignalKeywords: []string{"prefer working alone", "never managed", "avoid responsibility"},
		ExampleQuestions: []string{
			"Who's the last person you made better at their job, and how?",
		},
		Source: []string{"core"},
	},
	{
		ID:             "execution_discipline",
		Category:       domain.CategoryProfessional,
		CaptureMethods: []domain.CaptureMethod{domain.MethodStoryExtraction, domain.MethodPatternDetection},
		SignalKeywords: []string{
			"shipped", "deadline", "on time", "delivered", "milestones", "follow through",
			"launched",
		},
		AntiSignalKeywords: []string{"missed the deadline", "half-finished", "lost interest"},
		ExampleQuestions: []string{
			"What did you ship last quarter, end to end?",
		},
		Source: []string{"core"},
	},
	{
		ID:             "domain_expertise",
		Category:       domain.CategoryProfessional,
		CaptureMethods: []domain.CaptureMethod{domain.MethodDirectQuestion, domain.MethodStoryExtraction},
		SignalKeywords: []string{
			"years in", "deep expertise", "specialist", "industry", "certified",
			"published", "known for",
		},
		AntiSignalKeywords: []string{"just started", "outside my field", "never worked in"},
		ExampleQuestions: []string{
			"What do you know about your field that most practitioners get wrong?",
		},
		Source: []string{"core"},
	},
	// identity
	{
		ID:             "values_alignment",
		Category:       domain.CategoryIdentity,
		CaptureMethods: []domain.CaptureMethod{domain.MethodSelfReport, domain.MethodPatternDetection},
		SignalKeywords: []string{
			"i believe", "matters to me", "principle", "integrity", "purpose",
			"refused to",
		},
		AntiSignalKeywords: []string{"whatever pays", "don't care either way"},
		ExampleQuestions: []string{
			"What line wouldn't you cross, even for a great outcome?",
		},
		Source: []string{"core"},
	},
	// personality
	{
		ID:             "social_style",
		Category:       domain.CategoryPersonality,
		CaptureMethods: []domain.CaptureMethod{domain.MethodObservation, domain.MethodSelfReport},
		SignalKeywords: []string{
			"energized by people", "networking", "connect with", "relationships",
			"outgoing", "love meeting",
		},
		AntiSignalKeywords: []string{"drained by people", "avoid small talk", "keep to myself"},
		ExampleQuestions: []string{
			"How do you recharge after a heavy week?",
		},
		Source: []string{"core"},
	},
	{
		ID:             "creativity",
		Category:       domain.CategoryPersonality,
		CaptureMethods: []domain.CaptureMethod{domain.MethodStoryExtraction, domain.MethodObservation},
		SignalKeywords: []string{
			"brainstorm", "unconventional", "reimagined", "what if", "experiment",
			"novel approach", "from scratch",
		},
		AntiSignalKeywords: []string{"by the book", "never deviate", "follow the template"},
		ExampleQuestions: []string{
			"What's the strangest idea you've actually tried?",
		},
		Source: []string{"core"},
	},
	// relationship
	{
		ID:             "team_orientation",
		Category:       domain.CategoryRelationship,
		CaptureMethods: []domain.CaptureMethod{domain.MethodPatternDetection, domain.MethodStoryExtraction},
		SignalKeywords: []string{
			"we built", "together", "paired with", "cross-functional", "credit to the team",
			"our win",
		},
		AntiSignalKeywords: []string{"carried the team", "did everything myself", "they slowed me down"},
		ExampleQuestions: []string{
			"Tell me about the best team you've been part of. What made it work?",
		},
		Source: []string{"core"},
	},
	// motivation
	{
		ID:             "intrinsic_drive",
		Category:       domain.CategoryMotivation,
		CaptureMethods: []domain.CaptureMethod{domain.MethodPatternDetection, domain.MethodSelfReport},
		SignalKeywords: []string{
			"obsessed", "couldn't stop", "side project", "curious", "driven",
			"nights and weekends", "kept digging",
		},
		AntiSignalKeywords: []string{"only for the money", "clock out", "bare minimum"},
		ExampleQuestions: []string{
			"What do you work on when nobody's asking you to?",
		},
		Source: []string{"core"},
	},
	{
		ID:             "passion_depth",
		Category:       domain.CategoryMotivation,
		CaptureMethods: []domain.CaptureMethod{domain.MethodDirectQuestion, domain.MethodObservation},
		SignalKeywords: []string{
			"love", "passionate", "fascinat", "excites me", "hobby", "deep dive",
			"rabbit hole",
		},
		AntiSignalKeywords: []string{"nothing excites", "bored by everything"},
		ExampleQuestions: []string{
			"What topic could you talk about for an hour without notes?",
		},
		Source: []string{"core"},
	},
	// cultural
	{
		ID:             "adaptability",
		Category:       domain.CategoryCultural,
		CaptureMethods: []domain.CaptureMethod{domain.MethodStoryExtraction, domain.MethodPatternDetection},
		SignalKeywords: []string{
			"ambiguity", "wore many hats", "startup pace", "changed direction",
			"pivot", "scrappy", "rolled with it",
		},
		AntiSignalKeywords: []string{"need structure", "rigid process", "hate surprises"},
		ExampleQuestions: []string{
			"Tell me about a time the plan fell apart mid-flight.",
		},
		Source: []string{"core"},
	},
}
