package models

// DailyChallenge is one of the three challenges generated per calendar day.
// The ID is deterministic: "{type}-{YYYY-MM-DD}-{templateIndex}".
type DailyChallenge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Points      int    `json:"points"`
	GameLink    string `json:"gameLink"`
	Completed   bool   `json:"completed"`
}

// ChallengeTemplate is a fixed challenge description for one game type.
type ChallengeTemplate struct {
	Title       string
	Description string
	Points      int
}

// Challenge template tables, three per game type. Order matters: the daily
// generator indexes into these slices.
var (
	DrawingChallenges = []ChallengeTemplate{
		{Title: "Speed Artist", Description: "Complete a drawing in under 30 seconds", Points: 50},
		{Title: "Precision Drawing", Description: "Draw with at least 80% accuracy", Points: 75},
		{Title: "Color Master", Description: "Use at least 5 different colors in your drawing", Points: 40},
	}

	GarticChallenges = []ChallengeTemplate{
		{Title: "Chain Reaction", Description: "Complete a full chain with 100% accuracy", Points: 80},
		{Title: "Quick Guesser", Description: "Guess correctly with at least 10 seconds remaining", Points: 60},
		{Title: "Perfect Match", Description: "Match your drawing exactly to the word", Points: 70},
	}

	MemoryChallenges = []ChallengeTemplate{
		{Title: "Memory Master", Description: "Complete the memory game with fewer than 20 moves", Points: 90},
		{Title: "Speed Matcher", Description: "Complete the memory game in under 60 seconds", Points: 85},
		{Title: "Hard Mode Hero", Description: "Complete the hard difficulty memory game", Points: 100},
	}
)

// GameLink returns the front-end route for a game type.
func GameLink(gameType string) string {
	return "/games/" + gameType
}
