package models

// Storage keys. These names are the persistence contract: an exported
// snapshot from one deployment can be imported into another, so they
// must never change.
const (
	KeyPlayerStats        = "gameHubStats"
	KeyLeaderboard        = "gameHubLeaderboard"
	KeyDailyChallenges    = "dailyChallenges"
	KeyChallengeDate      = "lastChallengeDate"
	KeyChallengeStreak    = "challengeStreak"
	KeyLastCompletionDate = "lastChallengeCompletionDate"
	KeySoundSettings      = "gameHubSoundSettings"
)

// Game types known to the hub.
const (
	GameDrawing = "drawing"
	GameGartic  = "gartic"
	GameMemory  = "memory"
)

// ValidGameType reports whether s names one of the three mini-games.
func ValidGameType(s string) bool {
	switch s {
	case GameDrawing, GameGartic, GameMemory:
		return true
	}
	return false
}
