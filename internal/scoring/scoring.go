// Package scoring holds the pure score computation and formatting functions
// shared by all mini-games. Nothing here touches storage or the clock.
package scoring

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrInvalidTotalTime is returned when a timed score is requested with a
	// non-positive round duration.
	ErrInvalidTotalTime = errors.New("scoring: total time must be positive")

	// ErrInvalidMoves is returned when a memory score is requested with a
	// non-positive move count.
	ErrInvalidMoves = errors.New("scoring: moves must be positive")
)

// Score computes the score for a timed session. Half of maxScore is awarded
// as a base, the other half scales with the fraction of time left, and the
// sum is multiplied by the difficulty bonus. timeRemaining may be zero.
func Score(timeRemaining, totalTime, maxScore int, bonusMultiplier float64) (int, error) {
	if totalTime <= 0 {
		return 0, ErrInvalidTotalTime
	}

	base := int(math.Floor(float64(maxScore) * 0.5))
	timeBonus := int(math.Floor(float64(timeRemaining) / float64(totalTime) * float64(maxScore) * 0.5))

	return int(math.Floor(float64(base+timeBonus) * bonusMultiplier)), nil
}

// MemoryScore computes the score for a memory-match session from move
// efficiency and completion time. moves must be at least 1.
func MemoryScore(moves, optimalMoves, timeElapsed, maxTime int) (int, error) {
	if moves <= 0 {
		return 0, ErrInvalidMoves
	}
	if maxTime <= 0 {
		return 0, ErrInvalidTotalTime
	}

	moveEfficiency := math.Max(0, float64(optimalMoves)/float64(moves)*100)
	timeBonus := math.Max(0, float64(maxTime-timeElapsed)/float64(maxTime)*50)

	return int(math.Floor(moveEfficiency + timeBonus)), nil
}

// DefaultMemoryMaxTime is the par time for a memory round in seconds.
const DefaultMemoryMaxTime = 120

// DifficultyMultiplier maps a difficulty name to its score multiplier.
// Unknown difficulties count as easy.
func DifficultyMultiplier(difficulty string) float64 {
	switch difficulty {
	case "medium":
		return 1.5
	case "hard":
		return 2
	default:
		return 1
	}
}

// FormatScore renders a score compactly: 999 -> "999", 1500 -> "1.5k",
// 2500000 -> "2.5M".
func FormatScore(score int) string {
	if score >= 1000000 {
		return fmt.Sprintf("%.1fM", float64(score)/1000000)
	}
	if score >= 1000 {
		return fmt.Sprintf("%.1fk", float64(score)/1000)
	}
	return strconv.Itoa(score)
}

// ScoreRating maps a score to a short verdict string for the results screen.
func ScoreRating(score, maxScore int) string {
	if maxScore <= 0 {
		return "Keep trying!"
	}
	percentage := float64(score) / float64(maxScore) * 100

	switch {
	case percentage >= 90:
		return "Perfect!"
	case percentage >= 80:
		return "Excellent!"
	case percentage >= 70:
		return "Great!"
	case percentage >= 60:
		return "Good!"
	case percentage >= 50:
		return "Not bad!"
	default:
		return "Keep trying!"
	}
}

// XPPerLevel is how much total score one level spans.
const XPPerLevel = 100

// LevelFromXP converts accumulated score to a level, starting at 1.
func LevelFromXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// XPToNextLevel reports how much score remains until the next level.
func XPToNextLevel(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return XPPerLevel - xp%XPPerLevel
}

// FormatTime renders seconds as "m:ss".
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
