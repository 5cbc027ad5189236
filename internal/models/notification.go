package models

import "time"

// Notification kinds emitted by the progression services.
const (
	NotifyAchievement = "achievement"
	NotifyChallenge   = "challenge"
	NotifyLevelUp     = "level_up"
	NotifySound       = "sound"
)

// Notification is a user-facing event produced when progression state changes
// (achievement unlocked, challenge completed, level gained).
type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
