package logic

import (
	"context"

	"github.com/gamehub/progression-api/internal/models"
)

// Notifier is the port progression services emit user-facing events through
// (achievement unlocks, challenge completions, level ups). Implementations
// must not block; dropping under pressure is acceptable.
type Notifier interface {
	Notify(kind, title, message string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(kind, title, message string) {}

// PlayerStatsService owns the local player's progression record.
type PlayerStatsService interface {
	Get(ctx context.Context) models.PlayerStats
	RecordSession(ctx context.Context, scoreToAdd int, gameType string) models.PlayerStats
	SetPlayerName(ctx context.Context, name string) models.PlayerStats
	Reset(ctx context.Context)
	Export(ctx context.Context) (string, error)
	Import(ctx context.Context, data string) bool
}

// LeaderboardService owns the ranked collection of known players.
type LeaderboardService interface {
	GetAll(ctx context.Context, sortBy string) []models.LeaderboardEntry
	Upsert(ctx context.Context, snapshot models.PlayerSnapshot)
	Rank(ctx context.Context, playerName string) (int, bool)
	Clear(ctx context.Context)
}

// ChallengeService owns the daily challenge set and the completion streak.
type ChallengeService interface {
	Today(ctx context.Context) []models.DailyChallenge
	Complete(ctx context.Context, id string) bool
	ResetToday(ctx context.Context)
	Streak(ctx context.Context) int
	CheckStreak(ctx context.Context) int
}

// SettingsService owns the persisted audio preferences.
type SettingsService interface {
	Get(ctx context.Context) models.SoundSettings
	Update(ctx context.Context, update models.SoundSettingsUpdate) models.SoundSettings
}
