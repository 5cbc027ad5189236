package handlers

import (
	"context"

	"github.com/gamehub/progression-api/internal/models"
)

// MockPlayerStatsService implements logic.PlayerStatsService with function fields.
type MockPlayerStatsService struct {
	GetFunc           func(ctx context.Context) models.PlayerStats
	RecordSessionFunc func(ctx context.Context, scoreToAdd int, gameType string) models.PlayerStats
	SetPlayerNameFunc func(ctx context.Context, name string) models.PlayerStats
	ResetFunc         func(ctx context.Context)
	ExportFunc        func(ctx context.Context) (string, error)
	ImportFunc        func(ctx context.Context, data string) bool
}

func (m *MockPlayerStatsService) Get(ctx context.Context) models.PlayerStats {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return models.DefaultPlayerStats()
}

func (m *MockPlayerStatsService) RecordSession(ctx context.Context, scoreToAdd int, gameType string) models.PlayerStats {
	if m.RecordSessionFunc != nil {
		return m.RecordSessionFunc(ctx, scoreToAdd, gameType)
	}
	return models.DefaultPlayerStats()
}

func (m *MockPlayerStatsService) SetPlayerName(ctx context.Context, name string) models.PlayerStats {
	if m.SetPlayerNameFunc != nil {
		return m.SetPlayerNameFunc(ctx, name)
	}
	return models.DefaultPlayerStats()
}

func (m *MockPlayerStatsService) Reset(ctx context.Context) {
	if m.ResetFunc != nil {
		m.ResetFunc(ctx)
	}
}

func (m *MockPlayerStatsService) Export(ctx context.Context) (string, error) {
	if m.ExportFunc != nil {
		return m.ExportFunc(ctx)
	}
	return "{}", nil
}

func (m *MockPlayerStatsService) Import(ctx context.Context, data string) bool {
	if m.ImportFunc != nil {
		return m.ImportFunc(ctx, data)
	}
	return true
}

// MockLeaderboardService implements logic.LeaderboardService.
type MockLeaderboardService struct {
	GetAllFunc func(ctx context.Context, sortBy string) []models.LeaderboardEntry
	UpsertFunc func(ctx context.Context, snapshot models.PlayerSnapshot)
	RankFunc   func(ctx context.Context, playerName string) (int, bool)
	ClearFunc  func(ctx context.Context)
}

func (m *MockLeaderboardService) GetAll(ctx context.Context, sortBy string) []models.LeaderboardEntry {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx, sortBy)
	}
	return nil
}

func (m *MockLeaderboardService) Upsert(ctx context.Context, snapshot models.PlayerSnapshot) {
	if m.UpsertFunc != nil {
		m.UpsertFunc(ctx, snapshot)
	}
}

func (m *MockLeaderboardService) Rank(ctx context.Context, playerName string) (int, bool) {
	if m.RankFunc != nil {
		return m.RankFunc(ctx, playerName)
	}
	return 0, false
}

func (m *MockLeaderboardService) Clear(ctx context.Context) {
	if m.ClearFunc != nil {
		m.ClearFunc(ctx)
	}
}

// MockChallengeService implements logic.ChallengeService.
type MockChallengeService struct {
	TodayFunc       func(ctx context.Context) []models.DailyChallenge
	CompleteFunc    func(ctx context.Context, id string) bool
	ResetTodayFunc  func(ctx context.Context)
	StreakFunc      func(ctx context.Context) int
	CheckStreakFunc func(ctx context.Context) int
}

func (m *MockChallengeService) Today(ctx context.Context) []models.DailyChallenge {
	if m.TodayFunc != nil {
		return m.TodayFunc(ctx)
	}
	return nil
}

func (m *MockChallengeService) Complete(ctx context.Context, id string) bool {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, id)
	}
	return false
}

func (m *MockChallengeService) ResetToday(ctx context.Context) {
	if m.ResetTodayFunc != nil {
		m.ResetTodayFunc(ctx)
	}
}

func (m *MockChallengeService) Streak(ctx context.Context) int {
	if m.StreakFunc != nil {
		return m.StreakFunc(ctx)
	}
	return 0
}

func (m *MockChallengeService) CheckStreak(ctx context.Context) int {
	if m.CheckStreakFunc != nil {
		return m.CheckStreakFunc(ctx)
	}
	return 0
}

// MockSettingsService implements logic.SettingsService.
type MockSettingsService struct {
	GetFunc    func(ctx context.Context) models.SoundSettings
	UpdateFunc func(ctx context.Context, update models.SoundSettingsUpdate) models.SoundSettings
}

func (m *MockSettingsService) Get(ctx context.Context) models.SoundSettings {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return models.DefaultSoundSettings()
}

func (m *MockSettingsService) Update(ctx context.Context, update models.SoundSettingsUpdate) models.SoundSettings {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, update)
	}
	return models.DefaultSoundSettings()
}

// MockFeed implements NotificationFeed.
type MockFeed struct {
	RecentFunc func(limit int) []models.Notification
}

func (m *MockFeed) Recent(limit int) []models.Notification {
	if m.RecentFunc != nil {
		return m.RecentFunc(limit)
	}
	return nil
}
