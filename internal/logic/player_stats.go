package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/gamehub/progression-api/internal/models"
	"github.com/gamehub/progression-api/internal/scoring"
	"github.com/gamehub/progression-api/internal/storage"
)

// achievementRule is a one-shot unlock condition checked after every session.
type achievementRule struct {
	name  string
	check func(s *models.PlayerStats) bool
}

// Evaluated in this order; each fires at most once per profile.
var achievementRules = []achievementRule{
	{name: "First Steps", check: func(s *models.PlayerStats) bool { return s.GamesPlayed >= 1 }},
	{name: "Score Hunter", check: func(s *models.PlayerStats) bool { return s.TotalScore >= 100 }},
	{name: "Game Master", check: func(s *models.PlayerStats) bool { return s.GamesPlayed >= 3 }},
	{name: "High Scorer", check: func(s *models.PlayerStats) bool { return s.TotalScore >= 500 }},
}

type playerStatsService struct {
	store       storage.Store
	leaderboard LeaderboardService
	notifier    Notifier
	logger      *zap.SugaredLogger

	// Serializes read-modify-write cycles within this process. Storage has no
	// transactions, so without this two rapid sessions could both read the
	// same prior total and the later write would clobber the earlier delta.
	mu sync.Mutex
}

// NewPlayerStatsService builds the progression service. leaderboard receives a
// snapshot after every persisted mutation; notifier fires on unlocks.
func NewPlayerStatsService(store storage.Store, leaderboard LeaderboardService, notifier Notifier, logger *zap.Logger) PlayerStatsService {
	return &playerStatsService{
		store:       store,
		leaderboard: leaderboard,
		notifier:    notifier,
		logger:      logger.Sugar(),
	}
}

// load reads the stored record, degrading to defaults on any failure.
func (s *playerStatsService) load(ctx context.Context) models.PlayerStats {
	stats := models.DefaultPlayerStats()

	raw, err := s.store.Get(ctx, models.KeyPlayerStats)
	if err != nil {
		if err != storage.ErrNotFound {
			s.logger.Warnw("Failed to load player stats, using defaults", "error", err)
		}
		return stats
	}

	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		s.logger.Warnw("Malformed player stats in storage, using defaults", "error", err)
		return models.DefaultPlayerStats()
	}

	stats.Sanitize()
	return stats
}

// persist writes the record. Failures are logged, never surfaced.
func (s *playerStatsService) persist(ctx context.Context, stats models.PlayerStats) {
	data, err := json.Marshal(stats)
	if err != nil {
		s.logger.Errorw("Failed to encode player stats", "error", err)
		return
	}
	if err := s.store.Set(ctx, models.KeyPlayerStats, string(data)); err != nil {
		s.logger.Errorw("Failed to save player stats", "error", err)
	}
}

func (s *playerStatsService) Get(ctx context.Context) models.PlayerStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *playerStatsService) RecordSession(ctx context.Context, scoreToAdd int, gameType string) models.PlayerStats {
	if scoreToAdd < 0 {
		scoreToAdd = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.load(ctx)
	prevLevel := stats.Level

	stats.TotalScore += scoreToAdd
	stats.GamesPlayed++
	stats.Level = models.LevelForScore(stats.TotalScore)

	if gameType != "" && scoreToAdd > stats.BestScores.Get(gameType) {
		stats.BestScores.Set(gameType, scoreToAdd)
	}

	for _, rule := range achievementRules {
		if stats.HasAchievement(rule.name) || !rule.check(&stats) {
			continue
		}
		stats.Achievements = append(stats.Achievements, rule.name)
		s.notifier.Notify(models.NotifyAchievement, rule.name, "Achievement unlocked: "+rule.name)
		s.logger.Infow("Achievement unlocked", "achievement", rule.name, "player", stats.PlayerName)
	}

	if stats.Level > prevLevel {
		s.notifier.Notify(models.NotifyLevelUp, "Level Up",
			fmt.Sprintf("Reached level %d (%s to next)", stats.Level, scoring.FormatScore(scoring.XPToNextLevel(stats.TotalScore))))
	}

	s.persist(ctx, stats)
	s.leaderboard.Upsert(ctx, stats.Snapshot())

	s.logger.Infow("Session recorded",
		"score", scoreToAdd,
		"gameType", gameType,
		"totalScore", stats.TotalScore,
		"gamesPlayed", stats.GamesPlayed,
		"level", stats.Level,
	)

	return stats
}

func (s *playerStatsService) SetPlayerName(ctx context.Context, name string) models.PlayerStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.load(ctx)
	if name != "" {
		stats.PlayerName = name
	}
	s.persist(ctx, stats)
	s.leaderboard.Upsert(ctx, stats.Snapshot())
	return stats
}

func (s *playerStatsService) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, models.KeyPlayerStats); err != nil {
		s.logger.Errorw("Failed to reset player stats", "error", err)
	}
}

// Export emits the full record as pretty-printed JSON.
func (s *playerStatsService) Export(ctx context.Context) (string, error) {
	s.mu.Lock()
	stats := s.load(ctx)
	s.mu.Unlock()

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return "", fmt.Errorf("export player stats: %w", err)
	}
	return string(data), nil
}

// Import replaces the stored record with the given snapshot. The payload must
// be valid JSON; it is sanitized before the overwrite so a hand-edited file
// cannot plant negative totals or a mismatched level.
func (s *playerStatsService) Import(ctx context.Context, data string) bool {
	var stats models.PlayerStats
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		s.logger.Warnw("Rejected snapshot import", "error", err)
		return false
	}
	stats.Sanitize()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.persist(ctx, stats)
	s.leaderboard.Upsert(ctx, stats.Snapshot())
	return true
}
