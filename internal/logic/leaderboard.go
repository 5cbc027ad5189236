package logic

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gamehub/progression-api/internal/models"
	"github.com/gamehub/progression-api/internal/storage"
)

type leaderboardService struct {
	store  storage.Store
	logger *zap.SugaredLogger
	now    func() time.Time

	// Serializes load-merge-persist cycles. Upsert is reachable both through
	// the stats service and directly from snapshot imports, so concurrent
	// merges could otherwise drop each other's entries.
	mu sync.Mutex
}

// NewLeaderboardService builds the leaderboard over a key-value store. The
// collection is seeded with sample entries on first access.
func NewLeaderboardService(store storage.Store, logger *zap.Logger) LeaderboardService {
	return &leaderboardService{
		store:  store,
		logger: logger.Sugar(),
		now:    time.Now,
	}
}

// load returns the stored collection, seeding the samples when absent.
// Physical order is insertion order; sorting happens on read.
func (s *leaderboardService) load(ctx context.Context) []models.LeaderboardEntry {
	raw, err := s.store.Get(ctx, models.KeyLeaderboard)
	if err == nil {
		var entries []models.LeaderboardEntry
		if jsonErr := json.Unmarshal([]byte(raw), &entries); jsonErr == nil {
			return entries
		}
		s.logger.Warnw("Malformed leaderboard in storage, reseeding")
	} else if err != storage.ErrNotFound {
		s.logger.Warnw("Failed to load leaderboard", "error", err)
		return models.SampleLeaderboard(s.now())
	}

	entries := models.SampleLeaderboard(s.now())
	s.persist(ctx, entries)
	return entries
}

func (s *leaderboardService) persist(ctx context.Context, entries []models.LeaderboardEntry) {
	data, err := json.Marshal(entries)
	if err != nil {
		s.logger.Errorw("Failed to encode leaderboard", "error", err)
		return
	}
	if err := s.store.Set(ctx, models.KeyLeaderboard, string(data)); err != nil {
		s.logger.Errorw("Failed to save leaderboard", "error", err)
	}
}

// sorted returns a copy ordered by the requested key, descending. Ties keep
// their stored relative order.
func sorted(entries []models.LeaderboardEntry, sortBy string) []models.LeaderboardEntry {
	out := make([]models.LeaderboardEntry, len(entries))
	copy(out, entries)

	key := func(e models.LeaderboardEntry) int { return e.TotalScore }
	if models.ValidGameType(sortBy) {
		key = func(e models.LeaderboardEntry) int { return e.BestScores.Get(sortBy) }
	}

	sort.SliceStable(out, func(i, j int) bool { return key(out[i]) > key(out[j]) })
	return out
}

func (s *leaderboardService) GetAll(ctx context.Context, sortBy string) []models.LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := sorted(s.load(ctx), sortBy)
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func (s *leaderboardService) Upsert(ctx context.Context, snapshot models.PlayerSnapshot) {
	name := snapshot.PlayerName
	if name == "" {
		name = "Player"
	}
	if snapshot.TotalScore < 0 {
		snapshot.TotalScore = 0
	}
	if snapshot.Level < 1 {
		snapshot.Level = models.LevelForScore(snapshot.TotalScore)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load(ctx)

	found := false
	for i := range entries {
		if entries[i].PlayerName != name {
			continue
		}
		entries[i].TotalScore = snapshot.TotalScore
		entries[i].Level = snapshot.Level
		entries[i].BestScores = snapshot.BestScores
		entries[i].LastUpdated = s.now()
		found = true
		break
	}

	if !found {
		entries = append(entries, models.LeaderboardEntry{
			PlayerName:  name,
			TotalScore:  snapshot.TotalScore,
			Level:       snapshot.Level,
			BestScores:  snapshot.BestScores,
			LastUpdated: s.now(),
		})
	}

	s.persist(ctx, entries)
}

func (s *leaderboardService) Rank(ctx context.Context, playerName string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, entry := range sorted(s.load(ctx), "all") {
		if entry.PlayerName == playerName {
			return i + 1, true
		}
	}
	return 0, false
}

func (s *leaderboardService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, models.KeyLeaderboard); err != nil {
		s.logger.Errorw("Failed to clear leaderboard", "error", err)
	}
}
