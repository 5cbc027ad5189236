package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gamehub/progression-api/internal/models"
	"github.com/gamehub/progression-api/internal/storage"
)

const dateLayout = "2006-01-02"

// dailyRand is the seeded pseudo-random stream used to pick challenge
// templates. The same calendar date always yields the same draws, on any
// machine, which is what keeps the daily set deterministic.
type dailyRand struct {
	seed float64
}

// newDailyRand seeds from a calendar date: year*10000 + month*100 + day.
func newDailyRand(t time.Time) *dailyRand {
	return &dailyRand{seed: float64(t.Year()*10000 + int(t.Month())*100 + t.Day())}
}

// next returns a value in [0, 1). Each call consumes one seed step, so draw
// order matters.
func (r *dailyRand) next() float64 {
	x := math.Sin(r.seed) * 10000
	r.seed++
	return x - math.Floor(x)
}

// intn returns an index in [0, n).
func (r *dailyRand) intn(n int) int {
	return int(math.Floor(r.next() * float64(n)))
}

type challengeService struct {
	store    storage.Store
	notifier Notifier
	logger   *zap.SugaredLogger
	now      func() time.Time

	// Serializes read-modify-write cycles within this process. Two overlapping
	// completes of the final challenge must not both observe it open and
	// advance the streak twice.
	mu sync.Mutex
}

// NewChallengeService builds the daily challenge generator and streak tracker.
func NewChallengeService(store storage.Store, notifier Notifier, logger *zap.Logger) ChallengeService {
	return &challengeService{
		store:    store,
		notifier: notifier,
		logger:   logger.Sugar(),
		now:      time.Now,
	}
}

// generate derives today's three challenges. Draw order is fixed: drawing
// first, then gartic, then memory — each draw consumes one seed step.
func generate(today time.Time) []models.DailyChallenge {
	date := today.Format(dateLayout)
	rng := newDailyRand(today)

	build := func(gameType string, templates []models.ChallengeTemplate) models.DailyChallenge {
		idx := rng.intn(len(templates))
		tpl := templates[idx]
		return models.DailyChallenge{
			ID:          fmt.Sprintf("%s-%s-%d", gameType, date, idx),
			Title:       tpl.Title,
			Description: tpl.Description,
			Type:        gameType,
			Points:      tpl.Points,
			GameLink:    models.GameLink(gameType),
			Completed:   false,
		}
	}

	return []models.DailyChallenge{
		build(models.GameDrawing, models.DrawingChallenges),
		build(models.GameGartic, models.GarticChallenges),
		build(models.GameMemory, models.MemoryChallenges),
	}
}

func (s *challengeService) persist(ctx context.Context, date string, challenges []models.DailyChallenge) {
	data, err := json.Marshal(challenges)
	if err != nil {
		s.logger.Errorw("Failed to encode challenges", "error", err)
		return
	}
	if err := s.store.Set(ctx, models.KeyChallengeDate, date); err != nil {
		s.logger.Errorw("Failed to save challenge date", "error", err)
	}
	if err := s.store.Set(ctx, models.KeyDailyChallenges, string(data)); err != nil {
		s.logger.Errorw("Failed to save challenges", "error", err)
	}
}

// Today returns the cached set when it is still from today's date (completion
// flags intact), regenerating and re-caching otherwise.
func (s *challengeService) Today(ctx context.Context) []models.DailyChallenge {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.today(ctx)
}

// today is Today without the lock, for callers already holding it.
func (s *challengeService) today(ctx context.Context) []models.DailyChallenge {
	today := s.now().Format(dateLayout)

	storedDate, dateErr := s.store.Get(ctx, models.KeyChallengeDate)
	storedSet, setErr := s.store.Get(ctx, models.KeyDailyChallenges)

	if dateErr == nil && setErr == nil && storedDate == today {
		var challenges []models.DailyChallenge
		if err := json.Unmarshal([]byte(storedSet), &challenges); err == nil && len(challenges) > 0 {
			return challenges
		}
		s.logger.Warnw("Malformed cached challenges, regenerating")
	}

	challenges := generate(s.now())
	s.persist(ctx, today, challenges)
	return challenges
}

// Complete marks the named challenge done. Repeat calls are no-ops. When the
// call completes the last open challenge of the day, the streak advances and
// today is recorded as the last full-completion date.
func (s *challengeService) Complete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenges := s.today(ctx)

	idx := -1
	for i := range challenges {
		if challenges[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}
	if challenges[idx].Completed {
		return true
	}

	challenges[idx].Completed = true
	s.persist(ctx, s.now().Format(dateLayout), challenges)

	s.notifier.Notify(models.NotifyChallenge, challenges[idx].Title,
		fmt.Sprintf("Challenge complete: +%d points", challenges[idx].Points))

	allDone := true
	for i := range challenges {
		if !challenges[i].Completed {
			allDone = false
			break
		}
	}
	if allDone {
		streak := s.readStreak(ctx) + 1
		s.writeStreak(ctx, streak)
		if err := s.store.Set(ctx, models.KeyLastCompletionDate, s.now().Format(dateLayout)); err != nil {
			s.logger.Errorw("Failed to save completion date", "error", err)
		}
		s.notifier.Notify(models.NotifyChallenge, "All Challenges Complete",
			fmt.Sprintf("Daily streak: %d", streak))
		s.logger.Infow("Daily challenges completed", "streak", streak)
	}

	return true
}

// ResetToday drops the cached set and date so the next read regenerates.
func (s *challengeService) ResetToday(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, models.KeyDailyChallenges); err != nil {
		s.logger.Errorw("Failed to reset challenges", "error", err)
	}
	if err := s.store.Delete(ctx, models.KeyChallengeDate); err != nil {
		s.logger.Errorw("Failed to reset challenge date", "error", err)
	}
}

func (s *challengeService) readStreak(ctx context.Context) int {
	raw, err := s.store.Get(ctx, models.KeyChallengeStreak)
	if err != nil {
		return 0
	}
	streak, err := strconv.Atoi(raw)
	if err != nil || streak < 0 {
		return 0
	}
	return streak
}

func (s *challengeService) writeStreak(ctx context.Context, streak int) {
	if err := s.store.Set(ctx, models.KeyChallengeStreak, strconv.Itoa(streak)); err != nil {
		s.logger.Errorw("Failed to save streak", "error", err)
	}
}

func (s *challengeService) Streak(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readStreak(ctx)
}

// CheckStreak resets the counter when more than one calendar day has elapsed
// since the last full completion. It is an explicit maintenance operation:
// reads of Streak do not invoke it.
func (s *challengeService) CheckStreak(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	lastRaw, err := s.store.Get(ctx, models.KeyLastCompletionDate)
	if err != nil {
		return s.readStreak(ctx)
	}

	last, parseErr := time.Parse(dateLayout, lastRaw)
	if parseErr != nil {
		s.logger.Warnw("Malformed completion date, resetting streak", "value", lastRaw)
		s.writeStreak(ctx, 0)
		return 0
	}

	today, _ := time.Parse(dateLayout, s.now().Format(dateLayout))
	gapDays := int(today.Sub(last).Hours() / 24)

	if gapDays > 1 || gapDays < 0 {
		s.writeStreak(ctx, 0)
		return 0
	}
	return s.readStreak(ctx)
}
