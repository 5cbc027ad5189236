package logic

import (
	"context"
	"sync"

	"github.com/gamehub/progression-api/internal/models"
)

// RecordingNotifier captures notifications for assertions.
type RecordingNotifier struct {
	mu     sync.Mutex
	Events []struct {
		Kind, Title, Message string
	}
}

func (n *RecordingNotifier) Notify(kind, title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Events = append(n.Events, struct{ Kind, Title, Message string }{kind, title, message})
}

func (n *RecordingNotifier) Count(kind string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	count := 0
	for _, e := range n.Events {
		if e.Kind == kind {
			count++
		}
	}
	return count
}

func (n *RecordingNotifier) Titles(kind string) []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	var titles []string
	for _, e := range n.Events {
		if e.Kind == kind {
			titles = append(titles, e.Title)
		}
	}
	return titles
}

// MockLeaderboardService records upserts without persistence.
type MockLeaderboardService struct {
	UpsertFunc func(ctx context.Context, snapshot models.PlayerSnapshot)
	Upserts    []models.PlayerSnapshot
}

func (m *MockLeaderboardService) GetAll(ctx context.Context, sortBy string) []models.LeaderboardEntry {
	return nil
}

func (m *MockLeaderboardService) Upsert(ctx context.Context, snapshot models.PlayerSnapshot) {
	m.Upserts = append(m.Upserts, snapshot)
	if m.UpsertFunc != nil {
		m.UpsertFunc(ctx, snapshot)
	}
}

func (m *MockLeaderboardService) Rank(ctx context.Context, playerName string) (int, bool) {
	return 0, false
}

func (m *MockLeaderboardService) Clear(ctx context.Context) {}
