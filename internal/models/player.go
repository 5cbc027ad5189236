package models

// BestScores holds the maximum single-session score per game type.
type BestScores struct {
	Drawing int `json:"drawing"`
	Gartic  int `json:"gartic"`
	Memory  int `json:"memory"`
}

// Get returns the best score for a game type, 0 for unknown types.
func (b BestScores) Get(gameType string) int {
	switch gameType {
	case GameDrawing:
		return b.Drawing
	case GameGartic:
		return b.Gartic
	case GameMemory:
		return b.Memory
	}
	return 0
}

// Set records a best score for a game type. Unknown types are ignored.
func (b *BestScores) Set(gameType string, score int) {
	switch gameType {
	case GameDrawing:
		b.Drawing = score
	case GameGartic:
		b.Gartic = score
	case GameMemory:
		b.Memory = score
	}
}

// PlayerStats is the single progression record for the local player profile.
// Level is always derived from TotalScore, never stored authoritatively.
type PlayerStats struct {
	PlayerName   string     `json:"playerName"`
	TotalScore   int        `json:"totalScore"`
	GamesPlayed  int        `json:"gamesPlayed"`
	Achievements []string   `json:"achievements"`
	Level        int        `json:"level"`
	BestScores   BestScores `json:"bestScores"`
}

// LevelForScore computes the level implied by a total score.
func LevelForScore(totalScore int) int {
	if totalScore < 0 {
		totalScore = 0
	}
	return totalScore/100 + 1
}

// DefaultPlayerStats returns the record used before any session is recorded.
func DefaultPlayerStats() PlayerStats {
	return PlayerStats{
		PlayerName:   "Player",
		TotalScore:   0,
		GamesPlayed:  0,
		Achievements: []string{},
		Level:        1,
	}
}

// HasAchievement reports set membership; insertion order is preserved elsewhere.
func (p *PlayerStats) HasAchievement(name string) bool {
	for _, a := range p.Achievements {
		if a == name {
			return true
		}
	}
	return false
}

// Sanitize clamps out-of-range values and re-derives invariants. Stored or
// imported JSON is never trusted as-is: negative counters reset to zero,
// duplicate achievements collapse to first occurrence, the level is always
// recomputed from the total score.
func (p *PlayerStats) Sanitize() {
	if p.PlayerName == "" {
		p.PlayerName = "Player"
	}
	if p.TotalScore < 0 {
		p.TotalScore = 0
	}
	if p.GamesPlayed < 0 {
		p.GamesPlayed = 0
	}
	if p.BestScores.Drawing < 0 {
		p.BestScores.Drawing = 0
	}
	if p.BestScores.Gartic < 0 {
		p.BestScores.Gartic = 0
	}
	if p.BestScores.Memory < 0 {
		p.BestScores.Memory = 0
	}

	deduped := make([]string, 0, len(p.Achievements))
	seen := make(map[string]struct{}, len(p.Achievements))
	for _, a := range p.Achievements {
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		deduped = append(deduped, a)
	}
	p.Achievements = deduped

	p.Level = LevelForScore(p.TotalScore)
}

// Snapshot extracts the fields propagated to the leaderboard after a session.
func (p *PlayerStats) Snapshot() PlayerSnapshot {
	return PlayerSnapshot{
		PlayerName: p.PlayerName,
		TotalScore: p.TotalScore,
		Level:      p.Level,
		BestScores: p.BestScores,
	}
}

// PlayerSnapshot is the subset of PlayerStats mirrored into leaderboard entries.
type PlayerSnapshot struct {
	PlayerName string     `json:"playerName"`
	TotalScore int        `json:"totalScore"`
	Level      int        `json:"level"`
	BestScores BestScores `json:"bestScores"`
}
