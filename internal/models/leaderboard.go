package models

import "time"

// LeaderboardEntry is one ranked row, keyed by player name. Rank is filled in
// at read time from the requested ordering, not persisted.
type LeaderboardEntry struct {
	Rank        int        `json:"rank,omitempty"`
	PlayerName  string     `json:"playerName"`
	TotalScore  int        `json:"totalScore"`
	Level       int        `json:"level"`
	BestScores  BestScores `json:"bestScores"`
	LastUpdated time.Time  `json:"lastUpdated"`
}

// SampleLeaderboard returns the fixture entries seeded on first access so a
// fresh install has a board to rank against.
func SampleLeaderboard(now time.Time) []LeaderboardEntry {
	return []LeaderboardEntry{
		{
			PlayerName:  "GameMaster",
			TotalScore:  1250,
			Level:       13,
			BestScores:  BestScores{Drawing: 120, Gartic: 180, Memory: 150},
			LastUpdated: now,
		},
		{
			PlayerName:  "ArtistPro",
			TotalScore:  980,
			Level:       10,
			BestScores:  BestScores{Drawing: 200, Gartic: 150, Memory: 80},
			LastUpdated: now,
		},
		{
			PlayerName:  "MemoryKing",
			TotalScore:  850,
			Level:       9,
			BestScores:  BestScores{Drawing: 70, Gartic: 90, Memory: 220},
			LastUpdated: now,
		},
		{
			PlayerName:  "DrawMaster",
			TotalScore:  720,
			Level:       8,
			BestScores:  BestScores{Drawing: 180, Gartic: 60, Memory: 100},
			LastUpdated: now,
		},
		{
			PlayerName:  "GuessPro",
			TotalScore:  650,
			Level:       7,
			BestScores:  BestScores{Drawing: 50, Gartic: 190, Memory: 70},
			LastUpdated: now,
		},
	}
}
