package scoring

import (
	"errors"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name          string
		timeRemaining int
		totalTime     int
		maxScore      int
		bonus         float64
		want          int
	}{
		{name: "Half Time Left", timeRemaining: 15, totalTime: 30, maxScore: 100, bonus: 1, want: 75},
		{name: "No Time Left", timeRemaining: 0, totalTime: 30, maxScore: 100, bonus: 1, want: 50},
		{name: "Full Time Left", timeRemaining: 30, totalTime: 30, maxScore: 100, bonus: 1, want: 100},
		{name: "Hard Multiplier", timeRemaining: 15, totalTime: 30, maxScore: 100, bonus: 2, want: 150},
		{name: "Medium Multiplier Floors", timeRemaining: 0, totalTime: 30, maxScore: 101, bonus: 1.5, want: 75},
		{name: "Small Max Score", timeRemaining: 10, totalTime: 60, maxScore: 10, bonus: 1, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Score(tt.timeRemaining, tt.totalTime, tt.maxScore, tt.bonus)
			if err != nil {
				t.Fatalf("Score returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreInvalidTotalTime(t *testing.T) {
	for _, totalTime := range []int{0, -5} {
		if _, err := Score(10, totalTime, 100, 1); !errors.Is(err, ErrInvalidTotalTime) {
			t.Errorf("Score with totalTime=%d: err = %v, want ErrInvalidTotalTime", totalTime, err)
		}
	}
}

func TestMemoryScore(t *testing.T) {
	tests := []struct {
		name         string
		moves        int
		optimalMoves int
		timeElapsed  int
		maxTime      int
		want         int
	}{
		// 12/20*100 = 60 efficiency, (120-60)/120*50 = 25 time bonus
		{name: "Typical Round", moves: 20, optimalMoves: 12, timeElapsed: 60, maxTime: 120, want: 85},
		// Perfect play at t=0: 100 + 50
		{name: "Perfect Instant", moves: 12, optimalMoves: 12, timeElapsed: 0, maxTime: 120, want: 150},
		// Over par time: time bonus clamps to 0
		{name: "Over Time", moves: 20, optimalMoves: 12, timeElapsed: 200, maxTime: 120, want: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MemoryScore(tt.moves, tt.optimalMoves, tt.timeElapsed, tt.maxTime)
			if err != nil {
				t.Fatalf("MemoryScore returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("MemoryScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMemoryScoreInvalidInputs(t *testing.T) {
	if _, err := MemoryScore(0, 12, 60, 120); !errors.Is(err, ErrInvalidMoves) {
		t.Errorf("moves=0: err = %v, want ErrInvalidMoves", err)
	}
	if _, err := MemoryScore(20, 12, 60, 0); !errors.Is(err, ErrInvalidTotalTime) {
		t.Errorf("maxTime=0: err = %v, want ErrInvalidTotalTime", err)
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{999, "999"},
		{1000, "1.0k"},
		{1500, "1.5k"},
		{999999, "1000.0k"},
		{2500000, "2.5M"},
		{0, "0"},
	}

	for _, tt := range tests {
		if got := FormatScore(tt.score); got != tt.want {
			t.Errorf("FormatScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestDifficultyMultiplier(t *testing.T) {
	tests := []struct {
		difficulty string
		want       float64
	}{
		{"easy", 1},
		{"medium", 1.5},
		{"hard", 2},
		{"nightmare", 1},
		{"", 1},
	}

	for _, tt := range tests {
		if got := DifficultyMultiplier(tt.difficulty); got != tt.want {
			t.Errorf("DifficultyMultiplier(%q) = %v, want %v", tt.difficulty, got, tt.want)
		}
	}
}

func TestScoreRating(t *testing.T) {
	tests := []struct {
		score int
		max   int
		want  string
	}{
		{95, 100, "Perfect!"},
		{80, 100, "Excellent!"},
		{70, 100, "Great!"},
		{60, 100, "Good!"},
		{50, 100, "Not bad!"},
		{10, 100, "Keep trying!"},
		{50, 0, "Keep trying!"},
	}

	for _, tt := range tests {
		if got := ScoreRating(tt.score, tt.max); got != tt.want {
			t.Errorf("ScoreRating(%d, %d) = %q, want %q", tt.score, tt.max, got, tt.want)
		}
	}
}

func TestLevelProgression(t *testing.T) {
	if got := LevelFromXP(0); got != 1 {
		t.Errorf("LevelFromXP(0) = %d, want 1", got)
	}
	if got := LevelFromXP(150); got != 2 {
		t.Errorf("LevelFromXP(150) = %d, want 2", got)
	}
	if got := XPToNextLevel(150); got != 50 {
		t.Errorf("XPToNextLevel(150) = %d, want 50", got)
	}
	if got := XPToNextLevel(0); got != 100 {
		t.Errorf("XPToNextLevel(0) = %d, want 100", got)
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{75, "1:15"},
		{600, "10:00"},
		{-4, "0:00"},
	}

	for _, tt := range tests {
		if got := FormatTime(tt.seconds); got != tt.want {
			t.Errorf("FormatTime(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
