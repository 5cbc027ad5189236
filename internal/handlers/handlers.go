package handlers

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/gamehub/progression-api/internal/logic"
	"github.com/gamehub/progression-api/internal/models"
	"github.com/gamehub/progression-api/internal/storage"
	"github.com/gamehub/progression-api/internal/words"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// NotificationFeed exposes recently emitted notifications.
type NotificationFeed interface {
	Recent(limit int) []models.Notification
}

type Config struct {
	Store  storage.Store
	Feed   NotificationFeed
	Words  *words.Picker
	Logger *zap.Logger
	// Services
	PlayerStats logic.PlayerStatsService
	Leaderboard logic.LeaderboardService
	Challenges  logic.ChallengeService
	Settings    logic.SettingsService
}

type Handler struct {
	store       storage.Store
	feed        NotificationFeed
	words       *words.Picker
	logger      *zap.SugaredLogger
	validator   *validator.Validate
	playerStats logic.PlayerStatsService
	leaderboard logic.LeaderboardService
	challenges  logic.ChallengeService
	settings    logic.SettingsService
}

func New(cfg Config) *Handler {
	return &Handler{
		store:       cfg.Store,
		feed:        cfg.Feed,
		words:       cfg.Words,
		logger:      cfg.Logger.Sugar(),
		validator:   validator.New(),
		playerStats: cfg.PlayerStats,
		leaderboard: cfg.Leaderboard,
		challenges:  cfg.Challenges,
		settings:    cfg.Settings,
	}
}
