package logic

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/gamehub/progression-api/internal/models"
	"github.com/gamehub/progression-api/internal/storage"
)

type settingsService struct {
	store    storage.Store
	notifier Notifier
	logger   *zap.SugaredLogger
}

// NewSettingsService builds the audio preferences service. The notifier plays
// a test click when sound is switched on.
func NewSettingsService(store storage.Store, notifier Notifier, logger *zap.Logger) SettingsService {
	return &settingsService{
		store:    store,
		notifier: notifier,
		logger:   logger.Sugar(),
	}
}

func (s *settingsService) Get(ctx context.Context) models.SoundSettings {
	settings := models.DefaultSoundSettings()

	raw, err := s.store.Get(ctx, models.KeySoundSettings)
	if err != nil {
		if err != storage.ErrNotFound {
			s.logger.Warnw("Failed to load sound settings, using defaults", "error", err)
		}
		return settings
	}

	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		s.logger.Warnw("Malformed sound settings in storage, using defaults", "error", err)
		return models.DefaultSoundSettings()
	}

	settings.Sanitize()
	return settings
}

func (s *settingsService) Update(ctx context.Context, update models.SoundSettingsUpdate) models.SoundSettings {
	settings := s.Get(ctx)
	update.Apply(&settings)
	settings.Sanitize()

	data, err := json.Marshal(settings)
	if err != nil {
		s.logger.Errorw("Failed to encode sound settings", "error", err)
		return settings
	}
	if err := s.store.Set(ctx, models.KeySoundSettings, string(data)); err != nil {
		s.logger.Errorw("Failed to save sound settings", "error", err)
	}

	if update.SoundEnabled != nil && *update.SoundEnabled {
		s.notifier.Notify(models.NotifySound, "click", "Sound enabled")
	}

	return settings
}
