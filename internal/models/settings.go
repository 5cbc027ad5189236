package models

// SoundSettings is the persisted audio preferences blob. Volumes are 0-100.
type SoundSettings struct {
	SoundEnabled bool `json:"soundEnabled"`
	SoundVolume  int  `json:"soundVolume"`
	MusicEnabled bool `json:"musicEnabled"`
	MusicVolume  int  `json:"musicVolume"`
}

// DefaultSoundSettings matches a fresh install.
func DefaultSoundSettings() SoundSettings {
	return SoundSettings{
		SoundEnabled: true,
		SoundVolume:  80,
		MusicEnabled: true,
		MusicVolume:  60,
	}
}

// Sanitize clamps volumes into range.
func (s *SoundSettings) Sanitize() {
	s.SoundVolume = clampVolume(s.SoundVolume)
	s.MusicVolume = clampVolume(s.MusicVolume)
}

func clampVolume(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// SoundSettingsUpdate is a partial update; nil fields keep the stored value.
type SoundSettingsUpdate struct {
	SoundEnabled *bool `json:"soundEnabled,omitempty"`
	SoundVolume  *int  `json:"soundVolume,omitempty" validate:"omitempty,gte=0,lte=100"`
	MusicEnabled *bool `json:"musicEnabled,omitempty"`
	MusicVolume  *int  `json:"musicVolume,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// Apply merges the update over s field-wise.
func (u SoundSettingsUpdate) Apply(s *SoundSettings) {
	if u.SoundEnabled != nil {
		s.SoundEnabled = *u.SoundEnabled
	}
	if u.SoundVolume != nil {
		s.SoundVolume = *u.SoundVolume
	}
	if u.MusicEnabled != nil {
		s.MusicEnabled = *u.MusicEnabled
	}
	if u.MusicVolume != nil {
		s.MusicVolume = *u.MusicVolume
	}
}
