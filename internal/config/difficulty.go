package config

// DifficultyPreset represents a named gravity speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// IsValidPreset reports whether p names a known preset.
func IsValidPreset(p DifficultyPreset) bool {
	for _, known := range Presets {
		if p == known {
			return true
		}
	}
	return false
}

// IsFixedPreset returns true if the preset keeps the configured period.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed || preset == ""
}

// PeriodForPreset returns the gravity period in milliseconds for a preset,
// or 0 for fixed.
func PeriodForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1000
	case DifficultyNormal:
		return 600
	case DifficultyHard:
		return 300
	default:
		return 0
	}
}

// ApplyPreset sets the gravity period from a preset.
// The game speed never changes while playing.
func ApplyPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	cfg.Difficulty = preset
	if ms := PeriodForPreset(preset); ms > 0 {
		cfg.Gravity.PeriodMS = ms
	}
}
