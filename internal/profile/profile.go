// Package profile covers the screens around the core calendar: the pet
// profile fields, the mood trend graph, the onboarding gate and the sound
// setting. All of it is plain key-value state.
package profile

import (
	"fmt"

	"github.com/hamcare-app/hamcare/internal/checklist"
	"github.com/hamcare-app/hamcare/internal/constants"
	"github.com/hamcare-app/hamcare/internal/models"
	"github.com/hamcare-app/hamcare/internal/storage"
)

// MoodTrendSamples is the fixed width of the mood graph.
const MoodTrendSamples = 30

// Load reads the stored profile; missing fields read as empty strings.
func Load(kv storage.KV) models.Profile {
	var p models.Profile
	p.Breed, _ = kv.GetString(constants.ProfileBreedKey)
	p.Name, _ = kv.GetString(constants.ProfileNameKey)
	p.Age, _ = kv.GetString(constants.ProfileAgeKey)
	p.Gender, _ = kv.GetString(constants.ProfileGenderKey)
	return p
}

// Save persists every profile field.
func Save(kv storage.KV, p models.Profile) error {
	fields := []struct {
		key   string
		value string
	}{
		{constants.ProfileBreedKey, p.Breed},
		{constants.ProfileNameKey, p.Name},
		{constants.ProfileAgeKey, p.Age},
		{constants.ProfileGenderKey, p.Gender},
	}
	for _, f := range fields {
		if err := kv.SetString(f.key, f.value); err != nil {
			return fmt.Errorf("failed to save profile field %s: %w", f.key, err)
		}
	}
	return nil
}

// MoodTrend derives the profile graph's sample points from the daily
// checklist's persisted mood: nice sits high, bad low, unset flat at zero.
func MoodTrend(kv storage.KV) []float64 {
	points := make([]float64, MoodTrendSamples)

	raw, ok := kv.GetInt(checklist.Daily.KeyPrefix + ".mood")
	if !ok {
		return points
	}

	var base float64
	switch models.Mood(raw) {
	case models.MoodNice:
		base = 0.9
	case models.MoodGood:
		base = 0.5
	case models.MoodBad:
		base = 0.2
	default:
		base = 0.5
	}

	for i := range points {
		points[i] = base
	}
	return points
}

// FinishedOnboarding reports whether the welcome flow has already run.
func FinishedOnboarding(kv storage.KV) bool {
	done, _ := kv.GetBool(constants.OnboardingDoneKey)
	return done
}

// MarkOnboardingDone records that the welcome flow has been shown.
func MarkOnboardingDone(kv storage.KV) error {
	return kv.SetBool(constants.OnboardingDoneKey, true)
}

// SoundEnabled reports the sound setting; it defaults to on until the user
// first toggles it.
func SoundEnabled(kv storage.KV) bool {
	if !kv.Has(constants.SoundEnabledKey) {
		return true
	}
	enabled, _ := kv.GetBool(constants.SoundEnabledKey)
	return enabled
}

// SetSoundEnabled persists the sound setting.
func SetSoundEnabled(kv storage.KV, enabled bool) error {
	return kv.SetBool(constants.SoundEnabledKey, enabled)
}
