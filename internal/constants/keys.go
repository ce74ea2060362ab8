package constants

// Persisted key space. Keys are shared with the original mobile release of
// the app, so renaming any of them breaks data carried over by users.
const (
	// ScheduleItemsKey holds the full schedule collection as one JSON array.
	ScheduleItemsKey = "ScheduleItems"

	// Profile keys
	ProfileBreedKey  = "profile_breed"
	ProfileNameKey   = "profile_name"
	ProfileAgeKey    = "profile_age"
	ProfileGenderKey = "profile_gender"

	// Navigation / app-level keys
	OnboardingDoneKey = "didFinishOnboarding"
	SoundEnabledKey   = "soundEnabled"
)
