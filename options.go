package chance

import "github.com/rs/zerolog"

// Option configures a Chance created by New.
type Option func(*settings)

type settings struct {
	seed        any
	seeded      bool
	logger      zerolog.Logger
	maxAttempts int
	defaultSets bool
}

func defaultSettings() settings {
	return settings{
		logger:      zerolog.Nop(),
		defaultSets: true,
	}
}

// WithSeed seeds the engine with any number-compatible value. Without it,
// New seeds from system entropy; SeedValue reports the seed either way.
func WithSeed(value any) Option {
	return func(s *settings) {
		s.seed = value
		s.seeded = true
	}
}

// WithLogger sets the logger used for seeding and exhaustion events.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithMaxAttempts caps generator calls made by Unique and UniqueBy.
// Values below 1 keep the default cap.
func WithMaxAttempts(n int) Option {
	return func(s *settings) {
		s.maxAttempts = n
	}
}

// WithoutDefaultSets starts with an empty data set registry.
func WithoutDefaultSets() Option {
	return func(s *settings) {
		s.defaultSets = false
	}
}
