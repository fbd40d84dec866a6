package routereport

import "time"

// Option is a functional option for configuring a Generate call.
type Option func(*reportConfig)

type reportConfig struct {
	title string
	now   func() time.Time
}

// WithTitle overrides the report title drawn at the top of the document.
func WithTitle(title string) Option {
	return func(c *reportConfig) {
		c.title = title
	}
}

// WithClock overrides the clock used for the generation timestamp and the
// date embedded in the artifact filename. Intended for tests and for batch
// runs that must stamp a reporting date other than today.
func WithClock(now func() time.Time) Option {
	return func(c *reportConfig) {
		c.now = now
	}
}
