package humanize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// plain always skips the "ver'" prefix; stylised always takes it.
func plain() *Formatter    { return NewWithRand(func() float64 { return 0.99 }) }
func stylised() *Formatter { return NewWithRand(func() float64 { return 0.0 }) }

func TestDurationTwoCoarsestUnits(t *testing.T) {
	f := plain()

	tests := []struct {
		name string
		ms   int64
		want string
	}{
		{name: "milliseconds only", ms: 125, want: "125 milliseconds"},
		{name: "single millisecond", ms: 1, want: "1 millisecond"},
		{name: "zero", ms: 0, want: "0 milliseconds"},
		{name: "seconds and milliseconds", ms: 1125, want: "1 second and 125 milliseconds"},
		{name: "exact second", ms: 2000, want: "2 seconds"},
		{name: "minutes and seconds", ms: 61000, want: "1 minute and 1 second"},
		{name: "third unit is dropped", ms: 61125, want: "1 minute and 1 second"},
		{name: "skips a zero unit in between", ms: 60*1000 + 125, want: "1 minute and 125 milliseconds"},
		{name: "hours", ms: 2*60*60*1000 + 30*60*1000, want: "2 hours and 30 minutes"},
		{name: "days", ms: 26 * 60 * 60 * 1000, want: "1 day and 2 hours"},
		{name: "years", ms: 366 * 24 * 60 * 60 * 1000, want: "1 year and 1 day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Duration(tt.ms))
		})
	}
}

func TestDurationVerMilliseconds(t *testing.T) {
	f := stylised()

	assert.Equal(t, "125 ver' milliseconds", f.Duration(125))
	assert.Equal(t, "1 ver' millisecond", f.Duration(1))

	// Only the millisecond label is stylised.
	assert.Equal(t, "2 seconds", f.Duration(2000))
	assert.Equal(t, "1 second and 125 ver' milliseconds", f.Duration(1125))
}

func TestDurationLabelIsNonDeterministic(t *testing.T) {
	f := New()

	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		seen[f.Duration(125)] = true
	}

	// Whatever the rolls were, only the two known labels may appear.
	for got := range seen {
		assert.Contains(t, []string{"125 milliseconds", "125 ver' milliseconds"}, got)
	}
	assert.Len(t, seen, 2, "both labels should show up across 500 rolls")
}
