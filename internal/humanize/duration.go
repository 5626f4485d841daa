// Package humanize renders millisecond durations as short human
// sentences for the result footer, e.g. "1 minute and 12 seconds" or
// "125 ver' milliseconds".
package humanize

import (
	"math/rand"
	"strconv"
)

// verChance is the probability that the millisecond label gets the
// stylised "ver'" prefix. A presentation flourish carried over from the
// original site; it stays non-deterministic on purpose.
const verChance = 0.6

type unit struct {
	label  string
	millis int64
}

// Unit table from coarsest to finest. Query latency is sub-minute in
// practice, but coarser units are kept for robustness.
var units = []unit{
	{label: "year", millis: 365 * 24 * 60 * 60 * 1000},
	{label: "day", millis: 24 * 60 * 60 * 1000},
	{label: "hour", millis: 60 * 60 * 1000},
	{label: "minute", millis: 60 * 1000},
	{label: "second", millis: 1000},
	{label: "millisecond", millis: 1},
}

// Formatter renders durations. The zero value is not usable; call New.
type Formatter struct {
	// roll returns a value in [0, 1) deciding the millisecond label.
	roll func() float64
}

// New creates a formatter using the package-level rand source.
func New() *Formatter {
	return &Formatter{roll: rand.Float64}
}

// NewWithRand creates a formatter with an injected randomness source,
// so tests can pin the millisecond label.
func NewWithRand(roll func() float64) *Formatter {
	return &Formatter{roll: roll}
}

// Duration renders ms as the two coarsest non-zero unit components,
// joined with "and". Unit labels take an "s" unless the count is
// exactly 1.
func (f *Formatter) Duration(ms int64) string {
	parts := make([]string, 0, 2)
	remaining := ms
	for _, u := range units {
		count := remaining / u.millis
		remaining -= count * u.millis
		if count == 0 {
			continue
		}
		parts = append(parts, f.component(count, u.label))
		if len(parts) == 2 {
			break
		}
	}
	if len(parts) == 0 {
		return f.component(0, "millisecond")
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return parts[0] + " and " + parts[1]
}

func (f *Formatter) component(count int64, label string) string {
	if label == "millisecond" && f.roll() < verChance {
		label = "ver' millisecond"
	}
	if count != 1 {
		label += "s"
	}
	return strconv.FormatInt(count, 10) + " " + label
}
