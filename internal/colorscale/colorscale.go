// Package colorscale maps entry sizes and ages onto color positions.
//
// A Context is built in a single pass over every entry that will be
// displayed, because bucket boundaries depend on the global minimum and
// maximum. Renderers only read it.
package colorscale

import (
	"math"
	"time"

	"github.com/harrison/arbor/internal/config"
	"github.com/harrison/arbor/internal/models"
)

// FixedBuckets is the number of discrete buckets in fixed mode
const FixedBuckets = 4

// Midpoint is the gradient position used when every value is identical
const Midpoint = 0.5

// Range is the observed [Min, Max] of one field. Valid is false when no entry had a value.
type Range struct {
	Min   float64
	Max   float64
	Valid bool
}

func (r *Range) observe(v float64) {
	if !r.Valid {
		r.Min, r.Max, r.Valid = v, v, true
		return
	}
	r.Min = math.Min(r.Min, v)
	r.Max = math.Max(r.Max, v)
}

// Degenerate reports whether every observed value was the same
func (r Range) Degenerate() bool {
	return r.Min == r.Max
}

// Scale is the color assignment for one field of one entry.
// Valid is false for absent values, which render with the neutral color.
type Scale struct {
	Valid    bool
	Bucket   int     // 0..FixedBuckets-1, low values first
	Position float64 // 0..1 along the gradient ramp
	AtMin    bool    // value equals the global minimum
	AtMax    bool    // value equals the global maximum
}

// Context holds the global extrema for every scaled field
type Context struct {
	fields config.ScaleField
	mode   config.ScaleMode
	now    time.Time
	size   Range
	age    Range
}

// Build scans entries once and records the extrema of each scaled field.
// Entries with read errors and absent sizes are left out of the extrema.
func Build(entries []*models.Entry, fields config.ScaleField, mode config.ScaleMode, now time.Time) *Context {
	ctx := &Context{fields: fields, mode: mode, now: now}
	if fields == config.ScaleNone {
		return ctx
	}

	for _, e := range entries {
		if fields.Sizes() {
			if v, ok := sizeValue(e); ok {
				ctx.size.observe(v)
			}
		}
		if fields.Ages() {
			if v, ok := ctx.ageValue(e); ok {
				ctx.age.observe(v)
			}
		}
	}

	return ctx
}

// Enabled reports whether any field is scaled
func (c *Context) Enabled() bool {
	return c != nil && c.fields != config.ScaleNone
}

// Fields returns the scaled field set
func (c *Context) Fields() config.ScaleField {
	if c == nil {
		return config.ScaleNone
	}
	return c.fields
}

// Mode returns the scale mode
func (c *Context) Mode() config.ScaleMode {
	if c == nil {
		return config.ScaleFixed
	}
	return c.mode
}

// SizeRange returns the observed size extrema in bytes
func (c *Context) SizeRange() Range { return c.size }

// AgeRange returns the observed age extrema in seconds
func (c *Context) AgeRange() Range { return c.age }

// Size returns the size scale of e. Gradient positions are log scaled so
// a few large files do not push everything else to one end.
func (c *Context) Size(e *models.Entry) Scale {
	if c == nil || !c.fields.Sizes() {
		return Scale{}
	}
	v, ok := sizeValue(e)
	if !ok {
		return Scale{}
	}
	return resolve(v, c.size, true)
}

// Age returns the age scale of e; newer entries sit at the low end
func (c *Context) Age(e *models.Entry) Scale {
	if c == nil || !c.fields.Ages() {
		return Scale{}
	}
	v, ok := c.ageValue(e)
	if !ok {
		return Scale{}
	}
	return resolve(v, c.age, false)
}

func sizeValue(e *models.Entry) (float64, bool) {
	if e.Err != nil || !e.Size.Known {
		return 0, false
	}
	return float64(e.Size.Bytes), true
}

func (c *Context) ageValue(e *models.Entry) (float64, bool) {
	if e.Err != nil || e.Modified.IsZero() {
		return 0, false
	}
	return math.Max(0, c.now.Sub(e.Modified).Seconds()), true
}

func resolve(v float64, r Range, logScale bool) Scale {
	if !r.Valid {
		return Scale{}
	}

	s := Scale{
		Valid: true,
		AtMin: v == r.Min,
		AtMax: v == r.Max,
	}

	if r.Degenerate() {
		s.Position = Midpoint
		return s
	}

	s.Bucket = bucket((v - r.Min) / (r.Max - r.Min))
	if logScale {
		s.Position = clamp((math.Log1p(v) - math.Log1p(r.Min)) / (math.Log1p(r.Max) - math.Log1p(r.Min)))
	} else {
		s.Position = clamp((v - r.Min) / (r.Max - r.Min))
	}
	return s
}

// bucket maps a fraction of the range to a bucket; the top edge stays in the last bucket
func bucket(fraction float64) int {
	b := int(fraction * FixedBuckets)
	if b >= FixedBuckets {
		return FixedBuckets - 1
	}
	if b < 0 {
		return 0
	}
	return b
}

func clamp(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}
