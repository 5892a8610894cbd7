package track

import "fmt"

// Segment is one piece of track. Radius 0 means a straight with no cornering
// speed cap. Inclination is in degrees, positive uphill. The label is
// informational only.
type Segment struct {
	Length      float64 `yaml:"length"` // m
	Radius      float64 `yaml:"radius"` // m, 0 = straight
	Inclination float64 `yaml:"inclination"`
	Label       string  `yaml:"label"`
}

// Track is an ordered segment sequence, immutable once handed to a simulator
// and shared read-only across concurrent runs.
type Track struct {
	segments []Segment
}

func New() *Track {
	return &Track{segments: make([]Segment, 0)}
}

// FromSegments builds a track from a pre-assembled segment list, validating
// each entry.
func FromSegments(segments []Segment) (*Track, error) {
	t := New()
	for i, seg := range segments {
		if err := t.Add(seg.Length, seg.Radius, seg.Inclination, seg.Label); err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
	}
	return t, nil
}

// Add appends one segment. Negative length or radius is rejected and nothing
// is appended.
func (t *Track) Add(length, radius, inclination float64, label string) error {
	if length < 0 {
		return fmt.Errorf("segment length must be non-negative, got %g", length)
	}
	if radius < 0 {
		return fmt.Errorf("segment radius must be non-negative, got %g", radius)
	}
	t.segments = append(t.segments, Segment{
		Length:      length,
		Radius:      radius,
		Inclination: inclination,
		Label:       label,
	})
	return nil
}

func (t *Track) Len() int         { return len(t.segments) }
func (t *Track) At(i int) Segment { return t.segments[i] }

// Segments returns a copy of the segment list.
func (t *Track) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)
	return out
}

// Length returns the total track length in meters.
func (t *Track) Length() float64 {
	total := 0.0
	for _, seg := range t.segments {
		total += seg.Length
	}
	return total
}
