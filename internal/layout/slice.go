package layout

import (
	"fmt"
	"math"
)

// Slice selects positions along one axis: start, start+step, ... (stop exclusive).
type Slice interface {
	Start() int
	Stop() int
	Step() int
	Size() int
}

// SliceKind classifies a slice by how much of the axis it takes.
type SliceKind int

// Slice kinds, most specific first.
const (
	SliceSingle SliceKind = iota
	SliceFull
	SliceGeneral
)

// String returns the kind name.
func (k SliceKind) String() string {
	switch k {
	case SliceSingle:
		return "single"
	case SliceFull:
		return "full"
	case SliceGeneral:
		return "general"
	default:
		return "unknown"
	}
}

// Single selects one position.
type Single struct {
	Index int
}

func (s Single) Start() int { return s.Index }
func (s Single) Stop() int  { return s.Index + 1 }
func (s Single) Step() int  { return 1 }
func (s Single) Size() int  { return 1 }

// Full selects a whole axis of length Len.
type Full struct {
	Len int
}

func (f Full) Start() int { return 0 }
func (f Full) Stop() int  { return f.Len }
func (f Full) Step() int  { return 1 }
func (f Full) Size() int  { return f.Len }

// Range is a general start:stop:step selection. Step may be negative, in
// which case stop lies below start (use -1 to run through index 0).
type Range struct {
	start, stop, step int
}

// Span returns the range start:stop:step.
func Span(start, stop, step int) Range {
	return Range{start: start, stop: stop, step: step}
}

// To returns the range 0:stop:1.
func To(stop int) Range {
	return Range{stop: stop, step: 1}
}

// At returns the one-element range i:i+1:1.
func At(i int) Range {
	return Range{start: i, stop: i + 1, step: 1}
}

func (r Range) Start() int { return r.start }
func (r Range) Stop() int  { return r.stop }
func (r Range) Step() int  { return r.step }

// Size returns the number of selected positions; a stop that is not an exact
// multiple of step away from start still counts the partial stride. Sizes
// that do not fit in an int saturate at math.MaxInt.
func (r Range) Size() int {
	switch {
	case r.step > 0 && r.stop > r.start:
		return stepCount(uint(r.stop)-uint(r.start), uint(r.step))
	case r.step < 0 && r.stop < r.start:
		return stepCount(uint(r.start)-uint(r.stop), absStep(r.step))
	default:
		return 0
	}
}

// stepCount returns ceil(d/step) for d, step > 0.
func stepCount(d, step uint) int {
	n := (d-1)/step + 1
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

// absStep returns |step| for a negative step without overflowing on MinInt.
func absStep(step int) uint {
	return uint(-(step + 1)) + 1
}

// Normalize validates r against an axis of length n: the step must be
// non-zero, at least one position must be selected and every selected
// position must lie in [0, n).
func (r Range) Normalize(n int) (Range, error) {
	if r.step == 0 {
		return Range{}, fmt.Errorf("%w: zero step", ErrBadSlice)
	}
	size := r.Size()
	if size == 0 {
		return Range{}, fmt.Errorf("%w: %d:%d:%d selects nothing", ErrBadSlice, r.start, r.stop, r.step)
	}
	if r.start < 0 || r.start >= n {
		return Range{}, fmt.Errorf("%w: %d:%d:%d on axis of length %d", ErrOutOfRange, r.start, r.stop, r.step, n)
	}
	// room is how many further steps stay inside [0, n) after start.
	var room uint
	if r.step > 0 {
		room = uint(n-1-r.start) / uint(r.step)
	} else {
		room = uint(r.start) / absStep(r.step)
	}
	if uint(size-1) > room {
		return Range{}, fmt.Errorf("%w: %d:%d:%d on axis of length %d", ErrOutOfRange, r.start, r.stop, r.step, n)
	}
	// Canonical stop keeps Size exact for the descriptor that is stored.
	switch {
	case size == 1 && r.step > 0:
		r.stop = r.start + 1
	case size == 1:
		r.stop = r.start - 1
	default:
		r.stop = r.start + (size-1)*r.step + r.step
	}
	return r, nil
}

// String renders r in start:stop:step form.
func (r Range) String() string {
	return fmt.Sprintf("%d:%d:%d", r.start, r.stop, r.step)
}

// Classify returns the most specific descriptor equivalent to r on an axis
// of length n: a Single, a Full or r itself.
func Classify(r Range, n int) Slice {
	switch {
	case r.Size() == 1:
		return Single{Index: r.start}
	case r.step == 1 && r.start == 0 && r.stop == n:
		return Full{Len: n}
	default:
		return r
	}
}

// KindOf reports the kind of a descriptor.
func KindOf(s Slice) SliceKind {
	switch s.(type) {
	case Single:
		return SliceSingle
	case Full:
		return SliceFull
	default:
		return SliceGeneral
	}
}
