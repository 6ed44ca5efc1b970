// SPDX-License-Identifier: Unlicense OR MIT

package layout

// Disposition is the classification of a span during a solve.
type Disposition uint8

const (
	// Unknown spans are not decided yet.
	Unknown Disposition = iota
	// Normal spans share the leftover space.
	Normal
	// TooSmall spans are capped at their maximum.
	TooSmall
	// TooBig spans are held at their minimum.
	TooBig
	// FixedSize spans have equal minimum and maximum.
	FixedSize
	// Expanded spans are Expanding spans sharing the leftover space
	// ahead of every other span.
	Expanded

	// pinned marks non-expanding spans held back while the expanding
	// spans are solved.
	pinned
)

// Span is the one dimensional description of an item, row or
// column to Distribute.
type Span struct {
	Min, Max int
	Policy   Policy
	// Weight is the relative share of leftover space. Non-positive
	// weights count as 1.
	Weight int
}

// Share is the result of Distribute for a Span.
type Share struct {
	Size        int
	Disposition Disposition
}

// Distribute divides length among spans.
//
// Spans with equal bounds, or with a Fixed or Manual policy, get their
// minimum. If Expanding spans are present, the other spans are held at
// their minimum and the expanding spans share the rest in proportion
// to their weights; only when every expanding span reaches its maximum
// do the other spans grow. Otherwise all spans share the leftover in
// proportion to their weights, except those whose share would fall
// outside their bounds, which are held at the violated bound.
//
// The sum of the returned sizes equals length whenever length lies
// within the sum of the minimums and the sum of the maximums. Below
// that range every span gets its minimum; above it every span gets its
// maximum. The result depends only on the arguments.
func Distribute(spans []Span, length int) []Share {
	shares := make([]Share, len(spans))
	distribute(spans, length, shares)
	return shares
}

func distribute(spans []Span, length int, shares []Share) {
	free := int64(length)
	expanding := false
	for i, s := range spans {
		if s.Min >= s.Max || s.Policy.pins() {
			shares[i] = Share{Size: s.Min, Disposition: FixedSize}
			free -= int64(s.Min)
			continue
		}
		shares[i] = Share{}
		if s.Policy == Expanding {
			expanding = true
		}
	}
	if !expanding {
		resolve(spans, shares, free, Normal)
		return
	}
	held := false
	for i, s := range spans {
		if shares[i].Disposition == Unknown && s.Policy != Expanding {
			shares[i] = Share{Size: s.Min, Disposition: pinned}
			free -= int64(s.Min)
			held = true
		}
	}
	free = resolve(spans, shares, free, Expanded)
	if !held {
		return
	}
	if free > 0 {
		for i, s := range spans {
			if shares[i].Disposition == pinned {
				shares[i] = Share{}
				free += int64(s.Min)
			}
		}
		resolve(spans, shares, free, Normal)
		return
	}
	for i := range shares {
		if shares[i].Disposition == pinned {
			shares[i].Disposition = TooBig
		}
	}
}

// resolve distributes free among the Unknown spans and returns the
// space left over once every span is decided. Each pass computes the
// exact weighted share of every undecided span and freezes the spans
// whose share violates their bounds: min violators if the violations
// sum to a positive amount, max violators if negative, both if they
// cancel out. When no violation remains the rest take their share as
// disposition d. Every pass decides at least one span.
func resolve(spans []Span, shares []Share, free int64, d Disposition) int64 {
	for {
		var n int
		var total int64
		for i, s := range spans {
			if shares[i].Disposition == Unknown {
				n++
				total += int64(weight(s))
			}
		}
		if n == 0 {
			return free
		}
		f := max(free, 0)
		// Violations are scaled by total to stay in integers.
		var violation int64
		violated := false
		for i, s := range spans {
			if shares[i].Disposition != Unknown {
				continue
			}
			share := int64(weight(s)) * f
			if lo := int64(s.Min) * total; lo > share {
				violation += lo - share
				violated = true
			} else if s.Max < Inf {
				if hi := int64(s.Max) * total; hi < share {
					violation += hi - share
					violated = true
				}
			}
		}
		if !violated {
			spread(spans, shares, f, total, d)
			return free - f
		}
		for i, s := range spans {
			if shares[i].Disposition != Unknown {
				continue
			}
			share := int64(weight(s)) * f
			switch {
			case violation >= 0 && int64(s.Min)*total > share:
				shares[i] = Share{Size: s.Min, Disposition: TooBig}
				free -= int64(s.Min)
			case violation <= 0 && s.Max < Inf && int64(s.Max)*total < share:
				shares[i] = Share{Size: s.Max, Disposition: TooSmall}
				free -= int64(s.Max)
			}
		}
	}
}

// spread assigns every undecided span the floor of its share of f and
// hands out the remainder one unit at a time, Bresenham style, to the
// spans whose share has a fractional part, in span order.
func spread(spans []Span, shares []Share, f, total int64, d Disposition) {
	var rem int64 = f
	var frac int64
	for i, s := range spans {
		if shares[i].Disposition != Unknown {
			continue
		}
		share := int64(weight(s)) * f
		shares[i].Size = int(share / total)
		rem -= share / total
		if share%total != 0 {
			frac++
		}
	}
	var acc int64
	for i, s := range spans {
		if shares[i].Disposition != Unknown {
			continue
		}
		shares[i].Disposition = d
		if rem == 0 || int64(weight(s))*f%total == 0 {
			continue
		}
		acc += rem
		if acc >= frac {
			acc -= frac
			shares[i].Size++
		}
	}
}

func weight(s Span) int {
	if s.Weight <= 0 {
		return 1
	}
	return s.Weight
}

// Sum returns the total size of shares.
func Sum(shares []Share) int {
	var sum int
	for _, s := range shares {
		sum += s.Size
	}
	return sum
}

func (d Disposition) String() string {
	switch d {
	case Unknown:
		return "Unknown"
	case Normal:
		return "Normal"
	case TooSmall:
		return "TooSmall"
	case TooBig:
		return "TooBig"
	case FixedSize:
		return "FixedSize"
	case Expanded:
		return "Expanded"
	default:
		panic("unreachable")
	}
}
