// SPDX-License-Identifier: Unlicense OR MIT

/*

Package unit implements device independent units and values.

A Value is a value with a Unit attached.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device.

Scaled pixels, or sp, is the unit for text sizes. An sp is like dp with
text scaling applied.

Finally, pixels, or px, is the unit for display dependent pixels. Their
size vary between platforms and displays.

Layout styles are expressed in dps and converted to whole pixels by a
Metric right before they reach the solver, which only deals in pixels.

*/
package unit

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/math/fixed"
)

// Value is a value with a unit.
type Value struct {
	V float32
	U Unit
}

// Unit represents a unit for a Value.
type Unit uint8

// Converter converts Values to pixels.
type Converter interface {
	Px(v Value) int
}

// Metric converts Values to device-dependent pixels. The zero value
// is a 1:1 mapping.
type Metric struct {
	// PxPerDp is the device-dependent pixels per dp.
	PxPerDp float32
	// PxPerSp is the device-dependent pixels per sp.
	PxPerSp float32
}

const (
	// UnitPx represent device pixels in the resolution of
	// the underlying display.
	UnitPx Unit = iota
	// UnitDp represents device independent pixels. 1 dp will
	// have the same apparent size across platforms and
	// display resolutions.
	UnitDp
	// UnitSp is like UnitDp but for font sizes.
	UnitSp
)

// Px returns the Value for v device pixels.
func Px(v float32) Value {
	return Value{V: v, U: UnitPx}
}

// Dp returns the Value for v device independent
// pixels.
func Dp(v float32) Value {
	return Value{V: v, U: UnitDp}
}

// Sp returns the Value for v scaled dps.
func Sp(v float32) Value {
	return Value{V: v, U: UnitSp}
}

func (v Value) String() string {
	return fmt.Sprintf("%g%s", v.V, v.U)
}

func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitDp:
		return "dp"
	case UnitSp:
		return "sp"
	default:
		panic("unknown unit")
	}
}

// Px converts v to whole pixels, rounding half away from zero.
func (m Metric) Px(v Value) int {
	var scale float32
	switch v.U {
	case UnitPx:
		scale = 1
	case UnitDp:
		scale = nonZero(m.PxPerDp)
	case UnitSp:
		scale = nonZero(m.PxPerSp)
	default:
		panic("unknown unit")
	}
	f := v.V * scale
	if f < 0 {
		return -toFixed(-f).Round()
	}
	return toFixed(f).Round()
}

// Dp converts v dps to pixels.
func (m Metric) Dp(v float32) int {
	return m.Px(Dp(v))
}

// Sp converts v sps to pixels.
func (m Metric) Sp(v float32) int {
	return m.Px(Sp(v))
}

// Parse a value on the form <number><unit>, where unit is
// one of px, dp, sp. A bare number is in dp.
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	u := UnitDp
	switch {
	case strings.HasSuffix(s, "px"):
		u = UnitPx
	case strings.HasSuffix(s, "dp"):
	case strings.HasSuffix(s, "sp"):
		u = UnitSp
	default:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return Value{}, fmt.Errorf("unit: invalid value %q", s)
		}
		return Value{V: float32(v), U: u}, nil
	}
	v, err := strconv.ParseFloat(s[:len(s)-2], 32)
	if err != nil {
		return Value{}, fmt.Errorf("unit: invalid value %q", s)
	}
	return Value{V: float32(v), U: u}, nil
}

func nonZero(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v*64 + .5)
}
