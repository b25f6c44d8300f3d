// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package deck

import (
	"math"
	"time"
)

// Direction is a committed swipe direction.
type Direction string

// Swipe directions. Right likes, left skips.
const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// ParseDirection validates a raw direction string.
func ParseDirection(raw string) (Direction, bool) {
	switch Direction(raw) {
	case DirectionLeft, DirectionRight:
		return Direction(raw), true
	default:
		return "", false
	}
}

// PointerKind distinguishes gesture input devices; commit thresholds
// differ because touch drags travel shorter distances than mouse drags.
type PointerKind string

// Pointer kinds.
const (
	PointerTouch PointerKind = "touch"
	PointerMouse PointerKind = "mouse"
)

// Gesture tuning constants.
const (
	// TouchCommitThreshold is the horizontal travel (px) committing a
	// touch swipe.
	TouchCommitThreshold = 64.0

	// MouseCommitThreshold is the horizontal travel (px) committing a
	// mouse/pointer swipe.
	MouseCommitThreshold = 84.0

	// ExitAnimationDuration is how long a committed card animates off
	// screen. The stack mutation happens at release time; this only
	// gates double-commits on the same card.
	ExitAnimationDuration = 240 * time.Millisecond

	// maxRotationDegrees caps the live drag rotation hint.
	maxRotationDegrees = 15.0

	// rotationPerPixel converts horizontal travel to rotation.
	rotationPerPixel = 1.0 / 12.0
)

// Drag tracks one in-flight pointer drag on the active card. It is pure
// visual state: creating, moving, or abandoning a drag never mutates the
// deck. A drag that ends below the commit threshold springs back to rest.
type Drag struct {
	// OriginX is the pointer-down x coordinate.
	OriginX float64

	// CurrentX is the latest pointer-move x coordinate.
	CurrentX float64
}

// Delta returns the signed horizontal travel.
func (d Drag) Delta() float64 {
	return d.CurrentX - d.OriginX
}

// Rotation returns the live card rotation in degrees, proportional to
// travel and clamped, for render use.
func (d Drag) Rotation() float64 {
	deg := d.Delta() * rotationPerPixel
	return math.Max(-maxRotationDegrees, math.Min(maxRotationDegrees, deg))
}

// commitThreshold returns the travel needed to commit for a pointer kind.
// Unknown kinds use the stricter mouse threshold.
func commitThreshold(kind PointerKind) float64 {
	if kind == PointerTouch {
		return TouchCommitThreshold
	}
	return MouseCommitThreshold
}

// ClassifyRelease interprets a pointer-up: it returns the commit
// direction and true when travel reaches the threshold for the pointer
// kind, or false for a spring-back (no state mutation).
func ClassifyRelease(d Drag, kind PointerKind) (Direction, bool) {
	delta := d.Delta()
	if math.Abs(delta) < commitThreshold(kind) {
		return "", false
	}
	if delta > 0 {
		return DirectionRight, true
	}
	return DirectionLeft, true
}
