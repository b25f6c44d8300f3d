// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package deck

import "testing"

func TestParseDirection(t *testing.T) {
	if d, ok := ParseDirection("left"); !ok || d != DirectionLeft {
		t.Errorf("ParseDirection(left) = %q, %v", d, ok)
	}
	if d, ok := ParseDirection("right"); !ok || d != DirectionRight {
		t.Errorf("ParseDirection(right) = %q, %v", d, ok)
	}
	if _, ok := ParseDirection("up"); ok {
		t.Error("ParseDirection(up) should be rejected")
	}
	if _, ok := ParseDirection(""); ok {
		t.Error("ParseDirection(\"\") should be rejected")
	}
}

func TestClassifyRelease(t *testing.T) {
	tests := []struct {
		name       string
		drag       Drag
		kind       PointerKind
		wantCommit bool
		wantDir    Direction
	}{
		{name: "touch right at threshold", drag: Drag{OriginX: 100, CurrentX: 164}, kind: PointerTouch, wantCommit: true, wantDir: DirectionRight},
		{name: "touch left at threshold", drag: Drag{OriginX: 200, CurrentX: 136}, kind: PointerTouch, wantCommit: true, wantDir: DirectionLeft},
		{name: "touch below threshold springs back", drag: Drag{OriginX: 100, CurrentX: 163}, kind: PointerTouch, wantCommit: false},
		{name: "mouse needs more travel than touch", drag: Drag{OriginX: 0, CurrentX: 70}, kind: PointerMouse, wantCommit: false},
		{name: "mouse right at threshold", drag: Drag{OriginX: 0, CurrentX: 84}, kind: PointerMouse, wantCommit: true, wantDir: DirectionRight},
		{name: "mouse left", drag: Drag{OriginX: 0, CurrentX: -90}, kind: PointerMouse, wantCommit: true, wantDir: DirectionLeft},
		{name: "no travel", drag: Drag{OriginX: 50, CurrentX: 50}, kind: PointerTouch, wantCommit: false},
		{name: "unknown kind uses mouse threshold", drag: Drag{OriginX: 0, CurrentX: 70}, kind: PointerKind("pen"), wantCommit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, commit := ClassifyRelease(tt.drag, tt.kind)
			if commit != tt.wantCommit {
				t.Fatalf("commit = %v, want %v", commit, tt.wantCommit)
			}
			if commit && dir != tt.wantDir {
				t.Errorf("direction = %q, want %q", dir, tt.wantDir)
			}
		})
	}
}

func TestDragRotationClamped(t *testing.T) {
	small := Drag{OriginX: 0, CurrentX: 60}
	if r := small.Rotation(); r != 5 {
		t.Errorf("Rotation() = %f, want 5", r)
	}

	huge := Drag{OriginX: 0, CurrentX: 1000}
	if r := huge.Rotation(); r != maxRotationDegrees {
		t.Errorf("Rotation() = %f, want clamp %f", r, maxRotationDegrees)
	}

	negative := Drag{OriginX: 0, CurrentX: -1000}
	if r := negative.Rotation(); r != -maxRotationDegrees {
		t.Errorf("Rotation() = %f, want clamp %f", r, -maxRotationDegrees)
	}
}
