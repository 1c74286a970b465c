package components

import (
	"testing"

	"github.com/decker502/cardash/pkg/types"
)

func TestTyreOpenStartsOnlyLeftUp(t *testing.T) {
	tyre := NewTyreComponent()
	tyre.Timers[types.TyreRightDown].Start(at(0))

	tyre.Open(at(300))

	if !tyre.IsActive {
		t.Error("Open must activate the panel")
	}
	for _, slot := range types.TyreSlots {
		want := slot == types.TyreLeftUp
		if got := tyre.Running(slot); got != want {
			t.Errorf("%v running = %v, want %v", slot, got, want)
		}
	}
	if start, _ := tyre.Timers[types.TyreLeftUp].StartedAt(); !start.Equal(at(300)) {
		t.Errorf("LeftUp start = %v, want %v", start, at(300))
	}
}

func TestTyreCloseRestartsLeftUp(t *testing.T) {
	tyre := NewTyreComponent()
	tyre.Open(at(0))
	tyre.Timers[types.TyreLeftUp].Clear()
	tyre.StartSlot(types.TyreRightDown, at(600))

	tyre.Close(at(700))

	if tyre.IsActive {
		t.Error("Close must deactivate the panel")
	}
	if start, ok := tyre.Timers[types.TyreLeftUp].StartedAt(); !ok || !start.Equal(at(700)) {
		t.Errorf("LeftUp start = %v,%v, want %v,true", start, ok, at(700))
	}
	if !tyre.Running(types.TyreRightDown) {
		t.Error("Close must leave other slots alone")
	}
}

func TestTyreBoxScale(t *testing.T) {
	tests := []struct {
		name    string
		active  bool
		running []types.TyreSlot
		slot    types.TyreSlot
		p       float64
		want    float64
	}{
		{"idle closed", false, nil, types.TyreRightUp, 0.25, 0},
		{"opening running slot", true, []types.TyreSlot{types.TyreRightUp}, types.TyreRightUp, 0.25, 0.25},
		{"opening revealed slot", true, []types.TyreSlot{types.TyreRightUp}, types.TyreLeftUp, 1, 1},
		{"opening pending slot", true, []types.TyreSlot{types.TyreRightUp}, types.TyreLeftDown, 0, 0},
		{"open settled", true, nil, types.TyreLeftDown, 1, 1},
		{"closing running slot", false, []types.TyreSlot{types.TyreLeftUp}, types.TyreLeftUp, 0.25, 0.75},
		{"closing idle slot", false, []types.TyreSlot{types.TyreLeftUp}, types.TyreRightDown, 0, 1},
		{"closing relay", false, []types.TyreSlot{types.TyreRightUp}, types.TyreLeftUp, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tyre := NewTyreComponent()
			tyre.IsActive = tt.active
			for _, slot := range tt.running {
				tyre.Timers[slot].Start(at(0))
			}
			tyre.Progress[tt.slot] = tt.p

			if got := tyre.BoxScale(tt.slot); got != tt.want {
				t.Errorf("BoxScale(%v) = %v, want %v", tt.slot, got, tt.want)
			}
		})
	}
}

func TestTyreRevealed(t *testing.T) {
	tyre := NewTyreComponent()
	tyre.IsActive = true
	tyre.StartSlot(types.TyreRightUp, at(0))

	want := map[types.TyreSlot]bool{
		types.TyreLeftUp:    true,
		types.TyreRightUp:   false,
		types.TyreRightDown: false,
		types.TyreLeftDown:  false,
	}
	for slot, w := range want {
		if got := tyre.Revealed(slot); got != w {
			t.Errorf("Revealed(%v) = %v, want %v", slot, got, w)
		}
	}

	tyre.IsActive = false
	if tyre.Revealed(types.TyreLeftUp) {
		t.Error("inactive panel reveals nothing")
	}
}

func TestTyreAnchor(t *testing.T) {
	tyre := NewTyreComponent()
	tyre.VehicleRect = types.Rect{
		Min: types.Point{X: 100, Y: 200},
		Max: types.Point{X: 300, Y: 600},
	}

	tests := []struct {
		slot types.TyreSlot
		want types.Point
	}{
		{types.TyreLeftUp, types.Point{X: 130, Y: 321}},
		{types.TyreRightUp, types.Point{X: 270, Y: 321}},
		{types.TyreRightDown, types.Point{X: 270, Y: 469}},
		{types.TyreLeftDown, types.Point{X: 130, Y: 469}},
	}

	for _, tt := range tests {
		if got := tyre.Anchor(tt.slot); got != tt.want {
			t.Errorf("Anchor(%v) = %v, want %v", tt.slot, got, tt.want)
		}
	}
}
