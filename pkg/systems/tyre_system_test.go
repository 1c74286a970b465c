package systems

import (
	"testing"
	"time"

	"github.com/decker502/cardash/pkg/components"
	"github.com/decker502/cardash/pkg/types"
)

func TestTyreRelayNext(t *testing.T) {
	tests := []struct {
		slot     types.TyreSlot
		wantNext types.TyreSlot
		wantOK   bool
	}{
		{types.TyreLeftUp, types.TyreRightUp, true},
		{types.TyreRightUp, types.TyreRightDown, true},
		{types.TyreRightDown, types.TyreLeftDown, true},
		{types.TyreLeftDown, types.TyreLeftDown, false},
	}

	for _, tt := range tests {
		next, ok := TyreRelayNext(tt.slot)
		if ok != tt.wantOK || (ok && next != tt.wantNext) {
			t.Errorf("TyreRelayNext(%v) = %v,%v, want %v,%v", tt.slot, next, ok, tt.wantNext, tt.wantOK)
		}
	}
}

func TestTyreRelayTiming(t *testing.T) {
	sys := NewTyreSystem(300 * time.Millisecond)
	tyre := components.NewTyreComponent()
	tyre.Open(at(0))

	sys.Update(at(300), tyre)
	if tyre.Running(types.TyreLeftUp) || tyre.Progress[types.TyreLeftUp] != 1 {
		t.Errorf("LeftUp at 300ms: running=%v progress=%v, want false,1",
			tyre.Running(types.TyreLeftUp), tyre.Progress[types.TyreLeftUp])
	}
	if !tyre.Running(types.TyreRightUp) {
		t.Error("RightUp should be present at 300ms")
	}

	sys.Update(at(600), tyre)
	if tyre.Running(types.TyreRightUp) {
		t.Error("RightUp should be absent at 600ms")
	}
	if !tyre.Running(types.TyreRightDown) {
		t.Error("RightDown should be present at 600ms")
	}

	sys.Update(at(900), tyre)
	sys.Update(at(1200), tyre)
	if tyre.Animating() {
		t.Error("relay should be finished after LeftDown; no fifth timer")
	}
	for _, slot := range types.TyreSlots {
		if tyre.Progress[slot] != 1 {
			t.Errorf("%v progress = %v, want 1", slot, tyre.Progress[slot])
		}
	}
}

func TestTyreRelayNeighbourProgress(t *testing.T) {
	sys := NewTyreSystem(300 * time.Millisecond)
	tyre := components.NewTyreComponent()
	tyre.IsActive = true
	tyre.StartSlot(types.TyreRightDown, at(0))
	tyre.Progress[types.TyreLeftDown] = 0.9

	sys.Update(at(150), tyre)

	want := [types.TyreSlotCount]float64{1, 1, 0.5, 0}
	if tyre.Progress != want {
		t.Errorf("Progress = %v, want %v", tyre.Progress, want)
	}
}

func TestTyreDelayedStart(t *testing.T) {
	sys := NewTyreSystem(300 * time.Millisecond)
	tyre := components.NewTyreComponent()
	tyre.Open(at(300))

	sys.Update(at(100), tyre)
	if !tyre.Running(types.TyreLeftUp) || tyre.Progress[types.TyreLeftUp] != 0 {
		t.Errorf("before start: running=%v progress=%v, want true,0",
			tyre.Running(types.TyreLeftUp), tyre.Progress[types.TyreLeftUp])
	}

	sys.Update(at(450), tyre)
	if tyre.Progress[types.TyreLeftUp] != 0.5 {
		t.Errorf("LeftUp progress = %v, want 0.5", tyre.Progress[types.TyreLeftUp])
	}
}

func TestTyreCloseRunsForward(t *testing.T) {
	sys := NewTyreSystem(300 * time.Millisecond)
	tyre := components.NewTyreComponent()
	tyre.Close(at(0))

	sys.Update(at(300), tyre)

	if tyre.IsActive {
		t.Error("closing must not reactivate")
	}
	if !tyre.Running(types.TyreRightUp) {
		t.Error("LeftUp completion still relays to RightUp while closing")
	}
}
