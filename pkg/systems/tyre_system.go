package systems

import (
	"log"
	"time"

	"github.com/decker502/cardash/pkg/components"
	"github.com/decker502/cardash/pkg/types"
)

// TyreRelayNext returns the slot started when slot completes.
// LeftDown ends the relay.
func TyreRelayNext(slot types.TyreSlot) (types.TyreSlot, bool) {
	next := slot + 1
	if next >= types.TyreSlotCount {
		return slot, false
	}
	return next, true
}

// TyreSystem advances the tyre reveal relay.
type TyreSystem struct {
	slotDuration time.Duration
}

// NewTyreSystem creates a tyre system with the per-slot duration.
func NewTyreSystem(slotDuration time.Duration) *TyreSystem {
	return &TyreSystem{slotDuration: slotDuration}
}

// Update advances every running slot in relay order.
//
// A running slot forces every earlier slot to 1 and every later slot to 0.
// A completed slot reads 1 and starts its successor at now, which is then
// advanced within the same call.
func (s *TyreSystem) Update(now time.Time, t *components.TyreComponent) {
	for _, slot := range types.TyreSlots {
		if !t.Running(slot) {
			continue
		}
		p, done := t.Timers[slot].Advance(now, s.slotDuration)
		if done {
			t.Progress[slot] = 1
			if next, ok := TyreRelayNext(slot); ok {
				log.Printf("[TyreSystem] %v revealed, starting %v", slot, next)
				t.StartSlot(next, now)
			}
			continue
		}

		t.Progress[slot] = p
		for _, other := range types.TyreSlots {
			switch {
			case other < slot:
				t.Progress[other] = 1
			case other > slot:
				t.Progress[other] = 0
			}
		}
	}
}
