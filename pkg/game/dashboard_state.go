package game

import (
	"github.com/decker502/cardash/pkg/components"
	"github.com/decker502/cardash/pkg/config"
	"github.com/decker502/cardash/pkg/types"
)

// DashboardState owns every widget of the dashboard.
//
// It is created once at startup and passed by pointer into the
// PanelController and the input handlers; nothing else mutates it.
type DashboardState struct {
	Locks   [types.LockCount]*components.LockComponent
	Charge  *components.ChargeComponent
	Climate *components.ClimateComponent
	Tyre    *components.TyreComponent
}

// NewDashboardState creates the widgets in their startup state: locks
// locked and shown, every other panel inactive, no timer running.
func NewDashboardState(cfg *config.DashboardConfig) *DashboardState {
	s := &DashboardState{
		Charge:  components.NewChargeComponent(),
		Climate: components.NewClimateComponent(cfg.Climate.InitialTemperature),
		Tyre:    components.NewTyreComponent(),
	}
	for _, id := range types.LockIDs {
		s.Locks[id] = components.NewLockComponent(id)
	}
	return s
}

// Lock returns the lock widget with the given id.
func (s *DashboardState) Lock(id types.LockID) *components.LockComponent {
	return s.Locks[id]
}

// Animating reports whether any timer of any widget is present.
// The host keeps requesting frames while this is true.
func (s *DashboardState) Animating() bool {
	for _, l := range s.Locks {
		if l.Animating() {
			return true
		}
	}
	return s.Charge.Animating() || s.Climate.Animating() || s.Tyre.Animating()
}

// Snapshot copies the resolved widget state for the renderer.
func (s *DashboardState) Snapshot(panel types.Panel) Snapshot {
	snap := Snapshot{
		Panel:   panel,
		Charge:  *s.Charge,
		Climate: *s.Climate,
		Tyre:    *s.Tyre,
	}
	for i, l := range s.Locks {
		snap.Locks[i] = *l
	}
	return snap
}

// Snapshot is a read-only copy of the dashboard. Its widget values expose
// the same derived accessors (opacity, scale, position) as the live state,
// but changes to it never reach the engine.
type Snapshot struct {
	Panel types.Panel

	Locks   [types.LockCount]components.LockComponent
	Charge  components.ChargeComponent
	Climate components.ClimateComponent
	Tyre    components.TyreComponent
}

// VehicleRectSource reports where the vehicle image currently sits on screen.
// The renderer implements it; the tyre anchors follow the returned rect.
type VehicleRectSource interface {
	VehicleRect() types.Rect
}
