package game

import (
	"log"
	"time"

	"github.com/decker502/cardash/pkg/components"
	"github.com/decker502/cardash/pkg/config"
	"github.com/decker502/cardash/pkg/systems"
	"github.com/decker502/cardash/pkg/types"
)

// panelTransition holds the side effects of leaving and entering one panel.
// A nil effect does nothing.
type panelTransition struct {
	exit  func(s *DashboardState, now time.Time)
	enter func(s *DashboardState, now time.Time)
}

// PanelController owns the active panel and drives every widget system.
//
// Exactly one panel is active. Select runs the exit effect of the panel
// being left and the enter effect of the target, both at the same instant.
type PanelController struct {
	current     types.Panel
	transitions map[types.Panel]panelTransition

	// tyreDelay offsets the tyre reveal until the panel switch slide is over.
	tyreDelay time.Duration

	vehicle VehicleRectSource

	lockSystem    *systems.LockSystem
	chargeSystem  *systems.ChargeSystem
	climateSystem *systems.ClimateSystem
	tyreSystem    *systems.TyreSystem
}

// NewPanelController creates a controller starting on the Lock panel.
//
// Parameters:
//   - anim: animation durations
//   - vehicle: renderer capability queried every Advance; may be nil
func NewPanelController(anim config.AnimationConfig, vehicle VehicleRectSource) *PanelController {
	pc := &PanelController{
		current:       types.PanelLock,
		tyreDelay:     anim.PanelSwitch.Duration,
		vehicle:       vehicle,
		lockSystem:    systems.NewLockSystem(anim.Switch.Duration, anim.Bounce.Duration),
		chargeSystem:  systems.NewChargeSystem(anim.Charge.Duration),
		climateSystem: systems.NewClimateSystem(anim),
		tyreSystem:    systems.NewTyreSystem(anim.TyreSlot.Duration),
	}
	pc.transitions = map[types.Panel]panelTransition{
		types.PanelLock: {
			exit:  hideLocks,
			enter: showLocks,
		},
		types.PanelCharge: {
			exit:  func(s *DashboardState, now time.Time) { s.Charge.SetCharged(false, now) },
			enter: func(s *DashboardState, now time.Time) { s.Charge.SetCharged(true, now) },
		},
		types.PanelClimate: {
			exit:  func(s *DashboardState, now time.Time) { s.Climate.SetActive(false, now) },
			enter: func(s *DashboardState, now time.Time) { s.Climate.SetActive(true, now) },
		},
		types.PanelTyre: {
			exit:  func(s *DashboardState, now time.Time) { s.Tyre.Close(now) },
			enter: pc.openTyres,
		},
	}
	return pc
}

// Current returns the active panel.
func (pc *PanelController) Current() types.Panel {
	return pc.current
}

// SetVehicleRectSource replaces the renderer queried for the vehicle rect.
func (pc *PanelController) SetVehicleRectSource(vehicle VehicleRectSource) {
	pc.vehicle = vehicle
}

// Select switches to target. Selecting the active panel is a no-op.
// Returns whether the active panel changed.
func (pc *PanelController) Select(s *DashboardState, target types.Panel, now time.Time) bool {
	if target == pc.current {
		return false
	}

	log.Printf("[PanelController] %v -> %v", pc.current, target)

	if exit := pc.transitions[pc.current].exit; exit != nil {
		exit(s, now)
	}
	if enter := pc.transitions[target].enter; enter != nil {
		enter(s, now)
	}
	pc.current = target
	return true
}

// Restore places the dashboard on panel without playing any transition,
// as if the panel had been entered long ago. Used for the startup panel.
func (pc *PanelController) Restore(s *DashboardState, panel types.Panel) {
	pc.current = panel
	if panel == types.PanelLock {
		return
	}

	for _, l := range s.Locks {
		l.IsShown = false
		l.Alpha = 0
	}
	switch panel {
	case types.PanelCharge:
		s.Charge.IsCharged = true
	case types.PanelClimate:
		s.Climate.IsActive = true
		for _, id := range components.ClimateTimers {
			s.Climate.Progress[id] = 1
		}
	case types.PanelTyre:
		s.Tyre.IsActive = true
		for _, slot := range types.TyreSlots {
			s.Tyre.Progress[slot] = 1
		}
	}
	log.Printf("[PanelController] restored %v", panel)
}

// Advance samples every timer of every widget at now.
//
// The vehicle rect is refreshed first so the tyre anchors match the frame
// being drawn. All timers are advanced before anything is read for rendering.
func (pc *PanelController) Advance(s *DashboardState, now time.Time) {
	if pc.vehicle != nil {
		s.Tyre.VehicleRect = pc.vehicle.VehicleRect()
	}

	pc.lockSystem.Update(now, s.Locks[:])
	pc.chargeSystem.Update(now, s.Charge)
	pc.climateSystem.Update(now, s.Climate)
	pc.tyreSystem.Update(now, s.Tyre)
}

// ToggleLock flips one door lock and replays its icon morph.
func (pc *PanelController) ToggleLock(s *DashboardState, id types.LockID, now time.Time) {
	l := s.Lock(id)
	l.Toggle(now)
	log.Printf("[PanelController] lock %v locked=%v", id, l.IsLocked)
}

// ToggleClimateMode switches between cooling and heating.
func (pc *PanelController) ToggleClimateMode(s *DashboardState, now time.Time) {
	s.Climate.ToggleMode(now)
	log.Printf("[PanelController] climate mode %v", s.Climate.Mode)
}

// AdjustTemperature moves the climate set point by delta.
func (pc *PanelController) AdjustTemperature(s *DashboardState, delta int) {
	s.Climate.AdjustTemperature(delta)
}

func (pc *PanelController) openTyres(s *DashboardState, now time.Time) {
	s.Tyre.Open(now.Add(pc.tyreDelay))
}

func showLocks(s *DashboardState, now time.Time) {
	for _, l := range s.Locks {
		l.Reveal(true, now)
	}
}

func hideLocks(s *DashboardState, now time.Time) {
	for _, l := range s.Locks {
		l.Reveal(false, now)
	}
}
