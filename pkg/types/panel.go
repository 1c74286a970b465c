// Package types defines the shared leaf types of the dashboard.
// It depends on no other package of this module so every layer can import it.
package types

import (
	"fmt"
	"strings"
)

// Panel is one of the four mutually exclusive dashboard views.
type Panel int

const (
	// PanelLock shows the four door locks.
	PanelLock Panel = iota
	// PanelCharge shows the battery and charging status.
	PanelCharge
	// PanelClimate shows the climate control.
	PanelClimate
	// PanelTyre shows the tyre pressure quadrants.
	PanelTyre
)

// Panels lists every panel in navigation bar order.
var Panels = [...]Panel{PanelLock, PanelCharge, PanelClimate, PanelTyre}

// String returns the lower-case panel name used in config files and flags.
func (p Panel) String() string {
	switch p {
	case PanelLock:
		return "lock"
	case PanelCharge:
		return "charge"
	case PanelClimate:
		return "climate"
	case PanelTyre:
		return "tyre"
	default:
		return "unknown"
	}
}

// ParsePanel converts a panel name (case insensitive) into a Panel.
func ParsePanel(name string) (Panel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lock":
		return PanelLock, nil
	case "charge":
		return PanelCharge, nil
	case "climate", "temp":
		return PanelClimate, nil
	case "tyre", "tire":
		return PanelTyre, nil
	}
	return PanelLock, fmt.Errorf("unknown panel %q", name)
}

// LockID identifies one of the four door lock widgets.
type LockID int

const (
	LockLeft LockID = iota
	LockRight
	LockTop
	LockBottom
)

// LockCount is the number of door lock widgets.
const LockCount = 4

// LockIDs lists every lock in drawing order.
var LockIDs = [LockCount]LockID{LockLeft, LockRight, LockTop, LockBottom}

func (id LockID) String() string {
	switch id {
	case LockLeft:
		return "left"
	case LockRight:
		return "right"
	case LockTop:
		return "top"
	case LockBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// ClimateMode is the selected climate mode.
type ClimateMode int

const (
	ClimateCool ClimateMode = iota
	ClimateHeat
)

func (m ClimateMode) String() string {
	if m == ClimateHeat {
		return "heat"
	}
	return "cool"
}

// Toggle returns the other mode.
func (m ClimateMode) Toggle() ClimateMode {
	if m == ClimateCool {
		return ClimateHeat
	}
	return ClimateCool
}

// TyreSlot is a position in the tyre reveal relay.
// The numeric order is the relay order.
type TyreSlot int

const (
	TyreLeftUp TyreSlot = iota
	TyreRightUp
	TyreRightDown
	TyreLeftDown
)

// TyreSlotCount is the number of tyre slots.
const TyreSlotCount = 4

// TyreSlots lists the slots in relay order.
var TyreSlots = [TyreSlotCount]TyreSlot{TyreLeftUp, TyreRightUp, TyreRightDown, TyreLeftDown}

func (s TyreSlot) String() string {
	switch s {
	case TyreLeftUp:
		return "leftUp"
	case TyreRightUp:
		return "rightUp"
	case TyreRightDown:
		return "rightDown"
	case TyreLeftDown:
		return "leftDown"
	default:
		return "unknown"
	}
}
