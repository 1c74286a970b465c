package types

import "testing"

func TestParsePanel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Panel
		wantErr bool
	}{
		{"lock", "lock", PanelLock, false},
		{"upper case", "CHARGE", PanelCharge, false},
		{"climate alias", "temp", PanelClimate, false},
		{"padded", "  tyre ", PanelTyre, false},
		{"tire spelling", "tire", PanelTyre, false},
		{"unknown", "radio", PanelLock, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePanel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePanel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePanel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPanelStringRoundTrip(t *testing.T) {
	for _, p := range Panels {
		got, err := ParsePanel(p.String())
		if err != nil {
			t.Fatalf("ParsePanel(%q) failed: %v", p.String(), err)
		}
		if got != p {
			t.Errorf("round trip of %v gave %v", p, got)
		}
	}
}

func TestClimateModeToggle(t *testing.T) {
	if ClimateCool.Toggle() != ClimateHeat {
		t.Errorf("Cool.Toggle() = %v, want heat", ClimateCool.Toggle())
	}
	if ClimateHeat.Toggle() != ClimateCool {
		t.Errorf("Heat.Toggle() = %v, want cool", ClimateHeat.Toggle())
	}
}

func TestTyreSlotsAreInRelayOrder(t *testing.T) {
	for i, s := range TyreSlots {
		if int(s) != i {
			t.Errorf("TyreSlots[%d] = %v (%d), want index to equal value", i, s, int(s))
		}
	}
}

func TestRectGeometry(t *testing.T) {
	r := RectFromCenter(Point{X: 50, Y: 50}, 20, 10)

	if r.Min != (Point{X: 40, Y: 45}) || r.Max != (Point{X: 60, Y: 55}) {
		t.Fatalf("RectFromCenter = %+v", r)
	}
	if !r.Contains(40, 45) {
		t.Error("Contains(min) = false, want true")
	}
	if r.Contains(60, 50) {
		t.Error("Contains(max.x) = true, want false")
	}

	half := r.Scale(0.5)
	if half.Width() != 10 || half.Height() != 5 || half.Center() != r.Center() {
		t.Errorf("Scale(0.5) = %+v", half)
	}
	if !r.Scale(0).Empty() {
		t.Error("Scale(0) should be empty")
	}
}
