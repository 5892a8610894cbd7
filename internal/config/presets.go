package config

import (
	"github.com/san-kum/lapsim/internal/track"
	"github.com/san-kum/lapsim/internal/vehicle"
)

// monacoSegments is a simplified street-circuit layout: tight corners linked
// by short straights with a little elevation change.
func monacoSegments() []track.Segment {
	return []track.Segment{
		{Length: 200, Radius: 0, Inclination: 0, Label: "start straight"},
		{Length: 80, Radius: 50, Inclination: 0, Label: "tight right"},
		{Length: 150, Radius: 0, Inclination: -2, Label: "downhill straight"},
		{Length: 100, Radius: 80, Inclination: 0, Label: "medium left"},
		{Length: 300, Radius: 0, Inclination: 0, Label: "long straight"},
		{Length: 60, Radius: 40, Inclination: 0, Label: "hairpin"},
		{Length: 120, Radius: 0, Inclination: 3, Label: "uphill"},
		{Length: 90, Radius: 120, Inclination: 0, Label: "fast left"},
	}
}

// sprintSegments is a short power-circuit layout: long straights and two
// fast corners, good for aero sweeps.
func sprintSegments() []track.Segment {
	return []track.Segment{
		{Length: 800, Radius: 0, Inclination: 0, Label: "main straight"},
		{Length: 120, Radius: 150, Inclination: 0, Label: "fast right"},
		{Length: 600, Radius: 0, Inclination: 1, Label: "back straight"},
		{Length: 100, Radius: 90, Inclination: 0, Label: "left"},
	}
}

var Presets = map[string]*Config{
	"monaco": {
		Vehicle: vehicle.Default(),
		Track:   monacoSegments(),
		Dt:      DefaultDt,
		Sweep: SweepConfig{
			Param: "downforce_coeff",
			Min:   2.5, Max: 4.5, Step: 0.25,
		},
	},
	"sprint": {
		Vehicle: vehicle.Default(),
		Track:   sprintSegments(),
		Dt:      DefaultDt,
		Sweep: SweepConfig{
			Param: "drag_coeff",
			Min:   0.5, Max: 1.0, Step: 0.1,
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
