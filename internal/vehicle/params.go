package vehicle

import (
	"fmt"
	"math"
)

// Params holds the physical configuration of one vehicle. A Params value is
// frozen once a simulation starts; per-scenario overrides are applied to a
// copy, never to a shared template.
type Params struct {
	Mass            float64 `yaml:"mass"`             // kg
	DragCoeff       float64 `yaml:"drag_coeff"`       // Cd
	FrontalArea     float64 `yaml:"frontal_area"`     // m²
	DownforceCoeff  float64 `yaml:"downforce_coeff"`  // Cl
	MaxPower        float64 `yaml:"max_power"`        // W
	MaxBrakeTorque  float64 `yaml:"max_brake_torque"` // Nm
	TireGripCoeff   float64 `yaml:"tire_grip_coeff"`  // μ
	WheelRadius     float64 `yaml:"wheel_radius"`     // m
	WeightDistFront float64 `yaml:"weight_dist_front"`
	WeightDistRear  float64 `yaml:"weight_dist_rear"`
	CenterGravity   float64 `yaml:"center_gravity"` // m
	Wheelbase       float64 `yaml:"wheelbase"`      // m
	SuspensionStiff float64 `yaml:"suspension_stiffness"`
}

// Default returns an F1-style baseline setup.
func Default() Params {
	return Params{
		Mass:            798.0,
		DragCoeff:       0.7,
		FrontalArea:     1.5,
		DownforceCoeff:  3.5,
		MaxPower:        750000,
		MaxBrakeTorque:  5000,
		TireGripCoeff:   1.8,
		WheelRadius:     0.33,
		WeightDistFront: 0.45,
		WeightDistRear:  0.55,
		CenterGravity:   0.3,
		Wheelbase:       3.6,
		SuspensionStiff: 200000,
	}
}

func (p Params) Validate() error {
	if p.Mass <= 0 || math.IsNaN(p.Mass) {
		return fmt.Errorf("mass must be positive, got %g", p.Mass)
	}
	if p.Wheelbase <= 0 || math.IsNaN(p.Wheelbase) {
		return fmt.Errorf("wheelbase must be positive, got %g", p.Wheelbase)
	}
	if p.WheelRadius <= 0 || math.IsNaN(p.WheelRadius) {
		return fmt.Errorf("wheel radius must be positive, got %g", p.WheelRadius)
	}
	if p.WeightDistFront <= 0 || p.WeightDistFront >= 1 ||
		p.WeightDistRear <= 0 || p.WeightDistRear >= 1 {
		return fmt.Errorf("weight distribution fractions must be in (0,1), got front=%g rear=%g",
			p.WeightDistFront, p.WeightDistRear)
	}
	if math.Abs(p.WeightDistFront+p.WeightDistRear-1.0) > 1e-9 {
		return fmt.Errorf("weight distribution must sum to 1, got %g",
			p.WeightDistFront+p.WeightDistRear)
	}
	return nil
}

// Set overrides a single parameter by name. Used by scenario sweeps to apply
// the swept value to a private copy of the base setup.
func (p *Params) Set(name string, value float64) error {
	switch name {
	case "mass":
		p.Mass = value
	case "drag_coeff":
		p.DragCoeff = value
	case "frontal_area":
		p.FrontalArea = value
	case "downforce_coeff":
		p.DownforceCoeff = value
	case "max_power":
		p.MaxPower = value
	case "max_brake_torque":
		p.MaxBrakeTorque = value
	case "tire_grip_coeff":
		p.TireGripCoeff = value
	case "wheel_radius":
		p.WheelRadius = value
	case "center_gravity":
		p.CenterGravity = value
	case "wheelbase":
		p.Wheelbase = value
	case "suspension_stiffness":
		p.SuspensionStiff = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

func (p Params) Get() map[string]float64 {
	return map[string]float64{
		"mass":                 p.Mass,
		"drag_coeff":           p.DragCoeff,
		"frontal_area":         p.FrontalArea,
		"downforce_coeff":      p.DownforceCoeff,
		"max_power":            p.MaxPower,
		"max_brake_torque":     p.MaxBrakeTorque,
		"tire_grip_coeff":      p.TireGripCoeff,
		"wheel_radius":         p.WheelRadius,
		"center_gravity":       p.CenterGravity,
		"wheelbase":            p.Wheelbase,
		"suspension_stiffness": p.SuspensionStiff,
	}
}
