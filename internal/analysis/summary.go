// Package analysis computes summary statistics over recorded telemetry.
package analysis

import (
	"github.com/san-kum/lapsim/internal/physics"
	"github.com/san-kum/lapsim/internal/sim"
)

// Summary condenses one run's telemetry into headline figures.
type Summary struct {
	Points      int     `json:"points"`
	Distance    float64 `json:"distance"`      // m
	MaxSpeed    float64 `json:"max_speed"`     // m/s
	MaxAccelG   float64 `json:"max_accel_g"`   // longitudinal g
	MaxBrakingG float64 `json:"max_braking_g"` // longitudinal g, positive
	MinTireTemp float64 `json:"min_tire_temp"` // °C
	MaxTireTemp float64 `json:"max_tire_temp"` // °C
}

func Summarize(points []sim.VehicleState) Summary {
	s := Summary{Points: len(points)}
	if len(points) == 0 {
		return s
	}

	s.MinTireTemp = points[0].TireTemp
	s.MaxTireTemp = points[0].TireTemp

	for _, p := range points {
		if p.Velocity > s.MaxSpeed {
			s.MaxSpeed = p.Velocity
		}
		if p.Acceleration/physics.Gravity > s.MaxAccelG {
			s.MaxAccelG = p.Acceleration / physics.Gravity
		}
		if -p.Acceleration/physics.Gravity > s.MaxBrakingG {
			s.MaxBrakingG = -p.Acceleration / physics.Gravity
		}
		if p.TireTemp < s.MinTireTemp {
			s.MinTireTemp = p.TireTemp
		}
		if p.TireTemp > s.MaxTireTemp {
			s.MaxTireTemp = p.TireTemp
		}
		if p.Position > s.Distance {
			s.Distance = p.Position
		}
	}
	return s
}
