package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/lapsim/internal/physics"
	"github.com/san-kum/lapsim/internal/sim"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Points != 0 || s.MaxSpeed != 0 || s.Distance != 0 {
		t.Errorf("empty telemetry should give a zero summary, got %+v", s)
	}
}

func TestSummarize(t *testing.T) {
	points := []sim.VehicleState{
		{Position: 0, Velocity: 0, Acceleration: 14.0, TireTemp: 25},
		{Position: 50, Velocity: 30, Acceleration: 10.0, TireTemp: 60},
		{Position: 120, Velocity: 55, Acceleration: -19.0, TireTemp: 95},
		{Position: 180, Velocity: 40, Acceleration: 2.0, TireTemp: 110},
	}

	s := Summarize(points)

	if s.Points != 4 {
		t.Errorf("Points = %d, want 4", s.Points)
	}
	if s.MaxSpeed != 55 {
		t.Errorf("MaxSpeed = %g, want 55", s.MaxSpeed)
	}
	if math.Abs(s.MaxAccelG-14.0/physics.Gravity) > 1e-12 {
		t.Errorf("MaxAccelG = %g, want %g", s.MaxAccelG, 14.0/physics.Gravity)
	}
	if math.Abs(s.MaxBrakingG-19.0/physics.Gravity) > 1e-12 {
		t.Errorf("MaxBrakingG = %g, want %g", s.MaxBrakingG, 19.0/physics.Gravity)
	}
	if s.MinTireTemp != 25 || s.MaxTireTemp != 110 {
		t.Errorf("tire temp range = %g-%g, want 25-110", s.MinTireTemp, s.MaxTireTemp)
	}
	if s.Distance != 180 {
		t.Errorf("Distance = %g, want 180", s.Distance)
	}
}
