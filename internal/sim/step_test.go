package sim

import (
	"math"
	"testing"

	"github.com/san-kum/lapsim/internal/physics"
	"github.com/san-kum/lapsim/internal/track"
	"github.com/san-kum/lapsim/internal/vehicle"
)

func TestStepDeterminism(t *testing.T) {
	p := vehicle.Default()
	seg := track.Segment{Length: 200, Radius: 0}
	state := initialState(p)

	a := Step(state, seg, 0.01, p)
	b := Step(state, seg, 0.01, p)
	if a != b {
		t.Errorf("identical inputs produced different states:\n%+v\n%+v", a, b)
	}
}

func TestStepAdvancesTime(t *testing.T) {
	p := vehicle.Default()
	seg := track.Segment{Length: 200, Radius: 0}
	state := initialState(p)

	next := Step(state, seg, 0.01, p)
	if math.Abs(next.Time-0.01) > 1e-12 {
		t.Errorf("Time = %g, want 0.01", next.Time)
	}
	if next.Velocity <= 0 {
		t.Error("full throttle from standstill should gain speed")
	}
	if next.Throttle != 1.0 || next.Brake != 0.0 {
		t.Errorf("standing start on a straight should be full throttle, got throttle=%g brake=%g",
			next.Throttle, next.Brake)
	}
}

func TestStepLoadConservation(t *testing.T) {
	p := vehicle.Default()
	seg := track.Segment{Length: 500, Radius: 0}
	state := initialState(p)

	for i := 0; i < 500; i++ {
		state = Step(state, seg, 0.01, p)
		total := p.Mass*physics.Gravity + physics.Downforce(p, state.Velocity)
		sum := state.FrontLoad + state.RearLoad
		if math.Abs(sum-total) > 1e-6 {
			t.Fatalf("step %d: front+rear = %g, want %g", i, sum, total)
		}
	}
}

func TestStepVelocityClamp(t *testing.T) {
	p := vehicle.Default()
	// Absurd power forces the upper clamp within a few steps.
	p.MaxPower = 1e9
	p.TireGripCoeff = 100
	seg := track.Segment{Length: 5000, Radius: 0}

	state := initialState(p)
	for i := 0; i < 2000; i++ {
		state = Step(state, seg, 0.01, p)
		if state.Velocity > physics.MaxVelocity {
			t.Fatalf("velocity %g exceeds clamp %g", state.Velocity, physics.MaxVelocity)
		}
		if state.Velocity < 0 {
			t.Fatalf("velocity went negative: %g", state.Velocity)
		}
	}
}

func TestStepNonFinitePropagates(t *testing.T) {
	p := vehicle.Default()
	p.DownforceCoeff = math.NaN()
	seg := track.Segment{Length: 200, Radius: 0}

	next := Step(initialState(p), seg, 0.01, p)
	if next.IsValid() {
		t.Error("NaN parameter should surface as an invalid state")
	}
}
