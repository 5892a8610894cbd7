package sim

import "math"

// VehicleState is the full integrable state of one run. It is owned
// exclusively by that run; telemetry stores value copies.
type VehicleState struct {
	Position     float64 // m
	Velocity     float64 // m/s
	Acceleration float64 // m/s²
	Time         float64 // s
	Throttle     float64 // 0-1
	Brake        float64 // 0-1
	TireTemp     float64 // °C
	FrontLoad    float64 // N
	RearLoad     float64 // N
}

// IsValid reports whether every field is finite.
func (s VehicleState) IsValid() bool {
	for _, v := range []float64{
		s.Position, s.Velocity, s.Acceleration, s.Time,
		s.Throttle, s.Brake, s.TireTemp, s.FrontLoad, s.RearLoad,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Telemetry is the append-only state record of a single run, one snapshot per
// integration step. It is never shared between runs and is read-only once the
// run completes.
type Telemetry struct {
	points []VehicleState
}

func NewTelemetry(capacity int) *Telemetry {
	return &Telemetry{points: make([]VehicleState, 0, capacity)}
}

func (t *Telemetry) append(s VehicleState) { t.points = append(t.points, s) }

func (t *Telemetry) Len() int              { return len(t.points) }
func (t *Telemetry) At(i int) VehicleState { return t.points[i] }

// Points returns a copy of the recorded states for external exporters.
func (t *Telemetry) Points() []VehicleState {
	out := make([]VehicleState, len(t.points))
	copy(out, t.points)
	return out
}
