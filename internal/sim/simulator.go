package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/lapsim/internal/physics"
	"github.com/san-kum/lapsim/internal/track"
	"github.com/san-kum/lapsim/internal/vehicle"
)

const DefaultDt = 0.01

// Observer receives each recorded telemetry point as the run progresses.
type Observer interface {
	OnStep(s VehicleState)
}

// Simulator drives the integration step across a track definition. A
// simulator's behavior is fully determined by its explicit configuration;
// there are no ambient toggles.
type Simulator struct {
	params    vehicle.Params
	track     *track.Track
	dt        float64
	observers []Observer
}

type Option func(*Simulator)

func WithDt(dt float64) Option {
	return func(s *Simulator) { s.dt = dt }
}

func WithObserver(o Observer) Option {
	return func(s *Simulator) { s.observers = append(s.observers, o) }
}

// New validates the vehicle parameters and builds a simulator. Validation
// failures surface here, before any integration starts.
func New(p vehicle.Params, tr *track.Track, opts ...Option) (*Simulator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s := &Simulator{
		params: p,
		track:  tr,
		dt:     DefaultDt,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.dt <= 0 {
		return nil, fmt.Errorf("dt must be positive, got %g", s.dt)
	}
	return s, nil
}

// Result holds the outcome of one lap: the full telemetry record, the lap
// time, and the exit speed of each non-empty segment.
type Result struct {
	Telemetry  *Telemetry
	LapTime    float64
	Steps      int
	ExitSpeeds []float64
}

// StepError marks a run that produced a non-finite state.
type StepError struct {
	Step    int
	Time    float64
	Message string
}

func (e StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}

// Run simulates one full lap from a standing start. The pre-step state is
// recorded into telemetry before every integration step; the final state of
// each segment carries into the next. Zero-length segments are skipped
// without stepping. A non-finite state aborts the run.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	state := initialState(s.params)

	result := &Result{
		Telemetry:  NewTelemetry(1024),
		ExitSpeeds: make([]float64, 0, s.track.Len()),
	}

	for i := 0; i < s.track.Len(); i++ {
		seg := s.track.At(i)
		if seg.Length <= 0 {
			continue
		}
		segmentEnd := state.Position + seg.Length

		for state.Position < segmentEnd {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			default:
			}

			result.Telemetry.append(state)
			for _, obs := range s.observers {
				obs.OnStep(state)
			}

			state = Step(state, seg, s.dt, s.params)
			result.Steps++

			if !state.IsValid() {
				return result, StepError{
					Step:    result.Steps,
					Time:    state.Time,
					Message: fmt.Sprintf("non-finite state in segment %d (%s)", i, seg.Label),
				}
			}
		}
		result.ExitSpeeds = append(result.ExitSpeeds, state.Velocity)
	}

	result.LapTime = state.Time
	return result, nil
}

// initialState is the standing start: at rest, tires at ambient temperature,
// axles carrying the static weight split.
func initialState(p vehicle.Params) VehicleState {
	staticLoad := p.Mass * physics.Gravity
	return VehicleState{
		TireTemp:  physics.AmbientTemp,
		FrontLoad: staticLoad * p.WeightDistFront,
		RearLoad:  staticLoad * p.WeightDistRear,
	}
}
