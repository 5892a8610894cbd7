package physics

import (
	"math"

	"github.com/san-kum/lapsim/internal/vehicle"
)

// Drag returns the aerodynamic drag force in N at velocity v.
func Drag(p vehicle.Params, v float64) float64 {
	return 0.5 * AirDensity * p.FrontalArea * p.DragCoeff * v * v
}

// Downforce returns the aerodynamic downforce in N at velocity v.
func Downforce(p vehicle.Params, v float64) float64 {
	return 0.5 * AirDensity * p.FrontalArea * p.DownforceCoeff * v * v
}

// Traction returns the drive force in N: engine force at the given throttle,
// limited by the friction circle scaled by the grip multiplier.
func Traction(p vehicle.Params, v, throttle, grip float64) float64 {
	if v < MinVelocity {
		v = MinVelocity
	}
	engineForce := (p.MaxPower / v) * throttle
	maxTraction := p.TireGripCoeff * grip * p.Mass * Gravity
	return math.Min(engineForce, maxTraction)
}

// BrakeForce returns the retarding force in N at the given brake fraction.
func BrakeForce(p vehicle.Params, brake float64) float64 {
	return p.MaxBrakeTorque * brake / p.WheelRadius
}

// GravityAlong returns the component of gravity along the direction of travel
// for a segment inclined by the given angle in degrees. Positive uphill.
func GravityAlong(p vehicle.Params, inclinationDeg float64) float64 {
	return p.Mass * Gravity * math.Sin(inclinationDeg*math.Pi/180.0)
}
