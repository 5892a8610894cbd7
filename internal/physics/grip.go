package physics

import (
	"math"

	"github.com/san-kum/lapsim/internal/vehicle"
)

// Temperature window boundaries for the grip scale.
const (
	coldTempLimit     = 80.0  // °C, below this the tires are cold
	overheatTempLimit = 120.0 // °C, above this grip decays
	maxTempLoss       = 200.0 // °C, decay bottoms out here
)

// tempScale is the unitless temperature factor on grip: a linear ramp from
// 0.7 at 0°C up to 1.0 at 80°C, flat through the working window, then a
// linear decay losing half the grip by 200°C.
func tempScale(tireTemp float64) float64 {
	switch {
	case tireTemp < 0:
		return 0.7
	case tireTemp < coldTempLimit:
		return 0.7 + 0.3*(tireTemp/coldTempLimit)
	case tireTemp > maxTempLoss:
		return 0.5
	case tireTemp > overheatTempLimit:
		return 1.0 - 0.5*((tireTemp-overheatTempLimit)/(maxTempLoss-overheatTempLimit))
	default:
		return 1.0
	}
}

// GripMultiplier combines the normal-load ratio of both axles against the
// static load with the tire-temperature window.
func GripMultiplier(p vehicle.Params, frontLoad, rearLoad, tireTemp float64) float64 {
	staticLoad := p.Mass * Gravity
	loadRatio := (frontLoad + rearLoad) / staticLoad
	if loadRatio < 0 {
		loadRatio = 0
	}
	return math.Sqrt(loadRatio) * tempScale(tireTemp)
}

// CornerSpeedCap returns the maximum sustainable speed through a corner of
// the given radius. Radius 0 denotes a straight and returns the sentinel cap.
func CornerSpeedCap(p vehicle.Params, radius, grip float64) float64 {
	if radius == 0 {
		return StraightSpeedCap
	}
	return math.Sqrt(p.TireGripCoeff * grip * Gravity * radius)
}
