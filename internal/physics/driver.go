package physics

// Bang-bang speed controller thresholds. The hysteresis band around the
// target avoids throttle/brake oscillation near the cornering cap.
const (
	throttleBand  = 0.95
	brakeBand     = 1.05
	cruiseSetting = 0.3
	brakeSetting  = 0.8
)

// SpeedControl is the stateless throttle/brake policy: full throttle below
// the band, fixed braking above it, light cruise throttle inside it.
func SpeedControl(v, targetSpeed float64) (throttle, brake float64) {
	switch {
	case v < targetSpeed*throttleBand:
		return 1.0, 0.0
	case v > targetSpeed*brakeBand:
		return 0.0, brakeSetting
	default:
		return cruiseSetting, 0.0
	}
}
