package physics

// Physical constants shared by the force and thermal models.
const (
	Gravity    = 9.81  // m/s²
	AirDensity = 1.225 // kg/m³

	TireMass          = 10.0   // kg per tire
	TireSpecificHeat  = 1000.0 // J/(kg K)
	HeatTransferCoeff = 20.0   // W/(m² K)
	AmbientTemp       = 25.0   // °C

	// MinVelocity floors velocity inside force formulas so power-limited
	// traction never divides by zero.
	MinVelocity = 0.1 // m/s

	// MaxVelocity is a numerical-stability clamp, not a physical limit.
	MaxVelocity = 100.0 // m/s (~360 km/h)

	// StraightSpeedCap is the sentinel cornering cap on straights. It sits
	// far above MaxVelocity so it never binds.
	StraightSpeedCap = 1000.0 // m/s
)
