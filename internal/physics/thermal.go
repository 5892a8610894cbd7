package physics

import "github.com/san-kum/lapsim/internal/vehicle"

// tireCount scales slip-energy heating across all four contact patches.
const tireCount = 4.0

// TireTempRate returns dT/dt in K/s for the tire set: slip-energy heating
// proportional to traction×velocity minus convective cooling toward ambient.
func TireTempRate(p vehicle.Params, v, throttle, grip, tireTemp float64) float64 {
	traction := Traction(p, v, throttle, grip)
	heating := (traction * v * tireCount) / (TireMass * TireSpecificHeat)
	cooling := HeatTransferCoeff * (tireTemp - AmbientTemp) / TireMass
	return heating - cooling
}
