package sim

import (
	"github.com/san-kum/lapsim/internal/physics"
	"github.com/san-kum/lapsim/internal/track"
	"github.com/san-kum/lapsim/internal/vehicle"
)

// derivatives evaluates the coupled state derivatives at st: the controller
// picks throttle and brake against the cornering cap, the force balance gives
// acceleration, and the thermal model gives the tire-temperature rate.
func derivatives(st VehicleState, seg track.Segment, p vehicle.Params) (accel, tempRate, throttle, brake float64) {
	grip := physics.GripMultiplier(p, st.FrontLoad, st.RearLoad, st.TireTemp)
	targetSpeed := physics.CornerSpeedCap(p, seg.Radius, grip)
	throttle, brake = physics.SpeedControl(st.Velocity, targetSpeed)

	traction := physics.Traction(p, st.Velocity, throttle, grip)
	drag := physics.Drag(p, st.Velocity)
	brakeForce := physics.BrakeForce(p, brake)
	gravity := physics.GravityAlong(p, seg.Inclination)

	netForce := traction - drag - brakeForce - gravity
	accel = netForce / p.Mass
	tempRate = physics.TireTempRate(p, st.Velocity, throttle, grip, st.TireTemp)
	return accel, tempRate, throttle, brake
}

// advance builds the intermediate RK4 evaluation point: the state moved
// forward by h under the given derivative pair. Axle loads carry over
// unchanged; they are recomputed once per full step.
func advance(cur VehicleState, accel, tempRate, h float64) VehicleState {
	st := cur
	st.Velocity = cur.Velocity + accel*h
	st.Position = cur.Position + st.Velocity*h
	st.Time = cur.Time + h
	st.TireTemp = cur.TireTemp + tempRate*h
	return st
}

// Step computes the next vehicle state from the current one over a fixed dt
// using classic RK4 on the coupled (acceleration, tire-temperature) pair.
// It is a pure function: identical inputs produce identical outputs.
func Step(cur VehicleState, seg track.Segment, dt float64, p vehicle.Params) VehicleState {
	a1, r1, throttle, brake := derivatives(cur, seg, p)
	a2, r2, _, _ := derivatives(advance(cur, a1, r1, dt/2), seg, p)
	a3, r3, _, _ := derivatives(advance(cur, a2, r2, dt/2), seg, p)
	a4, r4, _, _ := derivatives(advance(cur, a3, r3, dt), seg, p)

	accel := (a1 + 2*a2 + 2*a3 + a4) / 6.0
	tempRate := (r1 + 2*r2 + 2*r3 + r4) / 6.0

	next := VehicleState{
		Position:     cur.Position + cur.Velocity*dt,
		Velocity:     cur.Velocity + accel*dt,
		Acceleration: accel,
		Time:         cur.Time + dt,
		Throttle:     throttle,
		Brake:        brake,
		TireTemp:     cur.TireTemp + tempRate*dt,
	}

	if next.Velocity < 0 {
		next.Velocity = 0
	}
	if next.Velocity > physics.MaxVelocity {
		next.Velocity = physics.MaxVelocity
	}

	next.FrontLoad, next.RearLoad = axleLoads(p, next.Velocity, accel)
	return next
}

// axleLoads distributes the total vertical load by the static weight
// fractions and shifts the longitudinal load-transfer term rearward under
// acceleration. The sum always equals weight plus downforce.
func axleLoads(p vehicle.Params, v, accel float64) (front, rear float64) {
	total := p.Mass*physics.Gravity + physics.Downforce(p, v)
	transfer := accel * p.Mass * p.CenterGravity / p.Wheelbase
	front = total*p.WeightDistFront - transfer
	rear = total*p.WeightDistRear + transfer
	return front, rear
}
