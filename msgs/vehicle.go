package msgs

// VehicleState reports the kinematic state of a simulated vehicle.
type VehicleState struct {
	State               ActorState `json:"state" msgpack:"state"`
	Velocity            Vector3    `json:"velocity" msgpack:"velocity"`
	AngularVelocity     Vector3    `json:"angular_velocity" msgpack:"angular_velocity"`
	Acceleration        Vector3    `json:"acceleration" msgpack:"acceleration"`
	AngularAcceleration Vector3    `json:"angular_acceleration" msgpack:"angular_acceleration"`
}

// NewVehicleState creates a VehicleState with default values.
func NewVehicleState() *VehicleState {
	return &VehicleState{State: ActorState{Pose: NewPose()}}
}

// EffectorState reports the pose of a single control effector.
type EffectorState struct {
	Pose Pose `json:"pose" msgpack:"pose"`
}

// NewEffectorState creates an EffectorState with default values.
func NewEffectorState() *EffectorState {
	return &EffectorState{Pose: NewPose()}
}
