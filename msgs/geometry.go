package msgs

// Vector3 is a three-dimensional vector.
type Vector3 struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
	Z float64 `json:"z" msgpack:"z"`
}

// Quaternion represents an orientation. The identity orientation has W=1.
type Quaternion struct {
	W float64 `json:"w" msgpack:"w"`
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
	Z float64 `json:"z" msgpack:"z"`
}

// Pose is a position and an orientation.
type Pose struct {
	Position    Vector3    `json:"position" msgpack:"position"`
	Orientation Quaternion `json:"orientation" msgpack:"orientation"`
}

// NewPose creates a pose at the origin with the identity orientation.
func NewPose() Pose {
	return Pose{Orientation: Quaternion{W: 1}}
}

// ActorState is the spatial state of an actor in the simulated world.
type ActorState struct {
	Pose Pose `json:"pose" msgpack:"pose"`
}
