package msgs

// AutopilotCommand carries autopilot mode switches and setpoints.
type AutopilotCommand struct {
	FlightPlan           string  `json:"flight_plan" msgpack:"flight_plan"`
	FlightPlanCommand    int64   `json:"flight_plan_command" msgpack:"flight_plan_command"`
	UseManualSetpoints   bool    `json:"use_manual_setpoints" msgpack:"use_manual_setpoints"`
	AttitudeHold         bool    `json:"attitude_hold" msgpack:"attitude_hold"`
	AltitudeHold         bool    `json:"altitude_hold" msgpack:"altitude_hold"`
	AltitudeSetpointFt   float64 `json:"altitude_setpoint_ft" msgpack:"altitude_setpoint_ft"`
	AirspeedHold         bool    `json:"airspeed_hold" msgpack:"airspeed_hold"`
	AirspeedSetpointKts  float64 `json:"airspeed_setpoint_kts" msgpack:"airspeed_setpoint_kts"`
	HeadingHold          bool    `json:"heading_hold" msgpack:"heading_hold"`
	HeadingSetByWaypoint bool    `json:"heading_set_by_waypoint" msgpack:"heading_set_by_waypoint"`
	HeadingSetpointDeg   float64 `json:"heading_setpoint_deg" msgpack:"heading_setpoint_deg"`
	TargetWpLatitudeDeg  float64 `json:"target_wp_latitude_deg" msgpack:"target_wp_latitude_deg"`
	TargetWpLongitudeDeg float64 `json:"target_wp_longitude_deg" msgpack:"target_wp_longitude_deg"`
}

// NewAutopilotCommand creates an AutopilotCommand with default values.
func NewAutopilotCommand() *AutopilotCommand {
	return &AutopilotCommand{}
}

// FlightControlCommand carries normalized pilot-level control axes.
type FlightControlCommand struct {
	// PowerCmd is an array so that vertical lift and horizontal cruise
	// power can be commanded separately.
	PowerCmd       []float64 `json:"power_cmd" msgpack:"power_cmd"`
	RollCmd        float64   `json:"roll_cmd" msgpack:"roll_cmd"`
	PitchCmd       float64   `json:"pitch_cmd" msgpack:"pitch_cmd"`
	YawCmd         float64   `json:"yaw_cmd" msgpack:"yaw_cmd"`
	ThrustTiltCmd  float64   `json:"thrust_tilt_cmd" msgpack:"thrust_tilt_cmd"`
	FlapCmd        float64   `json:"flap_cmd" msgpack:"flap_cmd"`
	SpeedbrakeCmd  float64   `json:"speedbrake_cmd" msgpack:"speedbrake_cmd"`
	LandingGearCmd float64   `json:"landing_gear_cmd" msgpack:"landing_gear_cmd"`
	WheelSteerCmd  float64   `json:"wheel_steer_cmd" msgpack:"wheel_steer_cmd"`
	WheelBrakeCmd  float64   `json:"wheel_brake_cmd" msgpack:"wheel_brake_cmd"`
}

// NewFlightControlCommand creates a FlightControlCommand with default values.
func NewFlightControlCommand() *FlightControlCommand {
	return &FlightControlCommand{PowerCmd: []float64{0}}
}

// AircraftEffectorCommand carries per-effector command arrays in physical
// units.
type AircraftEffectorCommand struct {
	ThrottleCmd           []float64 `json:"throttle_cmd" msgpack:"throttle_cmd"`
	AileronCmdAngleRad    []float64 `json:"aileron_cmd_angle_rad" msgpack:"aileron_cmd_angle_rad"`
	ElevatorCmdAngleRad   []float64 `json:"elevator_cmd_angle_rad" msgpack:"elevator_cmd_angle_rad"`
	RudderCmdAngleRad     []float64 `json:"rudder_cmd_angle_rad" msgpack:"rudder_cmd_angle_rad"`
	ThrustTiltCmdAngleRad []float64 `json:"thrust_tilt_cmd_angle_rad" msgpack:"thrust_tilt_cmd_angle_rad"`
	FlapCmdAngleRad       []float64 `json:"flap_cmd_angle_rad" msgpack:"flap_cmd_angle_rad"`
	SpeedbrakeCmdAngleRad []float64 `json:"speedbrake_cmd_angle_rad" msgpack:"speedbrake_cmd_angle_rad"`
	LandingGearCmd        []float64 `json:"landing_gear_cmd" msgpack:"landing_gear_cmd"`
	WheelSteerCmdAngleRad []float64 `json:"wheel_steer_cmd_angle_rad" msgpack:"wheel_steer_cmd_angle_rad"`
	WheelBrakeCmd         []float64 `json:"wheel_brake_cmd" msgpack:"wheel_brake_cmd"`
}

// NewAircraftEffectorCommand creates an AircraftEffectorCommand with default
// values.
func NewAircraftEffectorCommand() *AircraftEffectorCommand {
	return &AircraftEffectorCommand{
		ThrottleCmd:           []float64{},
		AileronCmdAngleRad:    []float64{},
		ElevatorCmdAngleRad:   []float64{},
		RudderCmdAngleRad:     []float64{},
		ThrustTiltCmdAngleRad: []float64{},
		FlapCmdAngleRad:       []float64{},
		SpeedbrakeCmdAngleRad: []float64{},
		LandingGearCmd:        []float64{},
		WheelSteerCmdAngleRad: []float64{},
		WheelBrakeCmd:         []float64{},
	}
}
