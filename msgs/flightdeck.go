package msgs

// PrimaryFlightDisplayData carries the values shown on a primary flight
// display.
type PrimaryFlightDisplayData struct {
	AirspeedKts                  float64 `json:"airspeed_kts" msgpack:"airspeed_kts"`
	TrueAirspeedKts              float64 `json:"true_airspeed_kts" msgpack:"true_airspeed_kts"`
	AltitudeFt                   float64 `json:"altitude_ft" msgpack:"altitude_ft"`
	TargetAltitudeFt             float64 `json:"target_altitude_ft" msgpack:"target_altitude_ft"`
	AltimeterPressureSettingInhg float64 `json:"altimeter_pressure_setting_inhg" msgpack:"altimeter_pressure_setting_inhg"`
	VerticalSpeedFpm             float64 `json:"vertical_speed_fpm" msgpack:"vertical_speed_fpm"`
	PitchDeg                     float64 `json:"pitch_deg" msgpack:"pitch_deg"`
	RollDeg                      float64 `json:"roll_deg" msgpack:"roll_deg"`
	SideSlipFps2                 float64 `json:"side_slip_fps2" msgpack:"side_slip_fps2"`
	HeadingDeg                   float64 `json:"heading_deg" msgpack:"heading_deg"`
	HSICourseSelectHeadingDeg    float64 `json:"hsi_course_select_heading_deg" msgpack:"hsi_course_select_heading_deg"`
	HSICourseDeviationDeg        float64 `json:"hsi_course_deviation_deg" msgpack:"hsi_course_deviation_deg"`
	HSIMode                      int64   `json:"hsi_mode" msgpack:"hsi_mode"`
}

// NewPrimaryFlightDisplayData creates a PrimaryFlightDisplayData with default
// values.
func NewPrimaryFlightDisplayData() *PrimaryFlightDisplayData {
	return &PrimaryFlightDisplayData{AltimeterPressureSettingInhg: 29.92}
}
