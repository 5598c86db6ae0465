package sim

import "math"

// VTimeInSec defines the time in the simulated space in the unit of second.
type VTimeInSec float64

// A TimeStamp is a discrete simulation time split into whole seconds and
// nanoseconds, as it travels on the bus.
type TimeStamp struct {
	Sec     int32  `json:"sec" msgpack:"sec"`
	Nanosec uint32 `json:"nanosec" msgpack:"nanosec"`
}

// noTimeSec marks a timestamp whose simulation time is not specified.
const noTimeSec = math.MinInt32

// NoSimTime returns the sentinel timestamp used when a message carries no
// simulation time.
func NoSimTime() TimeStamp {
	return TimeStamp{Sec: noTimeSec, Nanosec: 0}
}

// IsSet tells if the timestamp carries an actual simulation time.
func (t TimeStamp) IsSet() bool {
	return t.Sec != noTimeSec
}

// TimeStampFromSec converts a fractional second count into a TimeStamp.
func TimeStampFromSec(sec float64) TimeStamp {
	whole, frac := math.Modf(sec)
	return TimeStamp{
		Sec:     int32(whole),
		Nanosec: uint32(math.Round(frac * 1e9)),
	}
}

// ToSec converts the timestamp into a fractional second count.
func (t TimeStamp) ToSec() float64 {
	return float64(t.Sec) + float64(t.Nanosec)*1e-9
}
