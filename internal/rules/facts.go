// internal/rules/facts.go

package rules

// Facts maps fact names to their observed values. A facts mapping is supplied
// fresh per evaluation and is never mutated by the engine.
type Facts map[string]interface{}

// Known fact names supplied by the caller.
const (
	FactTemperature = "temperature" // numeric, °C
	FactHumidity    = "humidity"    // numeric, relative %
	FactOccupancy   = "occupancy"
	FactTimeOfDay   = "time_of_day"
	FactWindowsOpen = "windows_open" // boolean
)

const (
	OccupancyOccupied = "OCCUPIED"
	OccupancyEmpty    = "EMPTY"
)

const (
	TimeMorning   = "MORNING"
	TimeAfternoon = "AFTERNOON"
	TimeEvening   = "EVENING"
	TimeNight     = "NIGHT"
)
