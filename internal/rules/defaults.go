// internal/rules/defaults.go

package rules

// DefaultRules returns the built-in AC control rule set. Callers get a fresh
// slice on every call and may edit it freely.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "Windows open",
			Priority: 100,
			Conditions: []Condition{
				{FactWindowsOpen, OperatorEqual, true},
			},
			Action: Action{
				Mode:     ModeOff,
				FanSpeed: FanLow,
				Reason:   "Windows are open → turn AC off",
			},
		},
		{
			Name:     "Too cold",
			Priority: 95,
			Conditions: []Condition{
				{FactTemperature, OperatorLessThanOrEqual, 22.0},
			},
			Action: Action{
				Mode:     ModeOff,
				FanSpeed: FanLow,
				Reason:   "Already too cold → turn AC off",
			},
		},
		{
			Name:     "No one home → eco mode",
			Priority: 90,
			Conditions: []Condition{
				{FactOccupancy, OperatorEqual, OccupancyEmpty},
				{FactTemperature, OperatorGreaterThanOrEqual, 24.0},
			},
			Action: Action{
				Mode:     ModeEco,
				FanSpeed: FanLow,
				Setpoint: setpoint(27),
				Reason:   "Home empty → eco mode to save energy",
			},
		},
		{
			Name:     "Hot & humid (occupied)",
			Priority: 80,
			Conditions: []Condition{
				{FactOccupancy, OperatorEqual, OccupancyOccupied},
				{FactTemperature, OperatorGreaterThanOrEqual, 30.0},
				{FactHumidity, OperatorGreaterThanOrEqual, 70.0},
			},
			Action: Action{
				Mode:     ModeCool,
				FanSpeed: FanHigh,
				Setpoint: setpoint(23),
				Reason:   "Hot and very humid → strong cooling",
			},
		},
		{
			Name:     "Night sleep mode",
			Priority: 75,
			Conditions: []Condition{
				{FactOccupancy, OperatorEqual, OccupancyOccupied},
				{FactTimeOfDay, OperatorEqual, TimeNight},
				{FactTemperature, OperatorGreaterThanOrEqual, 26.0},
			},
			Action: Action{
				Mode:     ModeSleep,
				FanSpeed: FanLow,
				Setpoint: setpoint(26),
				Reason:   "Night time → sleep mode for comfort",
			},
		},
		{
			Name:     "Hot (occupied)",
			Priority: 70,
			Conditions: []Condition{
				{FactOccupancy, OperatorEqual, OccupancyOccupied},
				{FactTemperature, OperatorGreaterThanOrEqual, 28.0},
			},
			Action: Action{
				Mode:     ModeCool,
				FanSpeed: FanMedium,
				Setpoint: setpoint(24),
				Reason:   "High temperature → cooling",
			},
		},
		{
			Name:     "Slightly warm (occupied)",
			Priority: 60,
			Conditions: []Condition{
				{FactOccupancy, OperatorEqual, OccupancyOccupied},
				{FactTemperature, OperatorGreaterThanOrEqual, 26.0},
				{FactTemperature, OperatorLessThan, 28.0},
			},
			Action: Action{
				Mode:     ModeCool,
				FanSpeed: FanLow,
				Setpoint: setpoint(25),
				Reason:   "Slightly warm → gentle cooling",
			},
		},
	}
}

func setpoint(degrees float64) *float64 {
	return &degrees
}
