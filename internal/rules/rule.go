// internal/rules/rule.go

package rules

// UnnamedRule is the placeholder carried in a Decision when a rule definition
// omits its name.
const UnnamedRule = "Unnamed Rule"

// AC operating modes. Mode is free-form beyond these known values.
const (
	ModeOff   = "OFF"
	ModeEco   = "ECO"
	ModeCool  = "COOL"
	ModeSleep = "SLEEP"
)

const (
	FanLow    = "LOW"
	FanMedium = "MEDIUM"
	FanHigh   = "HIGH"
)

// Rule is a named, prioritized bundle of AND-ed conditions mapped to one
// action. A rule with no conditions matches vacuously; an unspecified
// priority is 0.
type Rule struct {
	Name       string      `json:"name" yaml:"name"`
	Priority   int         `json:"priority" yaml:"priority"`
	Conditions []Condition `json:"conditions" yaml:"conditions"`
	Action     Action      `json:"action" yaml:"action"`
}

// Action is the AC configuration applied when a rule fires. Setpoint is nil
// when the mode implies no target temperature.
type Action struct {
	Mode     string   `json:"mode" yaml:"mode"`
	FanSpeed string   `json:"fan_speed" yaml:"fan_speed"`
	Setpoint *float64 `json:"setpoint" yaml:"setpoint"`
	Reason   string   `json:"reason" yaml:"reason"`
}

// Decision is the selected rule's action plus its provenance.
type Decision struct {
	RuleName string `json:"rule_name"`
	Action   Action `json:"action"`
	Priority int    `json:"priority"`
}
