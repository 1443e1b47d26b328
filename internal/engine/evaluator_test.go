package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imellyn/rulebasedlt/internal/rules"
)

func sampleFacts() rules.Facts {
	return rules.Facts{
		"temperature":  31.0,
		"humidity":     75.0,
		"occupancy":    "OCCUPIED",
		"time_of_day":  "AFTERNOON",
		"windows_open": false,
	}
}

func TestEvaluateCondition_NumericComparisons(t *testing.T) {
	facts := sampleFacts()

	tests := []struct {
		name string
		cond rules.Condition
		want bool
	}{
		{"gte at boundary", rules.Condition{"temperature", ">=", 31.0}, true},
		{"gte above", rules.Condition{"temperature", ">=", 30.0}, true},
		{"gte below", rules.Condition{"temperature", ">=", 32.0}, false},
		{"lte", rules.Condition{"temperature", "<=", 31.0}, true},
		{"gt strict", rules.Condition{"temperature", ">", 31.0}, false},
		{"lt strict", rules.Condition{"humidity", "<", 80.0}, true},
		{"eq", rules.Condition{"humidity", "==", 75.0}, true},
		{"neq", rules.Condition{"humidity", "!=", 75.0}, false},
		{"int literal against float fact", rules.Condition{"temperature", ">=", 30}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateCondition(tt.cond, facts))
		})
	}
}

func TestEvaluateCondition_CaseInsensitiveStrings(t *testing.T) {
	facts := sampleFacts()

	assert.True(t, EvaluateCondition(rules.Condition{"occupancy", "==", "occupied"}, facts))
	assert.True(t, EvaluateCondition(rules.Condition{"occupancy", "==", "OCCUPIED"}, facts))
	assert.False(t, EvaluateCondition(rules.Condition{"occupancy", "==", "EMPTY"}, facts))
	assert.True(t, EvaluateCondition(rules.Condition{"occupancy", "!=", "empty"}, facts))
}

func TestEvaluateCondition_BooleanFacts(t *testing.T) {
	facts := rules.Facts{"windows_open": true}

	// Booleans take the string path: "true" in any casing matches the fact.
	assert.True(t, EvaluateCondition(rules.Condition{"windows_open", "==", true}, facts))
	assert.True(t, EvaluateCondition(rules.Condition{"windows_open", "==", "TRUE"}, facts))
	assert.True(t, EvaluateCondition(rules.Condition{"windows_open", "==", "true"}, facts))
	assert.False(t, EvaluateCondition(rules.Condition{"windows_open", "==", false}, facts))
}

func TestEvaluateCondition_LexicographicOrderingOnStrings(t *testing.T) {
	facts := rules.Facts{"time_of_day": "MORNING"}

	assert.True(t, EvaluateCondition(rules.Condition{"time_of_day", ">", "AFTERNOON"}, facts))
	assert.True(t, EvaluateCondition(rules.Condition{"time_of_day", "<=", "NIGHT"}, facts))
}

func TestEvaluateCondition_MixedNumericAndString(t *testing.T) {
	// A numeric fact against a non-numeric literal falls back to string
	// coercion of both sides.
	facts := rules.Facts{"temperature": 30.0}

	assert.True(t, EvaluateCondition(rules.Condition{"temperature", "==", "30"}, facts))
	assert.False(t, EvaluateCondition(rules.Condition{"temperature", "==", "warm"}, facts))
}

func TestEvaluateCondition_MalformedConditionIsFalse(t *testing.T) {
	facts := sampleFacts()

	tests := []struct {
		name string
		cond rules.Condition
	}{
		{"missing value", rules.Condition{"temperature", ">="}},
		{"empty", rules.Condition{}},
		{"nil", nil},
		{"extra element", rules.Condition{"temperature", ">=", 30.0, "extra"}},
		{"non-string field", rules.Condition{42, ">=", 30.0}},
		{"non-string operator", rules.Condition{"temperature", 7, 30.0}},
		{"unknown field", rules.Condition{"wind_speed", ">=", 10.0}},
		{"unknown operator", rules.Condition{"temperature", "~=", 30.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, EvaluateCondition(tt.cond, facts))
		})
	}
}
