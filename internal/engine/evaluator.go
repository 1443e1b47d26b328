// internal/engine/evaluator.go

package engine

import (
	"fmt"
	"strings"

	"github.com/imellyn/rulebasedlt/internal/rules"
)

// EvaluateCondition reports whether a single condition holds against the given
// facts. A malformed condition (wrong arity, non-string field or operator,
// field absent from the facts, unknown operator) evaluates to false; the
// function never errors.
//
// When both the condition value and the fact value are numeric they compare
// as float64. Otherwise both sides compare as upper-cased strings of their
// textual form, so enumerations match case-insensitively and a boolean fact
// equals the literal "true" in any casing.
func EvaluateCondition(cond rules.Condition, facts rules.Facts) bool {
	field, ok := cond.Field()
	if !ok {
		return false
	}
	operator, ok := cond.Operator()
	if !ok {
		return false
	}
	value, _ := cond.Value()

	actual, ok := facts[field]
	if !ok {
		return false
	}

	actualNum, actualIsNum := asNumber(actual)
	valueNum, valueIsNum := asNumber(value)
	if actualIsNum && valueIsNum {
		return compareNumbers(actualNum, valueNum, operator)
	}
	return compareText(textForm(actual), textForm(value), operator)
}

// asNumber classifies a decoded value as numeric. JSON decoding yields
// float64, YAML decoding yields int or float64; the remaining widths cover
// values built in code.
func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func textForm(v interface{}) string {
	return strings.ToUpper(fmt.Sprint(v))
}

func compareNumbers(actual, value float64, operator string) bool {
	switch operator {
	case rules.OperatorEqual:
		return actual == value
	case rules.OperatorNotEqual:
		return actual != value
	case rules.OperatorGreaterThanOrEqual:
		return actual >= value
	case rules.OperatorLessThanOrEqual:
		return actual <= value
	case rules.OperatorGreaterThan:
		return actual > value
	case rules.OperatorLessThan:
		return actual < value
	default:
		return false
	}
}

// compareText orders string-coerced operands lexicographically.
func compareText(actual, value string, operator string) bool {
	switch operator {
	case rules.OperatorEqual:
		return actual == value
	case rules.OperatorNotEqual:
		return actual != value
	case rules.OperatorGreaterThanOrEqual:
		return actual >= value
	case rules.OperatorLessThanOrEqual:
		return actual <= value
	case rules.OperatorGreaterThan:
		return actual > value
	case rules.OperatorLessThan:
		return actual < value
	default:
		return false
	}
}
