// internal/rules/condition.go

package rules

const (
	OperatorEqual              = "=="
	OperatorNotEqual           = "!="
	OperatorGreaterThanOrEqual = ">="
	OperatorLessThanOrEqual    = "<="
	OperatorGreaterThan        = ">"
	OperatorLessThan           = "<"
)

var SupportedOperators = []string{
	OperatorEqual,
	OperatorNotEqual,
	OperatorGreaterThanOrEqual,
	OperatorLessThanOrEqual,
	OperatorGreaterThan,
	OperatorLessThan,
}

// Condition is an ordered [field, operator, value] triple as it appears on the
// wire (a 3-element JSON or YAML array). It is kept in its wire shape so that
// a malformed triple stays inert instead of failing the whole rule set.
type Condition []interface{}

// Field returns the fact name of a well-formed condition.
func (c Condition) Field() (string, bool) {
	if len(c) != 3 {
		return "", false
	}
	field, ok := c[0].(string)
	return field, ok
}

// Operator returns the comparison operator of a well-formed condition.
func (c Condition) Operator() (string, bool) {
	if len(c) != 3 {
		return "", false
	}
	operator, ok := c[1].(string)
	return operator, ok
}

// Value returns the literal a well-formed condition compares against.
func (c Condition) Value() (interface{}, bool) {
	if len(c) != 3 {
		return nil, false
	}
	return c[2], true
}
