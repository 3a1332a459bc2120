package util

import "strconv"

// Numeric holds the result of ParseNumeric. Exactly one of IsInt/IsFloat is
// set when parsing succeeded.
type Numeric struct {
	Int     int64
	Float   float64
	IsInt   bool
	IsFloat bool
}

// ParseNumeric classifies value as an integer or a floating point number.
// Integers are preferred - a value is only classified as a float when it
// cannot be represented as an int64.
func ParseNumeric(value string) (Numeric, bool) {
	if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
		return Numeric{Int: parsed, IsInt: true}, true
	}
	if parsed, err := strconv.ParseFloat(value, 64); err == nil {
		return Numeric{Float: parsed, IsFloat: true}, true
	}

	return Numeric{}, false
}
