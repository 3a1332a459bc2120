package argmap

import (
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"

	"github.com/hwerle/argmap/types"
	"github.com/hwerle/argmap/util"
)

// Identity passes the raw value through unchanged. Equivalent to supplying no
// ParseFunc at all.
func Identity(value string) (any, error) {
	return value, nil
}

// IntValue parses the raw value as a base-10 int
func IntValue(value string) (any, error) {
	if parsed, err := strconv.Atoi(value); err == nil {
		return parsed, nil
	}

	return nil, fmt.Errorf(FmtErrorWithString, types.ErrParseInt, value)
}

// Int64Value parses the raw value as a base-10 int64
func Int64Value(value string) (any, error) {
	if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
		return parsed, nil
	}

	return nil, fmt.Errorf(FmtErrorWithString, types.ErrParseInt, value)
}

// Float64Value parses the raw value as a float64
func Float64Value(value string) (any, error) {
	if parsed, err := strconv.ParseFloat(value, 64); err == nil {
		return parsed, nil
	}

	return nil, fmt.Errorf(FmtErrorWithString, types.ErrParseFloat, value)
}

// BoolValue parses the raw value as a boolean ("1", "t", "true", ...)
func BoolValue(value string) (any, error) {
	if parsed, err := strconv.ParseBool(value); err == nil {
		return parsed, nil
	}

	return nil, fmt.Errorf(FmtErrorWithString, types.ErrParseBool, value)
}

// TimeValue parses the raw value as a date/time in the local timezone,
// accepting the formats recognized by dateparse
func TimeValue(value string) (any, error) {
	if parsed, err := dateparse.ParseLocal(value); err == nil {
		return parsed, nil
	}

	return nil, fmt.Errorf(FmtErrorWithString, types.ErrParseTime, value)
}

// DurationValue parses the raw value as a time.Duration ("300ms", "1h30m", ...)
func DurationValue(value string) (any, error) {
	if parsed, err := time.ParseDuration(value); err == nil {
		return parsed, nil
	}

	return nil, fmt.Errorf(FmtErrorWithString, types.ErrParseDuration, value)
}

// NumericValue parses the raw value as either an int64 or a float64,
// whichever fits first
func NumericValue(value string) (any, error) {
	num, ok := util.ParseNumeric(value)
	if !ok {
		return nil, fmt.Errorf(FmtErrorWithString, types.ErrParseNumber, value)
	}
	if num.IsInt {
		return num.Int, nil
	}

	return num.Float, nil
}
