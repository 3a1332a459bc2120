package types

import (
	"errors"
)

// ParameterCategory defines the kind of a Parameter. The declaration order of
// the constants is load-bearing: parameters are stored and evaluated in
// Named, Flag, Required, Optional order.
type ParameterCategory int

const (
	Named    ParameterCategory = iota // Named denotes a parameter matched by alias which consumes the following token as its value
	Flag                              // Flag denotes a boolean parameter matched by alias which takes no value
	Required                          // Required denotes a positional parameter which must be supplied
	Optional                          // Optional denotes a positional parameter which may be omitted
)

// String returns the string representation of a ParameterCategory
func (c ParameterCategory) String() string {
	switch c {
	case Named:
		return "named"
	case Flag:
		return "flag"
	case Required:
		return "required"
	case Optional:
		return "optional"
	}

	return "unknown"
}

// Positional returns true for categories matched by argument order rather than by alias
func (c ParameterCategory) Positional() bool {
	return c == Required || c == Optional
}

var (
	ErrDuplicateAlias  = errors.New("duplicate alias")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrRequiredMissing = errors.New("missing required argument")
	ErrUnknownAlias    = errors.New("unknown alias")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrParseInt        = errors.New("not a valid integer")
	ErrParseFloat      = errors.New("not a valid floating point number")
	ErrParseBool       = errors.New("not a valid boolean")
	ErrParseTime       = errors.New("not a valid date/time")
	ErrParseDuration   = errors.New("not a valid duration")
	ErrParseNumber     = errors.New("not a valid number")
)
