package argmap

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/hwerle/argmap/types"
)

// Parameter declares a single named or positional slot. Apart from the
// pending raw value, which is owned by the mapping pass, a Parameter is
// immutable after construction.
type Parameter struct {
	category     types.ParameterCategory
	name         string
	aliases      []string
	parseFn      ParseFunc
	defaultValue any
	raw          string
	filled       bool
}

// flagParse ignores its input - the presence of a flag alias is its value
func flagParse(string) (any, error) {
	return true, nil
}

func newParameter(category types.ParameterCategory, name string, defaultValue any, parseFn ParseFunc, aliases ...string) (*Parameter, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: parameter name must not be empty", types.ErrInvalidArgument)
	}
	for _, alias := range aliases {
		if alias == "" {
			return nil, fmt.Errorf("%w: alias of parameter %q must not be empty", types.ErrInvalidArgument, name)
		}
	}

	return &Parameter{
		category:     category,
		name:         name,
		aliases:      append([]string{name}, aliases...),
		parseFn:      parseFn,
		defaultValue: defaultValue,
	}, nil
}

// NewNamed declares a parameter which is matched by alias and consumes the
// token following the alias as its raw value. A nil parseFn passes the raw
// value through unchanged.
func NewNamed(name string, defaultValue any, parseFn ParseFunc, aliases ...string) (*Parameter, error) {
	return newParameter(types.Named, name, defaultValue, parseFn, aliases...)
}

// NewFlag declares a boolean parameter which is matched by alias and takes no
// value. Its value reads true when the flag was seen and false otherwise.
func NewFlag(name string, aliases ...string) (*Parameter, error) {
	return newParameter(types.Flag, name, false, flagParse, aliases...)
}

// NewRequired declares a positional parameter which must be matched by the
// mapping pass. Required parameters have no alternate aliases and no usable
// default - an unmatched Required parameter fails the Map call itself.
func NewRequired(name string, parseFn ParseFunc) (*Parameter, error) {
	return newParameter(types.Required, name, nil, parseFn)
}

// NewOptional declares a positional parameter which may be omitted, in which
// case reads return defaultValue. Optional parameters have no alternate
// aliases.
func NewOptional(name string, defaultValue any, parseFn ParseFunc) (*Parameter, error) {
	return newParameter(types.Optional, name, defaultValue, parseFn)
}

// Name returns the parameter's primary identifier
func (p *Parameter) Name() string {
	return p.name
}

// Category returns the parameter's ParameterCategory
func (p *Parameter) Category() types.ParameterCategory {
	return p.category
}

// Aliases returns a copy of the parameter's alias list. The first entry is
// always the parameter name.
func (p *Parameter) Aliases() []string {
	aliases := make([]string, len(p.aliases))
	copy(aliases, p.aliases)

	return aliases
}

// HasAlias returns true when alias identifies this parameter
func (p *Parameter) HasAlias(alias string) bool {
	for _, a := range p.aliases {
		if a == alias {
			return true
		}
	}

	return false
}

// Value returns the parameter's value as mapped by the most recent pass.
// When no raw value was assigned the declared default is returned, otherwise
// the raw value is run through the parameter's ParseFunc. Conversion is not
// memoized - repeated reads parse again.
func (p *Parameter) Value() (any, error) {
	if !p.filled {
		return p.defaultValue, nil
	}
	if p.parseFn == nil {
		return p.raw, nil
	}

	return p.parseFn(p.raw)
}

// Describe returns a fixed-format human readable description of the
// parameter, used to build usage listings.
func (p *Parameter) Describe() string {
	switch p.category {
	case types.Flag:
		return strings.Join(p.aliases, ", ") + " (Flag, optional)"
	case types.Named:
		return strings.Join(p.aliases, ", ") + " <value> (Named, optional)"
	case types.Required:
		return p.name + " (Positional, required)"
	default:
		return p.name + " (Positional, optional)"
	}
}

func (p *Parameter) reset() {
	p.raw = ""
	p.filled = false
}

func (p *Parameter) setRaw(value string) {
	p.raw = value
	p.filled = true
}

// ValueOf returns the parameter's value converted to T. Values whose dynamic
// type does not match T are bridged between numeric kinds; any other
// conversion fails with types.ErrTypeMismatch.
func ValueOf[T any](p *Parameter) (T, error) {
	var zero T

	value, err := p.Value()
	if err != nil {
		return zero, err
	}

	return coerce[T](value)
}

func coerce[T any](value any) (T, error) {
	if typed, ok := value.(T); ok {
		return typed, nil
	}

	var zero T
	target := reflect.TypeOf(&zero).Elem()
	source := reflect.ValueOf(value)
	if source.IsValid() && numericKind(source.Kind()) && numericKind(target.Kind()) && source.Type().ConvertibleTo(target) {
		return source.Convert(target).Interface().(T), nil
	}

	return zero, fmt.Errorf("%w: cannot convert value of type %T to %s", types.ErrTypeMismatch, value, target)
}

func numericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}

	return false
}
