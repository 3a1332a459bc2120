package argmap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hwerle/argmap/types"
)

func TestNewParameter_InvalidArgument(t *testing.T) {
	_, err := NewFlag("")
	assert.True(t, errors.Is(err, types.ErrInvalidArgument), "empty name should be rejected")

	_, err = NewNamed("p0", nil, nil, "")
	assert.True(t, errors.Is(err, types.ErrInvalidArgument), "empty alias should be rejected")

	_, err = NewRequired("", IntValue)
	assert.True(t, errors.Is(err, types.ErrInvalidArgument))
}

func TestParameter_AliasesStartWithName(t *testing.T) {
	p, err := NewFlag("s0", "-s", "--switch")
	assert.Nil(t, err)
	assert.Equal(t, []string{"s0", "-s", "--switch"}, p.Aliases())
	assert.True(t, p.HasAlias("s0"))
	assert.True(t, p.HasAlias("--switch"))
	assert.False(t, p.HasAlias("-x"))

	req, err := NewRequired("req0", nil)
	assert.Nil(t, err)
	assert.Equal(t, []string{"req0"}, req.Aliases(), "positional parameters have no alternate aliases")
}

func TestParameter_Describe(t *testing.T) {
	flag, _ := NewFlag("s0", "-s", "--switch")
	assert.Equal(t, "s0, -s, --switch (Flag, optional)", flag.Describe())

	named, _ := NewNamed("p0", "pe0", nil, "-p0")
	assert.Equal(t, "p0, -p0 <value> (Named, optional)", named.Describe())

	required, _ := NewRequired("req0", nil)
	assert.Equal(t, "req0 (Positional, required)", required.Describe())

	optional, _ := NewOptional("opt0", 12, nil)
	assert.Equal(t, "opt0 (Positional, optional)", optional.Describe())
}

func TestParameter_ValueIsLazyAndNotMemoized(t *testing.T) {
	calls := 0
	counting := func(value string) (any, error) {
		calls++
		return value, nil
	}

	parser, err := NewParser(mustParam(t)(NewRequired("req0", counting)))
	assert.Nil(t, err)

	_, err = parser.Map([]string{"x"})
	assert.Nil(t, err)
	assert.Equal(t, 0, calls, "mapping should not invoke the parse function")

	_, err = Get[string](parser, "req0")
	assert.Nil(t, err)
	_, err = Get[string](parser, "req0")
	assert.Nil(t, err)
	assert.Equal(t, 2, calls, "every read should parse again")
}

func TestParameter_ParseErrorPropagatesOnRead(t *testing.T) {
	parser, err := NewParser(mustParam(t)(NewRequired("req0", IntValue)))
	assert.Nil(t, err)

	_, err = parser.Map([]string{"not-a-number"})
	assert.Nil(t, err, "mapping succeeds - parsing cost is paid on read")

	_, err = Get[int](parser, "req0")
	assert.True(t, errors.Is(err, types.ErrParseInt))
}

func TestValueOf_NumericKindsAreBridged(t *testing.T) {
	parser, err := NewParser(mustParam(t)(NewRequired("req0", IntValue)))
	assert.Nil(t, err)

	_, err = parser.Map([]string{"255"})
	assert.Nil(t, err)

	asInt64, err := Get[int64](parser, "req0")
	assert.Nil(t, err)
	assert.Equal(t, int64(255), asInt64)

	asFloat, err := Get[float64](parser, "req0")
	assert.Nil(t, err)
	assert.Equal(t, float64(255), asFloat)
}

func TestValueOf_TypeMismatch(t *testing.T) {
	parser, err := NewParser(mustParam(t)(NewOptional("opt0", "Bla", nil)))
	assert.Nil(t, err)

	_, err = parser.Map([]string{})
	assert.Nil(t, err)

	_, err = Get[int](parser, "opt0")
	assert.True(t, errors.Is(err, types.ErrTypeMismatch), "a string value must not convert to int")

	_, err = Get[string](parser, "opt0")
	assert.Nil(t, err)
}

func TestValueOf_NilDefaultIsTypeMismatch(t *testing.T) {
	parser, err := NewParser(mustParam(t)(NewNamed("p0", nil, nil)))
	assert.Nil(t, err)

	_, err = parser.Map([]string{})
	assert.Nil(t, err)

	_, err = Get[string](parser, "p0")
	assert.True(t, errors.Is(err, types.ErrTypeMismatch), "a nil default cannot be coerced to a concrete type")
}

func TestParameterCategory_String(t *testing.T) {
	assert.Equal(t, "named", types.Named.String())
	assert.Equal(t, "flag", types.Flag.String())
	assert.Equal(t, "required", types.Required.String())
	assert.Equal(t, "optional", types.Optional.String())
	assert.Equal(t, "unknown", types.ParameterCategory(42).String())
}
