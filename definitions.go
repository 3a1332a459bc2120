package argmap

import (
	"io"
	"strings"

	"github.com/iancoleman/strcase"
	orderedmap "github.com/wk8/go-ordered-map"
)

// ParseFunc converts the raw command-line token assigned to a Parameter into
// its typed value. Mapping a parameter does not invoke its ParseFunc -
// conversion happens lazily when the value is read and is repeated on every
// read.
type ParseFunc func(value string) (any, error)

// NameConversionFunc converts a parameter name to an external name, such as
// an environment variable name
type NameConversionFunc func(string) string

// ConfigureParserFunc is used when defining Parser options
type ConfigureParserFunc func(parser *Parser, err *error)

// Built-in conversion strategies
var (
	// ToKebabCase converts a string to kebab case "my-parameter-name"
	ToKebabCase = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToSnakeCase converts a string to snake case "my_parameter_name"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToScreamingSnake converts a string to screaming snake case "MY_PARAMETER_NAME"
	ToScreamingSnake = func(s string) string {
		return strcase.ToScreamingSnake(s)
	}

	// ToLowerCamel converts a string to lower camel case "myParameterName"
	ToLowerCamel = func(s string) string {
		return strcase.ToLowerCamel(s)
	}

	// ToLowerCase converts a string to lower case "myparametername"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}

	DefaultEnvNameConverter = ToScreamingSnake
)

// Parser maps an ordered list of command-line argument strings onto a set of
// declared Parameters. A Parser exclusively owns the Parameters it was
// constructed with and keeps them stably sorted in Named, Flag, Required,
// Optional order. It is not safe for concurrent Map calls - callers needing
// concurrent passes must use separate Parser instances or serialize access.
type Parser struct {
	parameters       []*Parameter
	aliases          *orderedmap.OrderedMap
	envNameConverter NameConversionFunc
	stdout           io.Writer
	stderr           io.Writer
}

const (
	FmtErrorWithString = "%w: %s"
)
