package argmap

import "io"

// NewParserWith allows initialization of Parser using option functions. The
// caller should always test for error on return because Parser will be nil
// when an error occurs during initialization.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithFlag("verbose", "-v", "--verbose"),
//		WithNamed("host", "localhost", nil, "--host"),
//		WithRequired("port", IntValue),
//		WithOptional("retries", 3, IntValue),
//		WithEnvNameConverter(DefaultEnvNameConverter))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	parser := newParser()

	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, err
		}
	}

	if err := parser.finalize(); err != nil {
		return nil, err
	}

	return parser, nil
}

// WithParameter adds a previously constructed Parameter to the Parser
func WithParameter(parameter *Parameter) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.parameters = append(parser.parameters, parameter)
	}
}

// WithNamed declares a Named parameter. See NewNamed.
func WithNamed(name string, defaultValue any, parseFn ParseFunc, aliases ...string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parameter, e := NewNamed(name, defaultValue, parseFn, aliases...)
		if e != nil {
			*err = e
			return
		}
		parser.parameters = append(parser.parameters, parameter)
	}
}

// WithFlag declares a Flag parameter. See NewFlag.
func WithFlag(name string, aliases ...string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parameter, e := NewFlag(name, aliases...)
		if e != nil {
			*err = e
			return
		}
		parser.parameters = append(parser.parameters, parameter)
	}
}

// WithRequired declares a Required positional parameter. See NewRequired.
func WithRequired(name string, parseFn ParseFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parameter, e := NewRequired(name, parseFn)
		if e != nil {
			*err = e
			return
		}
		parser.parameters = append(parser.parameters, parameter)
	}
}

// WithOptional declares an Optional positional parameter. See NewOptional.
func WithOptional(name string, defaultValue any, parseFn ParseFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parameter, e := NewOptional(name, defaultValue, parseFn)
		if e != nil {
			*err = e
			return
		}
		parser.parameters = append(parser.parameters, parameter)
	}
}

// WithEnvNameConverter sets the environment fallback name converter. See
// Parser.SetEnvNameConverter.
func WithEnvNameConverter(converter NameConversionFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetEnvNameConverter(converter)
	}
}

// WithStdout sets the writer receiving usage listings. See
// Parser.PrintUsageOrDefault.
func WithStdout(w io.Writer) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetStdout(w)
	}
}

// WithStderr sets the writer receiving strict-mapping failure text. See
// Parser.PrintUnexpectedOrDefault.
func WithStderr(w io.Writer) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetStderr(w)
	}
}
