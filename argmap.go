// Copyright 2024, the argmap authors. All rights reserved.
// Use of this source code is governed by the MIT license
// which can be found in the LICENSE file.

// Package argmap maps an ordered list of command-line argument strings onto a
// set of declared parameters.
//
// It supports 4 kinds of parameters:
//
//	Named - matched by alias, consumes the following token as its value
//	Flag - matched by alias, takes no value and evaluates to true when seen
//	Required - positional, claimed by argument order, must be supplied
//	Optional - positional, claimed by argument order after all Required slots
//
// Mapping is a single left-to-right pass: tokens are eligible for alias
// matching until the first token which resolves to neither a Named nor a Flag
// alias, after which all remaining tokens are treated as positional. Tokens
// which match no parameter are returned as unmapped rather than treated as an
// error - MapStrict turns a non-empty unmapped list into a usage text.
package argmap

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ef-ds/deque"
	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/hwerle/argmap/parse"
	"github.com/hwerle/argmap/types"
	"github.com/hwerle/argmap/util"
)

func newParser() *Parser {
	return &Parser{
		parameters: []*Parameter{},
		aliases:    orderedmap.New(),
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
}

// NewParser creates a Parser owning the given parameters. The parameters are
// stored stably sorted in Named, Flag, Required, Optional order. Construction
// fails with types.ErrDuplicateAlias when any alias string is declared by
// more than one parameter (or more than once on the same parameter) - the
// error names each duplicated alias and its multiplicity.
func NewParser(parameters ...*Parameter) (*Parser, error) {
	parser := newParser()
	parser.parameters = append(parser.parameters, parameters...)

	if err := parser.finalize(); err != nil {
		return nil, err
	}

	return parser, nil
}

func (s *Parser) finalize() error {
	for _, p := range s.parameters {
		if p == nil {
			return fmt.Errorf("%w: parameter must not be nil", types.ErrInvalidArgument)
		}
	}

	sort.SliceStable(s.parameters, func(i, j int) bool {
		return s.parameters[i].category < s.parameters[j].category
	})

	counts := orderedmap.New()
	for _, p := range s.parameters {
		for _, alias := range p.aliases {
			if n, found := counts.Get(alias); found {
				counts.Set(alias, n.(int)+1)
			} else {
				counts.Set(alias, 1)
			}
		}
	}

	var duplicates []string
	for pair := counts.Oldest(); pair != nil; pair = pair.Next() {
		if n := pair.Value.(int); n > 1 {
			duplicates = append(duplicates, fmt.Sprintf("%s (%d)", pair.Key, n))
		}
	}
	if len(duplicates) > 0 {
		return fmt.Errorf(FmtErrorWithString, types.ErrDuplicateAlias, strings.Join(duplicates, ", "))
	}

	for _, p := range s.parameters {
		for _, alias := range p.aliases {
			s.aliases.Set(alias, p)
		}
	}

	return nil
}

// SetEnvNameConverter sets a function deriving an environment variable name
// from a parameter name. When set, parameters left unfilled by the token pass
// (flags excepted) read their raw value from the environment before the
// required check runs. Returns the previously set converter.
func (s *Parser) SetEnvNameConverter(converter NameConversionFunc) NameConversionFunc {
	oldConverter := s.envNameConverter
	s.envNameConverter = converter

	return oldConverter
}

// SetStdout sets the writer receiving the usage listing printed by
// PrintUsageOrDefault
func (s *Parser) SetStdout(w io.Writer) {
	s.stdout = w
}

// SetStderr sets the writer receiving the failure text printed by
// PrintUnexpectedOrDefault
func (s *Parser) SetStderr(w io.Writer) {
	s.stderr = w
}

// Parameters returns the parser's parameters in stored (category) order
func (s *Parser) Parameters() []*Parameter {
	parameters := make([]*Parameter, len(s.parameters))
	copy(parameters, s.parameters)

	return parameters
}

// Parameter returns the parameter identified by alias or fails with
// types.ErrUnknownAlias when no parameter declares it
func (s *Parser) Parameter(alias string) (*Parameter, error) {
	if value, found := s.aliases.Get(alias); found {
		return value.(*Parameter), nil
	}

	return nil, fmt.Errorf(FmtErrorWithString, types.ErrUnknownAlias, alias)
}

// Map consumes args in a single left-to-right pass and assigns each token to
// a declared parameter where possible. Tokens claimed by no parameter are
// returned in input order. All pending raw values are reset at the start of
// the pass - value reads afterwards reflect this pass only.
//
// Map fails with types.ErrRequiredMissing when a Required parameter is left
// without a raw value once all tokens are consumed.
func (s *Parser) Map(args []string) ([]string, error) {
	for _, p := range s.parameters {
		p.reset()
	}

	positional := deque.New()
	for _, p := range s.parameters {
		if p.category.Positional() {
			positional.PushBack(p)
		}
	}

	unmapped := []string{}
	var awaitingValue *Parameter
	lookingForNamed := true

	for _, arg := range args {
		if awaitingValue != nil {
			awaitingValue.setRaw(arg)
			awaitingValue = nil
			continue
		}

		if lookingForNamed {
			if p, matched := s.matchNamed(arg); matched {
				if p.category == types.Flag {
					// the alias itself is stored purely as a non-absent marker
					p.setRaw(arg)
				} else {
					awaitingValue = p
				}
				continue
			}
			// a token which is no Named/Flag alias permanently ends the
			// named phase - later tokens are positional even when they
			// happen to equal an alias string
			lookingForNamed = false
		}

		if next, ok := positional.PopFront(); ok {
			next.(*Parameter).setRaw(arg)
			continue
		}

		unmapped = append(unmapped, arg)
	}

	if s.envNameConverter != nil {
		s.fillFromEnv()
	}

	for _, p := range s.parameters {
		if p.category == types.Required && !p.filled {
			return nil, fmt.Errorf(FmtErrorWithString, types.ErrRequiredMissing, p.Describe())
		}
	}

	return unmapped, nil
}

// matchNamed resolves arg against the Named/Flag aliases. A Flag matches
// regardless of its fill state, so repeated flag aliases are absorbed
// idempotently. A Named parameter matches only while unfilled - a repeated
// Named alias is reported as "no match", which ends the named phase.
func (s *Parser) matchNamed(arg string) (*Parameter, bool) {
	value, found := s.aliases.Get(arg)
	if !found {
		return nil, false
	}

	p := value.(*Parameter)
	if p.category == types.Flag {
		return p, true
	}
	if p.category == types.Named && !p.filled {
		return p, true
	}

	return nil, false
}

func (s *Parser) fillFromEnv() {
	for _, p := range s.parameters {
		if p.filled || p.category == types.Flag {
			continue
		}
		envName := s.envNameConverter(p.name)
		if envName == "" {
			continue
		}
		if value, found := os.LookupEnv(envName); found {
			p.setRaw(value)
		}
	}
}

// MapString splits line into arguments following shell quoting rules and
// maps the result. See Map.
func (s *Parser) MapString(line string) ([]string, error) {
	args, err := parse.Split(line)
	if err != nil {
		return nil, err
	}

	return s.Map(args)
}

// MapStrict maps args and treats leftover tokens as a failure. On a
// non-empty unmapped list it returns false together with a usage text
// enumerating the unexpected arguments and every declared parameter.
func (s *Parser) MapStrict(args []string) (bool, string, error) {
	unmapped, err := s.Map(args)
	if err != nil {
		return false, "", err
	}
	if len(unmapped) == 0 {
		return true, "", nil
	}

	return false, NewRenderer(s).UnexpectedUsage(unmapped), nil
}

// PrintUsage writes the parameter listing to w, wrapped to the terminal
// width when w is an attached terminal
func (s *Parser) PrintUsage(w io.Writer) {
	width := 0
	if f, ok := w.(*os.File); ok {
		width = util.TerminalWidth(int(f.Fd()))
	}

	fmt.Fprint(w, NewRenderer(s).UsageListing(width))
}

// PrintUsageOrDefault writes the parameter listing to the configured stdout
func (s *Parser) PrintUsageOrDefault() {
	w := s.stdout
	if w == nil {
		w = os.Stdout
	}

	s.PrintUsage(w)
}

// PrintUnexpectedOrDefault writes the strict-mapping failure text for
// unmapped to the configured stderr. See MapStrict for the text format.
func (s *Parser) PrintUnexpectedOrDefault(unmapped []string) {
	w := s.stderr
	if w == nil {
		w = os.Stderr
	}

	fmt.Fprint(w, NewRenderer(s).UnexpectedUsage(unmapped))
}

// Get returns the value of the parameter identified by alias, converted to
// T. It fails with types.ErrUnknownAlias when alias is not declared on any
// parameter and with types.ErrTypeMismatch when the value cannot be
// converted to T.
func Get[T any](s *Parser, alias string) (T, error) {
	p, err := s.Parameter(alias)
	if err != nil {
		var zero T
		return zero, err
	}

	return ValueOf[T](p)
}
