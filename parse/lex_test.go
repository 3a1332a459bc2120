//go:build linux || darwin

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "plain words", input: "a b c", want: []string{"a", "b", "c"}},
		{name: "double quotes", input: `--host "db one" 5432`, want: []string{"--host", "db one", "5432"}},
		{name: "single quotes", input: "say 'hallo welt'", want: []string{"say", "hallo welt"}},
		{name: "escaped space", input: `a\ b c`, want: []string{"a b", "c"}},
		{name: "collapsed whitespace", input: "  a \t b  ", want: []string{"a", "b"}},
		{name: "empty", input: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			assert.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplit_UnterminatedQuote(t *testing.T) {
	_, err := Split(`"unterminated`)
	assert.NotNil(t, err)
}
