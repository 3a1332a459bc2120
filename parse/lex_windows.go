//go:build windows

package parse

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Split divides a command-line string into arguments following cmd.exe
// conventions: double quotes group words, ^ escapes the next character,
// %VAR% expands from the environment and backslashes are literal except
// directly before a quote.
func Split(s string) ([]string, error) {
	var args []string
	var arg strings.Builder
	inQuotes := false
	escaped := false
	pending := false

	flush := func() {
		if pending || arg.Len() > 0 {
			args = append(args, arg.String())
			arg.Reset()
			pending = false
		}
	}

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return nil, fmt.Errorf("invalid UTF-8 encoding at position %d", i)
		}

		if escaped {
			arg.WriteRune(r)
			pending = true
			escaped = false
			i += size
			continue
		}

		switch {
		case r == '^' && !inQuotes:
			escaped = true
		case r == '"':
			inQuotes = !inQuotes
			pending = true
		case r == '%' && !inQuotes:
			end := strings.IndexByte(s[i+size:], '%')
			if end < 0 {
				arg.WriteRune(r)
				pending = true
				break
			}
			if value, found := os.LookupEnv(s[i+size : i+size+end]); found {
				arg.WriteString(value)
			} else {
				// cmd.exe keeps the literal %VAR% text when VAR is unset
				arg.WriteString(s[i : i+size+end+1])
			}
			pending = true
			i += size + end + 1
			continue
		case r == '\\':
			backslashes := 0
			for i < len(s) && s[i] == '\\' {
				backslashes++
				i++
			}
			if i < len(s) && s[i] == '"' {
				arg.WriteString(strings.Repeat(`\`, backslashes/2))
				if backslashes%2 == 0 {
					inQuotes = !inQuotes
				} else {
					arg.WriteByte('"')
				}
				pending = true
				i++
			} else {
				arg.WriteString(strings.Repeat(`\`, backslashes))
				pending = true
			}
			continue
		case !inQuotes && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			flush()
		default:
			arg.WriteRune(r)
			pending = true
		}

		i += size
	}

	if inQuotes {
		return nil, fmt.Errorf("unterminated quote")
	}
	flush()

	return args, nil
}
