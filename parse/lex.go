//go:build linux || darwin

package parse

import "github.com/google/shlex"

// Split divides a command-line string into arguments following POSIX shell
// quoting rules
func Split(s string) ([]string, error) {
	return shlex.Split(s)
}
