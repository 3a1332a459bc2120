// Command argmap-demo shows how to declare parameters and read mapped values.
//
// Example:
//
//	argmap-demo -v --host db1 5432 2
package main

import (
	"fmt"
	"os"

	"github.com/hwerle/argmap"
)

func main() {
	parser, err := argmap.NewParserWith(
		argmap.WithFlag("verbose", "-v", "--verbose"),
		argmap.WithNamed("host", "localhost", nil, "--host"),
		argmap.WithRequired("port", argmap.IntValue),
		argmap.WithOptional("retries", 3, argmap.IntValue),
		argmap.WithEnvNameConverter(argmap.DefaultEnvNameConverter))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	unmapped, err := parser.Map(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		parser.PrintUsageOrDefault()
		os.Exit(1)
	}
	if len(unmapped) > 0 {
		parser.PrintUnexpectedOrDefault(unmapped)
		os.Exit(2)
	}

	verbose, _ := argmap.Get[bool](parser, "verbose")
	host, _ := argmap.Get[string](parser, "host")
	port, err := argmap.Get[int](parser, "port")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	retries, err := argmap.Get[int](parser, "retries")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("verbose=%t host=%s port=%d retries=%d\n", verbose, host, port, retries)
}
