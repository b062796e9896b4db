package main

import (
	"fmt"
	"os"

	"github.com/heathj/htmlparse/parser"
	"github.com/spf13/pflag"
)

func main() {
	maxErrors := pflag.IntP("max-errors", "m", 0, "retain at most N recoverable parse errors (0 disables collection)")
	pflag.Parse()

	args := pflag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: htmlparse [--max-errors N] <file.html>")
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var sink *parser.ErrorSink
	if *maxErrors > 0 {
		sink = parser.NewErrorSink(*maxErrors)
	}

	p := parser.NewParserWithErrorSink(string(data), sink)
	doc, err := p.Start()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(doc.String())
	for _, pe := range p.Errors() {
		fmt.Fprintf(os.Stderr, "parse error at %d: %s\n", pe.Position, pe.Message)
	}
}
