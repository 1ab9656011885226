// Program coillex is a development tool that dumps the token stream
// produced by package lexer for a single source file, one token per line.
//
// Usage: coillex [--tab-width N] [--strict-suffixes] [--verbose] FILE
//
// It exits 0 if the file was scanned to completion without any diagnostic,
// 1 if a diagnostic was raised (printing the last one to stderr) or the
// file could not be read, and 2 on a usage error.
//
// THIS PROGRAM IS A DEVELOPMENT TOOL, not part of the compiler pipeline.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/coil-lang/coilcc/arena"
	"github.com/coil-lang/coilcc/internal/telemetry"
	"github.com/coil-lang/coilcc/lexer"
	"github.com/coil-lang/coilcc/token"
	"github.com/pborman/getopt"
)

func main() {
	var (
		tabWidthStr    string
		strictSuffixes bool
		verbose        bool
		help           bool
	)
	getopt.StringVarLong(&tabWidthStr, "tab-width", 0, "columns a tab advances by (default 1)", "N")
	getopt.BoolVarLong(&strictSuffixes, "strict-suffixes", 0, "reject unrecognized integer literal suffixes")
	getopt.BoolVarLong(&verbose, "verbose", 'v', "log scan activity to stderr")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("FILE")
	getopt.Parse()

	tabWidth := 0
	if tabWidthStr != "" {
		var err error
		tabWidth, err = strconv.Atoi(tabWidthStr)
		if err != nil {
			fmt.Fprintln(os.Stderr, "coillex: --tab-width must be an integer:", err)
			os.Exit(2)
		}
	}

	if help || len(getopt.Args()) != 1 {
		getopt.PrintUsage(os.Stderr)
		os.Exit(2)
	}

	path := getopt.Args()[0]
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "coillex:", err)
		os.Exit(1)
	}

	log := telemetry.Discard()
	if verbose {
		log = telemetry.New(os.Stderr, "debug")
	}

	var opts []lexer.Option
	opts = append(opts, lexer.WithLogger(log))
	if tabWidth > 0 {
		opts = append(opts, lexer.WithTabWidth(tabWidth))
	}
	if strictSuffixes {
		opts = append(opts, lexer.WithStrictSuffixes(true))
	}

	a := arena.New(4096, arena.WithLogger(log))
	l := lexer.New(src, path, a, opts...)

	for {
		tok := l.Next()
		printToken(tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	if diag := l.Diagnostic(); diag != nil {
		fmt.Fprintln(os.Stderr, "coillex:", diag.Error())
		if linePos := l.File().LinePos(diag.Location.Line); linePos.IsValid() {
			if line, err := l.File().LineBytes(linePos); err == nil {
				fmt.Fprintln(os.Stderr, telemetry.Snippet(line, diag.Location.Column))
			}
		}
	}
	if l.Error() != "" {
		os.Exit(1)
	}
}

func printToken(tok token.Token) {
	switch tok.Kind {
	case token.IntegerLiteral:
		fmt.Printf("%s\t%s\t%q\t%d\n", tok.Location, tok.Kind, tok.Text, tok.IntValue())
	case token.FloatLiteral:
		fmt.Printf("%s\t%s\t%q\t%g\n", tok.Location, tok.Kind, tok.Text, tok.FloatValue())
	case token.CharLiteral:
		fmt.Printf("%s\t%s\t%q\t%q\n", tok.Location, tok.Kind, tok.Text, rune(tok.CharValue()))
	case token.StringLiteral:
		fmt.Printf("%s\t%s\t%q\t%q\n", tok.Location, tok.Kind, tok.Text, tok.StringValue())
	default:
		fmt.Printf("%s\t%s\t%q\n", tok.Location, tok.Kind, tok.Text)
	}
}
