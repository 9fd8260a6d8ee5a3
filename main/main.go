/*
File    : lox/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Lox interpreter. It provides two
modes of operation:
 1. REPL mode (default): interactive read-eval-print loop
 2. File mode: execute a single Lox source file

Argument parsing uses spf13/cobra rather than a manual os.Args switch. There
is no networked "server" mode: Lox has no remote/network surface, so nothing
here gives TCP transport a home.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/loxlang/lox/ast"
	"github.com/loxlang/lox/lexer"
	"github.com/loxlang/lox/lox"
	"github.com/loxlang/lox/parser"
	"github.com/loxlang/lox/repl"
	"github.com/loxlang/lox/resolve"
	"github.com/spf13/cobra"
)

// VERSION is the current version of the Lox interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE specifies the software license.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "lox >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
  ██╗      ██████╗ ██╗  ██╗
  ██║     ██╔═══██╗╚██╗██╔╝
  ██║     ██║   ██║ ╚███╔╝
  ██║     ██║   ██║ ██╔██╗
  ███████╗╚██████╔╝██╔╝ ██╗
  ╚══════╝ ╚═════╝ ╚═╝  ╚═╝
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor = color.New(color.FgRed)
)

// showAST holds the --ast debug flag: when set, runFile prints the resolved tree instead
// of executing it.
var showAST bool

func main() {
	root := &cobra.Command{
		Use:     "lox [script]",
		Short:   "Lox -- a tree-walking interpreter",
		Version: VERSION,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
				repler.Start(os.Stdin, os.Stdout)
				return nil
			}
			return runFile(args[0])
		},
		// cobra's own usage errors (bad flags, too many args) are themselves
		// a usage error in this CLI's exit-code taxonomy.
		SilenceUsage: false,
	}
	root.Flags().BoolVar(&showAST, "ast", false, "print the resolved AST instead of running the program")

	if err := root.Execute(); err != nil {
		os.Exit(lox.ExitUsage)
	}
}

// runFile reads and executes a single Lox source file, exiting with the
// process code this convention prescribes: 65 for a static (syntax/resolve)
// error, 70 for a runtime error, 0 on success.
func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		os.Exit(lox.ExitUsage)
	}

	if showAST {
		printResolvedAST(string(source))
		return nil
	}

	runner := lox.NewRunner(os.Stdout)
	code, runErr := runner.RunFile(string(source))
	if runErr != nil {
		redColor.Fprintf(os.Stderr, "%s\n", runErr)
		os.Exit(code)
	}
	return nil
}

// printResolvedAST runs the lex/parse/resolve stages only and prints the
// resulting tree, for the --ast debug flag.
func printResolvedAST(source string) {
	tokens := lexer.NewLexer(source).Tokenize()
	program, perrs := parser.NewParser(tokens).Parse()
	if perrs != nil {
		redColor.Fprintf(os.Stderr, "%s\n", perrs)
		os.Exit(lox.ExitStatic)
	}
	if rerrs := resolve.Resolve(program); rerrs != nil {
		redColor.Fprintf(os.Stderr, "%s\n", rerrs)
		os.Exit(lox.ExitStatic)
	}
	fmt.Print(ast.PrintProgram(program))
}
