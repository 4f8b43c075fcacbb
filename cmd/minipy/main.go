package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	minipy "github.com/VincTBest/MiniPy"
)

const (
	appName     = "minipy"
	historyFile = ".minipy_history"
	configFile  = ".minipy.yaml"
	prompt      = "MiniPy> "
)

var banner = fmt.Sprintf("MiniPy %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type help for commands.", minipy.Version)

const helpText = `Statements:
  let x = <expr>;    bind a variable
  print <expr>;      evaluate an expression and print the result

Commands:
  help    Show this message
  exit    Exit the REPL
`

var errColor = color.New(color.FgRed)

func main() {
	configPath := flag.String("config", "", "options file (default: $HOME/"+configFile+" when present)")
	lenient := flag.Bool("lenient", false, "lenient dialect: bare assignment allowed, unbound reads yield 0")
	verbose := flag.Bool("verbose", false, "render errors with a caret-annotated source snippet")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(minipy.Version)
		return
	}

	opts, err := loadOptions(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
	if *lenient {
		opts.AllowBareAssign = true
		opts.LenientVars = true
	}

	os.Exit(repl(opts, *verbose))
}

func repl(opts minipy.Options, verbose bool) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := minipy.NewInterpreter(os.Stdout, opts)

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if err != nil {
			// Ctrl+C: drop the line, keep the session.
			continue
		}

		switch strings.TrimSpace(line) {
		case "":
			continue
		case "help":
			fmt.Print(helpText)
			continue
		case "exit":
			return 0
		}

		if err := ip.EvalSource(line); err != nil {
			reportError(os.Stdout, err, line, verbose)
		}
		ln.AppendHistory(line)
	}
}

// reportError prints a failure without ending the session. Error lines
// share the output stream with print results. The default form is the
// one-line "Error: <description>"; verbose mode uses the caret-annotated
// snippet for lex and parse errors instead.
func reportError(w io.Writer, err error, src string, verbose bool) {
	if verbose {
		_, _ = errColor.Fprintln(w, minipy.WrapErrorWithSource(err, src).Error())
		return
	}
	_, _ = errColor.Fprintf(w, "Error: %s\n", describe(err))
}

// describe extracts the bare message from the interpreter's typed errors.
func describe(err error) string {
	var le *minipy.LexError
	var pe *minipy.ParseError
	var re *minipy.RuntimeError
	switch {
	case errors.As(err, &le):
		return le.Msg
	case errors.As(err, &pe):
		return pe.Msg
	case errors.As(err, &re):
		return re.Msg
	default:
		return err.Error()
	}
}
