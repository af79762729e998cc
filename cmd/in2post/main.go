package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rpnlabs/infix2postfix/internal/cli"
	"github.com/rpnlabs/infix2postfix/internal/parser"
	"github.com/rpnlabs/infix2postfix/internal/watch"
)

// in2post translates infix arithmetic expressions to postfix notation.
// Input is a list of semicolon-separated expressions read from files,
// stdin or the -e flag; each source produces one line of
// space-separated postfix tokens.
func main() {
	var (
		showVersion = flag.Bool("version", false, "show version information")
		jsonOutput  = flag.Bool("json", false, "output version in JSON format")
		evalStr     = flag.String("e", "", "translate expression and exit")
		fromStdin   = flag.Bool("stdin", false, "read expressions from stdin instead of files")
		watchMode   = flag.Bool("watch", false, "watch input files and re-translate on change")
		require     = flag.String("require", "", "require tool version to satisfy a semver constraint")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] [FILE...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Translate infix arithmetic expressions to postfix notation.\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEXAMPLES:\n")
		fmt.Fprintf(os.Stderr, "  %s -e \"9 - 5 + 2\"        # prints: 9 5 - 2 +\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s exprs.txt             # translate a file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -watch exprs.txt      # re-translate on every save\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  echo \"a * (b + c)\" | %s -stdin\n", os.Args[0])
	}

	flag.Parse()

	if *showVersion {
		cli.PrintVersion("in2post", *jsonOutput)
		os.Exit(0)
	}

	if *require != "" {
		if err := cli.CheckRequiredVersion(*require); err != nil {
			cli.ExitWithError("%v", err)
		}
	}

	if *evalStr != "" {
		if err := translateSource(os.Stdout, *evalStr, "<eval>"); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if *fromStdin {
		in, err := io.ReadAll(os.Stdin)
		if err != nil {
			cli.ExitWithError("reading stdin: %v", err)
		}
		if err := translateSource(os.Stdout, string(in), "<stdin>"); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	files := flag.Args()
	if len(files) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *watchMode {
		watchFiles(files)
		return
	}

	ok := true
	for _, name := range files {
		if err := translateFile(os.Stdout, name); err != nil {
			fmt.Fprintln(os.Stderr, err)
			ok = false
		}
	}
	if !ok {
		os.Exit(1)
	}
}

// translateSource translates one source text and writes its postfix
// form to w as a single space-separated line.
func translateSource(w io.Writer, src, filename string) error {
	out, err := parser.TranslateString(src, filename)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, strings.Join(out, " "))
	return err
}

// translateFile reads and translates the named file.
func translateFile(w io.Writer, name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	return translateSource(w, string(data), name)
}

// watchFiles translates each file once, then re-translates whenever
// one of them is written. Runs until interrupted.
func watchFiles(files []string) {
	w, err := watch.New()
	if err != nil {
		cli.ExitWithError("starting watcher: %v", err)
	}
	defer w.Close()

	for _, name := range files {
		if err := w.Add(name); err != nil {
			cli.ExitWithError("watching %s: %v", name, err)
		}
		if err := translateFile(os.Stdout, name); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case ev, ok := <-w.Events():
			if !ok {
				return
			}
			if ev.Op.Has(watch.OpWrite) || ev.Op.Has(watch.OpCreate) {
				if err := translateFile(os.Stdout, ev.Path); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
			}
		case err := <-w.Errors():
			fmt.Fprintln(os.Stderr, "watch error:", err)
		case <-sigC:
			return
		}
	}
}
