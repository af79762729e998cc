package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rpnlabs/infix2postfix/internal/cli"
	"github.com/rpnlabs/infix2postfix/internal/parser"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version information")
		jsonOutput  = flag.Bool("json", false, "output version in JSON format")
		noPrompt    = flag.Bool("no-prompt", false, "disable interactive prompt")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Interactive infix-to-postfix translator.\n")
		fmt.Fprintf(os.Stderr, "Each input line is translated on its own; a syntax error\n")
		fmt.Fprintf(os.Stderr, "only aborts the current line, not the session.\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nREPL COMMANDS:\n")
		fmt.Fprintf(os.Stderr, "  :help, :h          Show help\n")
		fmt.Fprintf(os.Stderr, "  :quit, :q, :exit   Exit\n")
		fmt.Fprintf(os.Stderr, "  :history           Show input history\n")
	}

	flag.Parse()

	if *showVersion {
		cli.PrintVersion("in2post-repl", *jsonOutput)
		os.Exit(0)
	}

	repl := newREPL(os.Stdin, os.Stdout, !*noPrompt)
	repl.run()
}

type repl struct {
	in      *bufio.Scanner
	out     io.Writer
	prompt  bool
	history []string
}

func newREPL(in io.Reader, out io.Writer, prompt bool) *repl {
	return &repl{
		in:     bufio.NewScanner(in),
		out:    out,
		prompt: prompt,
	}
}

func (r *repl) run() {
	if r.prompt {
		fmt.Fprintln(r.out, "in2post REPL - infix in, postfix out (:help for commands)")
	}

	for {
		if r.prompt {
			fmt.Fprint(r.out, "in2post> ")
		}
		if !r.in.Scan() {
			if r.prompt {
				fmt.Fprintln(r.out)
			}
			return
		}

		line := strings.TrimSpace(r.in.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			if r.command(line) {
				return
			}
			continue
		}

		r.history = append(r.history, line)
		r.translate(line)
	}
}

// command handles a REPL command line. Returns true when the session
// should end.
func (r *repl) command(line string) bool {
	switch line {
	case ":quit", ":q", ":exit":
		return true
	case ":help", ":h":
		fmt.Fprintln(r.out, "Enter an infix expression list, e.g.  a * (b + 1) ; c")
		fmt.Fprintln(r.out, "Commands: :help :history :quit")
	case ":history":
		for i, entry := range r.history {
			fmt.Fprintf(r.out, "%4d  %s\n", i+1, entry)
		}
	default:
		fmt.Fprintf(r.out, "unknown command %q (:help for commands)\n", line)
	}
	return false
}

func (r *repl) translate(line string) {
	out, err := parser.TranslateString(line, "")
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	fmt.Fprintln(r.out, strings.Join(out, " "))
}
