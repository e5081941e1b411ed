package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fwojciec/unitext"
	"golang.org/x/sync/errgroup"
)

const shellHelp = `Commands:
  key <value>   apply a Gemini API key for this session (empty clears it)
  pdf <path>    extract text from a PDF file
  url <url>     extract the main text of a web page
  show          print the current result
  clear         discard the current result
  wait          wait for running extractions, then print the result
  help          show this help
  quit          wait for running extractions and exit`

// Run executes the shell command.
//
// Extractions run in the background so a new one can be started while
// another is still running; the newer one always wins.
func (c *ShellCmd) Run(deps *Dependencies) error {
	sh := &shell{
		deps: deps,
		out:  &syncWriter{w: deps.Stdout},
	}
	return sh.run()
}

type shell struct {
	deps *Dependencies
	out  io.Writer
	g    errgroup.Group
}

func (sh *shell) run() error {
	fmt.Fprintln(sh.out, "unitext shell. Type 'help' for commands.")

	scanner := bufio.NewScanner(sh.deps.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		name, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch name {
		case "key":
			sh.key(arg)
		case "pdf":
			sh.pdf(arg)
		case "url":
			sh.url(arg)
		case "show":
			sh.show()
		case "clear":
			sh.deps.Session.Clear()
			fmt.Fprintln(sh.out, "Cleared.")
		case "wait":
			_ = sh.g.Wait()
			sh.show()
		case "help":
			fmt.Fprintln(sh.out, shellHelp)
		case "quit", "exit":
			return sh.g.Wait()
		default:
			fmt.Fprintf(sh.out, "Unknown command %q. Type 'help' for commands.\n", name)
		}
	}
	if err := scanner.Err(); err != nil {
		_ = sh.g.Wait()
		return err
	}
	return sh.g.Wait()
}

func (sh *shell) key(value string) {
	sh.deps.Session.SetCredential(value)
	if sh.deps.Session.HasCredential() {
		fmt.Fprintln(sh.out, "API Key applied for this session!")
		return
	}
	fmt.Fprintln(sh.out, "API Key cleared.")
}

func (sh *shell) pdf(path string) {
	data, err := readPDF(sh.out, path)
	if err != nil {
		fmt.Fprintf(sh.out, "Error: %s\n", unitext.ErrorMessage(err))
		return
	}
	a, results, err := sh.deps.Session.GoPDF(sh.deps.Ctx, data)
	sh.track(a, results, err)
}

func (sh *shell) url(rawURL string) {
	a, results, err := sh.deps.Session.GoURL(sh.deps.Ctx, rawURL)
	sh.track(a, results, err)
}

// track reports the start of an attempt and prints its result once it
// arrives, unless a newer attempt has superseded it.
//
// Failed extractions are printed like any other result and never returned
// to the group: the session settles on the failure and the shell keeps
// running, so quit exits cleanly after an extraction error.
func (sh *shell) track(a unitext.Attempt, results <-chan unitext.Result, err error) {
	if err != nil {
		fmt.Fprintf(sh.out, "Error: %s\n", unitext.ErrorMessage(err))
		return
	}
	fmt.Fprintf(sh.out, "Extracting text from %s...\n", a.Source.Label())
	sh.deps.logger().Debug("extraction started", "attempt", a.ID, "source", a.Source)

	sh.g.Go(func() error {
		r := <-results
		if r.Stale {
			sh.deps.logger().Debug("extraction superseded", "attempt", a.ID, "source", a.Source)
			return nil
		}
		fmt.Fprintln(sh.out, unitext.FormatResult(r))
		return nil
	})
}

func (sh *shell) show() {
	out := unitext.FormatState(sh.deps.Session.State())
	if out == "" {
		out = "Nothing extracted yet."
	}
	fmt.Fprintln(sh.out, out)
}

// syncWriter serializes writes from background extractions and the prompt loop.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w.Write(p)
}
