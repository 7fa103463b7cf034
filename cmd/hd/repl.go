package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/peterh/liner"
	"github.com/pkg/errors"

	"github.com/agenthands/hexa/pkg/calc"
)

const (
	promptMain = "hd> "
	promptCont = "... "
)

var red = color.New(color.FgRed).SprintFunc()

// prompter is the part of *liner.State the read loop needs.
type prompter interface {
	Prompt(prompt string) (string, error)
}

func repl(c *calc.Calculator, historyPath string, stdout, stderr io.Writer) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			f, err := os.Create(historyPath)
			if err != nil {
				glog.Warningf("cannot save history: %v", err)
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	return loop(ln, c, stdout, stderr, ln.AppendHistory)
}

// loop reads expressions until EOF or :quit. Errors are reported and the
// next expression is read.
func loop(p prompter, c *calc.Calculator, stdout, stderr io.Writer, remember func(string)) error {
	for {
		src, ok := readExpr(p, promptMain, promptCont, c.Incomplete)
		if !ok {
			fmt.Fprintln(stdout)
			return nil
		}

		line := strings.TrimSpace(src)
		switch {
		case line == "":
			continue
		case line == ":quit" || line == ":q":
			return nil
		case strings.HasPrefix(line, ":"):
			fmt.Fprintln(stderr, "unknown command. Type :quit to exit.")
			continue
		}

		remember(strings.ReplaceAll(src, "\n", " "))
		if err := c.Run(src, stdout); err != nil {
			fmt.Fprintln(stderr, red("hd: "+err.Error()))
		}
	}
}

// readExpr reads lines until they form a complete program, switching to the
// continuation prompt while incomplete reports the input ends too early.
func readExpr(p prompter, prompt, cont string, incomplete func(string) bool) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = p.Prompt(prompt)
		} else {
			line, err = p.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C: drop the pending input
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.TrimSpace(src) == "" || strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if incomplete(src) {
			continue
		}
		return src, true
	}
}
