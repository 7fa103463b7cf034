// Command hd evaluates expressions written with symbolic operators or their
// word aliases, e.g. "1 add 2 * 3" or "0xFF &~ 0b1010".
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/agenthands/hexa/pkg/calc"
	"github.com/agenthands/hexa/pkg/config"
)

type hdFlags struct {
	ConfigFile string
	Quote      bool
	RPN        bool
	Bits32     bool
	Bits64     bool
	Format     string
	History    string
	Ord        string
	Chr        int64
	Table      bool
	ExTable    bool
	Ops        bool
	Batch      bool
	Verbose    bool
}

func (flags *hdFlags) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "YAML config file (default $HOME/" + config.FileName + " when present)",
			Destination: &flags.ConfigFile,
		},
		&cli.BoolFlag{
			Name:        "quote",
			Aliases:     []string{"q"},
			Usage:       "print the quoted postfix stream instead of evaluating",
			Destination: &flags.Quote,
		},
		&cli.BoolFlag{
			Name:        "rpn",
			Aliases:     []string{"r"},
			Usage:       "read the expression as postfix tokens, e.g. \"1 2 +\"",
			Destination: &flags.RPN,
		},
		&cli.BoolFlag{
			Name:        "32",
			Usage:       "use 32-bit floats",
			Destination: &flags.Bits32,
		},
		&cli.BoolFlag{
			Name:        "64",
			Usage:       "use 64-bit floats (default)",
			Destination: &flags.Bits64,
		},
		&cli.StringFlag{
			Name:        "format",
			Usage:       "render integral results as dec, hex, oct or bin",
			Destination: &flags.Format,
		},
		&cli.StringFlag{
			Name:        "history",
			Usage:       "REPL history file",
			Destination: &flags.History,
		},
		&cli.StringFlag{
			Name:        "ord",
			Usage:       "print the code of the first character of `TEXT`",
			Destination: &flags.Ord,
		},
		&cli.Int64Flag{
			Name:        "chr",
			Usage:       "print the character for code `N`",
			Destination: &flags.Chr,
		},
		&cli.BoolFlag{
			Name:        "table",
			Usage:       "print the ASCII table",
			Destination: &flags.Table,
		},
		&cli.BoolFlag{
			Name:        "extable",
			Usage:       "print the ASCII table including the extended set",
			Destination: &flags.ExTable,
		},
		&cli.BoolFlag{
			Name:        "ops",
			Usage:       "print the operators and their aliases",
			Destination: &flags.Ops,
		},
		&cli.BoolFlag{
			Name:        "batch",
			Usage:       "read one expression per line from stdin even on a terminal",
			Destination: &flags.Batch,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Aliases:     []string{"v"},
			Usage:       "log compilation details to stderr",
			Destination: &flags.Verbose,
		},
	}
}

func main() {
	defer glog.Flush()
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	_ = flag.Set("logtostderr", "true")

	var flags hdFlags
	app := &cli.App{
		Name:            "hd",
		Usage:           "calculator with word aliases for every operator",
		UsageText:       "hd [flags] EXPR...\n   hd [flags] -- -5 + 3    (an expression starting with a negative number goes after --)",
		ArgsUsage:       "[--] EXPR...",
		Flags:           flags.AsCliFlags(),
		HideHelpCommand: true,
		Reader:          stdin,
		Writer:          stdout,
		ErrWriter:       stderr,
		ExitErrHandler:  func(*cli.Context, error) {},
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return errors.Wrap(err, "usage (write -- before an expression that starts with a negative number)")
		},
		Action: func(c *cli.Context) error {
			return flags.action(c, stdin, stdout, stderr)
		},
	}

	if err := app.Run(args); err != nil {
		fmt.Fprintf(stderr, "hd: %v\n", err)
		return 1
	}
	return 0
}

func (flags *hdFlags) action(c *cli.Context, stdin io.Reader, stdout, stderr io.Writer) error {
	if flags.Verbose {
		_ = flag.Set("v", "1")
	}

	switch {
	case flags.Ops:
		return printOps(stdout)
	case flags.Table || flags.ExTable:
		return printTable(stdout, flags.ExTable)
	case c.IsSet("ord"):
		return printOrd(stdout, flags.Ord)
	case c.IsSet("chr"):
		return printChr(stdout, flags.Chr)
	}

	cfg, err := flags.config(c)
	if err != nil {
		return err
	}
	calculator, err := calc.New(cfg)
	if err != nil {
		return err
	}

	if c.NArg() > 0 {
		return calculator.Run(strings.Join(c.Args().Slice(), " "), stdout)
	}
	if !flags.Batch && isTerminal(stdin) {
		return repl(calculator, cfg.History, stdout, stderr)
	}
	return batch(calculator, stdin, stdout, stderr)
}

// config applies defaults, then the config file, then flags.
func (flags *hdFlags) config(c *cli.Context) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if c.IsSet("config") {
		cfg, err = config.Load(flags.ConfigFile)
	} else {
		cfg, err = config.LoadOptional(config.DefaultPath())
	}
	if err != nil {
		return nil, err
	}
	glog.V(1).Infof("config: %+v", *cfg)

	if flags.Bits32 && flags.Bits64 {
		return nil, errors.New("--32 and --64 are mutually exclusive")
	}
	if flags.Bits32 {
		cfg.Width = 32
	}
	if flags.Bits64 {
		cfg.Width = 64
	}
	if c.IsSet("rpn") {
		cfg.RPN = flags.RPN
	}
	if c.IsSet("quote") {
		cfg.Quote = flags.Quote
	}
	if c.IsSet("format") {
		cfg.Format = flags.Format
	}
	if c.IsSet("history") {
		cfg.History = flags.History
	}
	return cfg, cfg.Validate()
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
