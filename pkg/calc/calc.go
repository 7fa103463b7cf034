// Package calc ties the compiler and the stack machine together behind a
// single Calculator that caches compiled programs.
package calc

import (
	"io"
	"strconv"

	"github.com/golang/glog"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/agenthands/hexa/pkg/compiler/emitter"
	"github.com/agenthands/hexa/pkg/compiler/parser"
	"github.com/agenthands/hexa/pkg/config"
	"github.com/agenthands/hexa/pkg/core/value"
	"github.com/agenthands/hexa/pkg/stdlib"
	"github.com/agenthands/hexa/pkg/vm"
)

// Calculator compiles and evaluates expressions. It is safe for concurrent
// use: compiled programs are immutable and every evaluation gets its own
// machine.
type Calculator struct {
	conv   vm.Converter
	format stdlib.Format
	quote  bool
	rpn    bool
	cache  *lru.Cache // nil when caching is disabled
}

// New builds a Calculator from a validated config. A nil cfg means
// config.Default().
func New(cfg *config.Config) (*Calculator, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	conv, err := vm.ConverterFor(cfg.Width)
	if err != nil {
		return nil, err
	}

	c := &Calculator{
		conv:   conv,
		format: cfg.OutputFormat(),
		quote:  cfg.Quote,
		rpn:    cfg.RPN,
	}
	if cfg.CacheSize > 0 {
		c.cache, err = lru.New(cfg.CacheSize)
		if err != nil {
			return nil, errors.Wrap(err, "calc: compile cache")
		}
	}
	return c, nil
}

// WithConverter replaces the literal converter.
func (c *Calculator) WithConverter(conv vm.Converter) *Calculator {
	c.conv = conv
	return c
}

// Compile parses and linearizes src, reusing a cached program when one
// exists. In RPN mode src is taken as a postfix token stream.
func (c *Calculator) Compile(src string) (*vm.Bytecode, error) {
	if c.cache != nil {
		if bc, ok := c.cache.Get(src); ok {
			glog.V(1).Infof("compile cache hit: %q", src)
			return bc.(*vm.Bytecode), nil
		}
	}

	compile := emitter.Compile
	if c.rpn {
		compile = emitter.CompileRPN
	}
	bc, err := compile([]byte(src))
	if err != nil {
		return nil, err
	}
	glog.V(1).Infof("compiled %q -> %s", src, bc)

	if c.cache != nil {
		c.cache.Add(src, bc)
	}
	return bc, nil
}

// Incomplete reports whether src is a prefix of a longer infix program, so
// an interactive caller should keep reading. Postfix input is always taken
// as it is.
func (c *Calculator) Incomplete(src string) bool {
	if c.rpn {
		return false
	}
	_, err := parser.Parse([]byte(src))
	return parser.IsIncomplete(err)
}

// Eval compiles and executes src, writing separator output and the final
// value to out. Nothing is written when evaluation fails.
func (c *Calculator) Eval(src string, out io.Writer) (value.Value, error) {
	bc, err := c.Compile(src)
	if err != nil {
		return value.Void, err
	}
	m := vm.GetMachine()
	defer vm.PutMachine(m)
	m.Out = out
	m.Format = stdlib.Formatter(c.format)
	return m.Run(bc, c.conv)
}

// Quote returns the postfix stream of src, space joined and quoted.
func (c *Calculator) Quote(src string) (string, error) {
	bc, err := c.Compile(src)
	if err != nil {
		return "", err
	}
	return strconv.Quote(bc.String()), nil
}

// Run evaluates src, or prints its quoted postfix stream in quote mode.
func (c *Calculator) Run(src string, out io.Writer) error {
	if !c.quote {
		_, err := c.Eval(src, out)
		return err
	}
	q, err := c.Quote(src)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, q+"\n")
	return errors.Wrap(err, "calc: write")
}

// CacheLen reports the number of cached programs.
func (c *Calculator) CacheLen() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}
