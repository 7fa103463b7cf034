package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/agenthands/hexa/pkg/calc"
)

// maxLine bounds one input line, matching the most tokens a program may hold.
const maxLine = 1 << 24

// batch evaluates one expression per input line. A failing line is reported
// and does not stop the following ones.
func batch(c *calc.Calculator, in io.Reader, stdout, stderr io.Writer) error {
	var result *multierror.Error

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLine)
	lineNo, evaluated := 0, 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		evaluated++
		if err := c.Run(line, stdout); err != nil {
			err = errors.Wrapf(err, "line %d", lineNo)
			fmt.Fprintf(stderr, "hd: %v\n", err)
			result = multierror.Append(result, err)
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "read input")
	}

	if result != nil {
		result.ErrorFormat = func(es []error) string {
			return fmt.Sprintf("%d of %d lines failed", len(es), evaluated)
		}
	}
	return result.ErrorOrNil()
}
