package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/agenthands/hexa/pkg/core/ops"
	"github.com/agenthands/hexa/pkg/stdlib"
)

func printOps(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Aliases", "Operation", "Arity", "Category", "Precedence"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	for _, info := range ops.All() {
		prec := "-"
		switch info.Arity {
		case ops.ArityBinary:
			prec = strconv.Itoa(int(info.Level))
		case ops.ArityUnary:
			prec = "prefix"
		}
		table.Append([]string{
			strings.Join(info.Aliases, " "),
			info.Name,
			strconv.Itoa(int(info.Arity)),
			info.Category.String(),
			prec,
		})
	}
	table.Render()
	return nil
}

// printTable lays each block of 128 codes out in four side-by-side columns.
func printTable(w io.Writer, extended bool) error {
	const cols, block = 4, 128
	rows := stdlib.Table(extended)

	table := tablewriter.NewWriter(w)
	var header []string
	for i := 0; i < cols; i++ {
		header = append(header, "Dec", "Hex", "Oct", "Char")
	}
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for start := 0; start < len(rows); start += block {
		for i := 0; i < block/cols; i++ {
			var line []string
			for c := 0; c < cols; c++ {
				line = append(line, rows[start+i+c*block/cols].Cells()...)
			}
			table.Append(line)
		}
	}
	table.Render()
	return nil
}

func printOrd(w io.Writer, text string) error {
	n, err := stdlib.Ord(text)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, n)
	return err
}

func printChr(w io.Writer, code int64) error {
	s, err := stdlib.Chr(code)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}
