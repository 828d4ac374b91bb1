/*
NaiveSystems Analyze - A tool for static code analysis
Copyright (C) 2023  Naive Systems Ltd.

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"naive.systems/drivercorpus/options"
)

type Table struct {
	Headers []string
	Rows    [][]string
}

// WriteTable renders t as a markdown table, as delimited text with a header
// line (csv, tsv), or as bare tab separated rows (txt). Cells are written
// verbatim.
func WriteTable(w io.Writer, t Table, format string) error {
	bw := bufio.NewWriter(w)
	switch format {
	case options.MD:
		writeMarkdownRow(bw, t.Headers)
		separator := make([]string, len(t.Headers))
		for i := range separator {
			separator[i] = "---"
		}
		writeMarkdownRow(bw, separator)
		for _, row := range t.Rows {
			writeMarkdownRow(bw, row)
		}
	case options.CSV, options.TSV:
		sep := ","
		if format == options.TSV {
			sep = "\t"
		}
		bw.WriteString(strings.Join(t.Headers, sep) + "\n")
		for _, row := range t.Rows {
			bw.WriteString(strings.Join(row, sep) + "\n")
		}
	case options.TXT:
		for _, row := range t.Rows {
			bw.WriteString(strings.Join(row, "\t") + "\n")
		}
	default:
		return fmt.Errorf("%w: %q", options.ErrInvalidFormat, format)
	}
	return bw.Flush()
}

func writeMarkdownRow(w *bufio.Writer, cells []string) {
	w.WriteString("| " + strings.Join(cells, " | ") + " |\n")
}
