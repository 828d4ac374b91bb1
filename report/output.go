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
	"io"
	"os"

	"naive.systems/drivercorpus/atomic"
)

// Stdout is the output name that writes to standard output.
const Stdout = "-"

// Emit sends a rendered report to output, replacing any previous file in
// one step.
func Emit(output string, render func(w io.Writer) error) error {
	if output == "" || output == Stdout {
		bw := bufio.NewWriter(os.Stdout)
		if err := render(bw); err != nil {
			return err
		}
		return bw.Flush()
	}
	return atomic.WriteFile(output, render)
}
