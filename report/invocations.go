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

	"naive.systems/drivercorpus/normalize"
)

// WriteInvocations writes one "<source>\t<args>" line per invocation.
func WriteInvocations(w io.Writer, invocations []normalize.Invocation) error {
	bw := bufio.NewWriter(w)
	for _, inv := range invocations {
		if _, err := bw.WriteString(inv.Line() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
