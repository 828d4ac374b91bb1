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

package normalize

import (
	"strings"

	"naive.systems/drivercorpus/corpus"
)

// Flags whose following token is their value and goes with them.
var valueFlags = map[string]bool{
	"-o":  true,
	"-MF": true,
	"-MT": true,
	"-MQ": true,
}

var depFileFlags = map[string]bool{
	"-MD":  true,
	"-MMD": true,
}

// FilterArgs strips compile-only, output, dependency-file, optimization and
// debug flags from args, which must not include the compiler itself. Tokens
// naming sourceReal are dropped too, with relative tokens resolved against
// baseDir. All other tokens are kept in their original order.
func FilterArgs(args []string, sourceReal, baseDir string) []string {
	filtered := []string{}
	skipNext := false
	for _, arg := range args {
		if skipNext {
			skipNext = false
			continue
		}
		switch {
		case arg == "-c":
			continue
		case valueFlags[arg]:
			skipNext = true
			continue
		case depFileFlags[arg]:
			continue
		case strings.HasPrefix(arg, "-o"):
			continue
		case strings.HasPrefix(arg, "-O"), arg == "-g":
			continue
		case sourceReal != "" && corpus.RealPathIn(arg, baseDir) == sourceReal:
			continue
		}
		filtered = append(filtered, arg)
	}
	return filtered
}
