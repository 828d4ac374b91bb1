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

package extract

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

const DefaultCompiler = "clang"

// CompileLogPattern matches "<compiler> ... -c [args...] <file>.c" inside one
// logical line of build output. The match ends at the first .c token after -c.
func CompileLogPattern(compiler string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(compiler) + `\b.*?\s-c\s+(?:\S+\s+)*?\S+\.c\b`)
}

// LogicalLines joins lines ending in a backslash with the line that follows.
func LogicalLines(r io.Reader) ([]string, error) {
	var lines []string
	var pending strings.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasSuffix(line, "\\") {
			pending.WriteString(strings.TrimSuffix(line, "\\"))
			pending.WriteByte(' ')
			continue
		}
		pending.WriteString(line)
		lines = append(lines, pending.String())
		pending.Reset()
	}
	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("reading build log: %v", err)
	}
	if pending.Len() > 0 {
		lines = append(lines, pending.String())
	}
	return lines, nil
}

// CompileLogCommands returns the compiler invocations embedded in build
// output, one per logical line at most. A match is kept only when the compiler
// name is followed by a space, so clang-14 or clang-tidy lines are dropped
// while a leading "/usr/bin/" or "ccache " is cut off.
func CompileLogCommands(r io.Reader, compiler string) ([]string, error) {
	if compiler == "" {
		compiler = DefaultCompiler
	}
	pattern := CompileLogPattern(compiler)
	lines, err := LogicalLines(r)
	if err != nil {
		return nil, err
	}
	var commands []string
	for _, line := range lines {
		cmd := pattern.FindString(line)
		if cmd == "" || !strings.HasPrefix(cmd, compiler+" ") {
			continue
		}
		commands = append(commands, cmd)
	}
	return commands, nil
}
