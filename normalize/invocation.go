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
	"errors"
	"fmt"
	"strings"

	"github.com/google/shlex"
	"naive.systems/drivercorpus/compilecommand"
	"naive.systems/drivercorpus/corpus"
)

var (
	ErrOutOfScope = errors.New("source outside target directory")
	ErrUnusable   = errors.New("unusable compiler invocation")
)

// Invocation is the portable form of one compiler run. Args never contain the
// compiler or the source file.
type Invocation struct {
	Source   string
	Compiler string
	Args     []string
}

// Line renders the invocation as "<source>\t<quoted args>".
func (inv Invocation) Line() string {
	return inv.Source + "\t" + Join(inv.Args)
}

// FromCompileCommand normalizes one database entry. The entry's file is
// resolved against its directory. targetDir must already be a real path.
func FromCompileCommand(cc compilecommand.CompileCommand, targetDir, compiler string) (Invocation, error) {
	if cc.File == "" {
		return Invocation{}, fmt.Errorf("%w: entry without a file", ErrUnusable)
	}
	source := corpus.RealPathIn(cc.File, cc.Directory)
	if !corpus.InDir(source, targetDir) {
		return Invocation{}, fmt.Errorf("%w: %s", ErrOutOfScope, source)
	}
	argv, err := cc.Argv()
	if err != nil {
		return Invocation{}, fmt.Errorf("%w: %v", ErrUnusable, err)
	}
	if len(argv) == 0 {
		return Invocation{}, fmt.Errorf("%w: empty command for %s", ErrUnusable, source)
	}
	return Invocation{
		Source:   source,
		Compiler: compilerOrDefault(compiler),
		Args:     FilterArgs(argv[1:], source, cc.Directory),
	}, nil
}

// FromLogCommand normalizes one command line cut out of a build log. The last
// .c token is the source; relative tokens are taken from sourceRoot.
// targetDir must already be a real path.
func FromLogCommand(cmd, sourceRoot, targetDir, compiler string) (Invocation, error) {
	parts, err := shlex.Split(cmd)
	if err != nil {
		return Invocation{}, fmt.Errorf("%w: %v", ErrUnusable, err)
	}
	if len(parts) == 0 {
		return Invocation{}, fmt.Errorf("%w: empty command", ErrUnusable)
	}
	source := ""
	for _, part := range parts {
		if corpus.IsSource(part) {
			source = corpus.RealPathIn(part, sourceRoot)
		}
	}
	if source == "" {
		return Invocation{}, fmt.Errorf("%w: no C source in %q", ErrUnusable, cmd)
	}
	if !corpus.InDir(source, targetDir) {
		return Invocation{}, fmt.Errorf("%w: %s", ErrOutOfScope, source)
	}
	return Invocation{
		Source:   source,
		Compiler: compilerOrDefault(compiler),
		Args:     FilterArgs(parts[1:], source, sourceRoot),
	}, nil
}

func compilerOrDefault(compiler string) string {
	if strings.TrimSpace(compiler) == "" {
		return "clang"
	}
	return compiler
}
