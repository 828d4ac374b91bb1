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

package compilecommand

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/google/shlex"
)

var ErrMalformedDatabase = errors.New("malformed compilation database")

// CompileCommand is one entry of a compile_commands.json file.
type CompileCommand struct {
	Command   string   `json:"command,omitempty"`
	Arguments []string `json:"arguments,omitempty"`
	File      string   `json:"file"`
	Directory string   `json:"directory"`
	Output    string   `json:"output,omitempty"`
}

// Argv prefers the tokenized "arguments" form. Entries that only carry a
// "command" string are split with shell rules.
func (cc CompileCommand) Argv() ([]string, error) {
	if len(cc.Arguments) > 0 {
		return cc.Arguments, nil
	}
	if cc.Command == "" {
		return nil, nil
	}
	argv, err := shlex.Split(cc.Command)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot split command for %s: %v", ErrMalformedDatabase, cc.File, err)
	}
	return argv, nil
}

func ReadCompileCommands(r io.Reader) ([]CompileCommand, error) {
	byteContent, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	commands := []CompileCommand{}
	if err := json.Unmarshal(byteContent, &commands); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDatabase, err)
	}
	return commands, nil
}

func ReadCompileCommandsFromFile(compileCommandsPath string) ([]CompileCommand, error) {
	ccFile, err := os.Open(compileCommandsPath)
	if err != nil {
		glog.Error(err)
		return nil, fmt.Errorf("compilation database not found: %s: %v", compileCommandsPath, err)
	}
	defer ccFile.Close()

	commands, err := ReadCompileCommands(ccFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", compileCommandsPath, err)
	}
	return commands, nil
}
