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

package corpus

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// DriversRoot is the top-level directory whose children are subsystems.
const DriversRoot = "drivers"

var ErrInvalidGroupPolicy = errors.New("invalid group policy")

type GroupPolicy int

const (
	File GroupPolicy = iota
	Device
	Dir
	Subsystem
	SubsystemDevice
)

var policyNames = map[GroupPolicy]string{
	File:            "file",
	Device:          "device",
	Dir:             "dir",
	Subsystem:       "subsystem",
	SubsystemDevice: "subsystem_device",
}

// PolicyNames lists the accepted policy names in declaration order.
func PolicyNames() []string {
	return []string{"file", "device", "dir", "subsystem", "subsystem_device"}
}

func (g GroupPolicy) String() string {
	if name, ok := policyNames[g]; ok {
		return name
	}
	return fmt.Sprintf("GroupPolicy(%d)", int(g))
}

func ParseGroupPolicy(name string) (GroupPolicy, error) {
	for policy, policyName := range policyNames {
		if policyName == name {
			return policy, nil
		}
	}
	return File, fmt.Errorf("%w: %q (want one of %s)", ErrInvalidGroupPolicy, name, strings.Join(PolicyNames(), ", "))
}

// Classify derives the group key of a corpus-relative path. It never touches
// the filesystem.
func Classify(relPath string, policy GroupPolicy) (string, error) {
	switch policy {
	case File:
		return relPath, nil
	case Device:
		return DeviceOf(relPath), nil
	case Dir:
		return DirOf(relPath), nil
	case Subsystem:
		return SubsystemOf(relPath), nil
	case SubsystemDevice:
		return SubsystemOf(relPath) + "/" + DeviceOf(relPath), nil
	}
	return "", fmt.Errorf("%w: %v", ErrInvalidGroupPolicy, policy)
}

// DirOf returns the parent directory path, or "" when there is none.
func DirOf(relPath string) string {
	idx := strings.LastIndex(relPath, "/")
	if idx < 0 {
		return ""
	}
	return relPath[:idx]
}

// DeviceOf returns the name of the immediate parent directory.
func DeviceOf(relPath string) string {
	dir := DirOf(relPath)
	if dir == "" {
		return ""
	}
	return path.Base(dir)
}

// SubsystemOf expects drivers/<subsystem>/... and falls back to the first
// segment for anything else.
func SubsystemOf(relPath string) string {
	parts := strings.Split(relPath, "/")
	if len(parts) >= 2 && parts[0] == DriversRoot {
		return parts[1]
	}
	return parts[0]
}

// RelPath strips root from an absolute path under it. Paths outside root are
// returned unchanged.
func RelPath(p, root string) string {
	root = strings.TrimRight(root, "/")
	if root == "" {
		return p
	}
	if strings.HasPrefix(p, root+"/") {
		return p[len(root)+1:]
	}
	return p
}
