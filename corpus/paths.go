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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/golang/glog"
)

// RealPath resolves symlinks the way realpath(1) does without -e: components
// that do not exist are appended unresolved instead of failing.
func RealPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	parent := filepath.Dir(abs)
	if parent == abs {
		return abs
	}
	return filepath.Join(RealPath(parent), filepath.Base(abs))
}

// RealPathIn is RealPath with relative paths taken from base.
func RealPathIn(p, base string) string {
	if !filepath.IsAbs(p) && base != "" {
		p = filepath.Join(base, p)
	}
	return RealPath(p)
}

// InDir reports whether p lies strictly below dir.
func InDir(p, dir string) bool {
	return strings.HasPrefix(p, strings.TrimRight(dir, string(filepath.Separator))+string(filepath.Separator))
}

func MatchIgnorePatterns(patterns []string, p string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, p)
		if err != nil {
			return false, fmt.Errorf("malformed ignore_dir pattern %s", pattern)
		}
		if matched {
			glog.V(1).Infof("%s ignored due to pattern %s", p, pattern)
			return true, nil
		}
	}
	return false, nil
}

// ValidatePatterns rejects malformed patterns up front so a bad pattern fails
// the run instead of silently matching nothing.
func ValidatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		// Matching against the pattern itself walks it far enough to reach
		// an unterminated class or brace.
		_, errEmpty := doublestar.Match(pattern, "")
		_, errSelf := doublestar.Match(pattern, pattern)
		if errEmpty != nil || errSelf != nil {
			return fmt.Errorf("malformed ignore_dir pattern %s", pattern)
		}
	}
	return nil
}

func IsDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

func IsFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

// WithoutIgnored drops the paths matching any of patterns, keeping order.
func WithoutIgnored(paths []string, patterns []string) ([]string, error) {
	if err := ValidatePatterns(patterns); err != nil {
		return nil, err
	}
	if len(patterns) == 0 {
		return paths, nil
	}
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if ignored, _ := MatchIgnorePatterns(patterns, p); !ignored {
			kept = append(kept, p)
		}
	}
	return kept, nil
}
