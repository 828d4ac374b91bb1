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

import "strings"

const (
	// IRSuffix selects files produced by the lowering pass.
	IRSuffix = ".ll"
	// ArtifactSuffix is the name ending of a lowered translation unit.
	ArtifactSuffix = "_symbolic.ll"
	SourceSuffix   = ".c"
)

func IsArtifact(p string) bool {
	return strings.HasSuffix(p, ArtifactSuffix)
}

func IsSource(p string) bool {
	return strings.HasSuffix(p, SourceSuffix)
}

// ToSource maps foo_symbolic.ll to foo.c. Other names are returned as is.
func ToSource(artifactPath string) string {
	if !IsArtifact(artifactPath) {
		return artifactPath
	}
	return strings.TrimSuffix(artifactPath, ArtifactSuffix) + SourceSuffix
}

// ToArtifact maps foo.c to foo_symbolic.ll. Other names are returned as is.
func ToArtifact(sourcePath string) string {
	if !IsSource(sourcePath) {
		return sourcePath
	}
	return strings.TrimSuffix(sourcePath, SourceSuffix) + ArtifactSuffix
}
