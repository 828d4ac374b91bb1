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
	"os"
	"regexp"
	"strconv"
	"strings"

	"naive.systems/drivercorpus/corpus"
)

// A candidate line looks like
//
//	drivers/net/eth/foo.c:12 (cfg:3): free of a possibly aliased pointer
var candidateLine = regexp.MustCompile(`^(?P<path>.*?):(?P<line>\d+) \(cfg:(?P<cfg>\d+)\):`)

type CandidateRecord struct {
	Path   string
	Line   int
	Config int
}

// ParseCandidateLine reports false for blank or malformed lines.
func ParseCandidateLine(line string) (CandidateRecord, bool) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return CandidateRecord{}, false
	}
	match := candidateLine.FindStringSubmatch(line)
	if match == nil {
		return CandidateRecord{}, false
	}
	lineNo, err := strconv.Atoi(match[2])
	if err != nil {
		return CandidateRecord{}, false
	}
	cfg, err := strconv.Atoi(match[3])
	if err != nil {
		return CandidateRecord{}, false
	}
	return CandidateRecord{Path: match[1], Line: lineNo, Config: cfg}, true
}

func Candidates(r io.Reader) ([]CandidateRecord, error) {
	var records []CandidateRecord
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if record, ok := ParseCandidateLine(line); ok {
			records = append(records, record)
		}
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, fmt.Errorf("reading candidates: %v", err)
		}
	}
}

func ReadCandidatesFile(path string) ([]CandidateRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("candidates file not found: %s: %v", path, err)
	}
	defer f.Close()
	records, err := Candidates(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return records, nil
}

// Paths returns the corpus-relative path of every record, in input order.
func Paths(records []CandidateRecord, corpusRoot string) []string {
	paths := make([]string, 0, len(records))
	for _, record := range records {
		paths = append(paths, corpus.RelPath(record.Path, corpusRoot))
	}
	return paths
}

// CandidateDirs is the set of directories holding at least one candidate C
// source.
func CandidateDirs(records []CandidateRecord, corpusRoot string) map[string]bool {
	dirs := make(map[string]bool)
	for _, rel := range Paths(records, corpusRoot) {
		if !corpus.IsSource(rel) {
			continue
		}
		dir, _ := corpus.Classify(rel, corpus.Dir)
		dirs[dir] = true
	}
	return dirs
}
