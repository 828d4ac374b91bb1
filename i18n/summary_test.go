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

package i18n

import "testing"

func TestSummaries(t *testing.T) {
	for _, testCase := range [...]struct {
		name     string
		got      string
		expected string
	}{
		{"english counted", Counted("en", 12345, 3), "counted 12,345 candidate sites in 3 groups"},
		{"unknown falls back", Counted("fr", 2, 1), "counted 2 candidate sites in 1 groups"},
		{"chinese counted", Counted("zh", 7, 2), "共统计 7 个候选位置，分为 2 组"},
		{"english success", Success("en", 1, 2, 2, 3), "1 of 2 directories complete, 2 of 3 files lowered"},
		{"chinese devices", Devices("zh", 4, 9), "列出 4 个设备，来自 9 个候选目录"},
		{"english normalized", Normalized("en", 10, 2, 1), "10 invocations kept, 2 outside target, 1 unusable"},
		{"english ir", IRFiles("en", 1000, 1), "found 1,000 IR files in 1 groups"},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			if testCase.got != testCase.expected {
				t.Errorf("unexpected result. got: %q. expected: %q.", testCase.got, testCase.expected)
			}
		})
	}
	if !ValidLang("zh") || ValidLang("de") {
		t.Errorf("unexpected language support")
	}
}
