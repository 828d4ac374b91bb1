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

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var languageMap = map[string]language.Tag{"en": language.English, "zh": language.Chinese}

const (
	countedMsg    = "counted %d candidate sites in %d groups"
	irMsg         = "found %d IR files in %d groups"
	successMsg    = "%d of %d directories complete, %d of %d files lowered"
	devicesMsg    = "listed %d devices from %d candidate directories"
	normalizedMsg = "%d invocations kept, %d outside target, %d unusable"
)

var zhMessages = map[string]string{
	countedMsg:    "共统计 %d 个候选位置，分为 %d 组",
	irMsg:         "共找到 %d 个 IR 文件，分为 %d 组",
	successMsg:    "%d/%d 个目录已全部完成，%d/%d 个文件已生成 IR",
	devicesMsg:    "列出 %d 个设备，来自 %d 个候选目录",
	normalizedMsg: "保留 %d 条编译命令，%d 条不在目标目录内，%d 条无法使用",
}

func init() {
	for key, msg := range zhMessages {
		if err := message.SetString(language.Chinese, key, msg); err != nil {
			panic(fmt.Sprintf("bad translation for %q: %v", key, err))
		}
	}
}

func ValidLang(lang string) bool {
	_, ok := languageMap[lang]
	return ok
}

// GetPrinter falls back to English for unknown languages.
func GetPrinter(lang string) *message.Printer {
	langTag, exist := languageMap[lang]
	if !exist {
		langTag = language.English
	}
	return message.NewPrinter(langTag)
}

func Counted(lang string, sites, groups int) string {
	return GetPrinter(lang).Sprintf(countedMsg, sites, groups)
}

func IRFiles(lang string, files, groups int) string {
	return GetPrinter(lang).Sprintf(irMsg, files, groups)
}

func Success(lang string, completeDirs, totalDirs, successFiles, totalFiles int) string {
	return GetPrinter(lang).Sprintf(successMsg, completeDirs, totalDirs, successFiles, totalFiles)
}

func Devices(lang string, devices, dirs int) string {
	return GetPrinter(lang).Sprintf(devicesMsg, devices, dirs)
}

func Normalized(lang string, accepted, outOfScope, unusable int) string {
	return GetPrinter(lang).Sprintf(normalizedMsg, accepted, outOfScope, unusable)
}
