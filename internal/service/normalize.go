package service

import (
	"strings"

	"maori_dictionary/internal/model"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCase は前後の空白を除去し、各単語の先頭を大文字にします。
// cases.Caser は並行利用できないため呼び出しごとに生成する。
func titleCase(s string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeTerm は maori / english の保存形式 (trim + 小文字)
func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func clampLevel(level int) int {
	if level < model.MinLevel {
		return model.MinLevel
	}
	if level > model.MaxLevel {
		return model.MaxLevel
	}
	return level
}
