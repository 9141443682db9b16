// Package i18n renders human-readable messages for issue codes.
package i18n

import (
	"strings"
	"sync/atomic"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "min", "max" or "values"). data["variant"] selects a refined template
// such as "too_small.exclusive".
type Translator interface {
	Message(code string, data map[string]string) string
}

var catalog = map[string]map[string]string{
	"en": {
		"invalid_type":               "invalid type",
		"invalid_type.expected":      "expected {expected}",
		"required":                   "required",
		"unknown_key":                "unknown key",
		"too_small":                  "must be greater than or equal to {min}",
		"too_small.exclusive":        "must be greater than {min}",
		"too_big":                    "must be less than or equal to {max}",
		"too_short":                  "must contain at least {min} character(s)",
		"too_short.items":            "must contain at least {min} item(s)",
		"too_long":                   "must contain at most {max} character(s)",
		"too_long.items":             "must contain at most {max} item(s)",
		"pattern":                    "invalid format",
		"pattern.named":              "must be a valid {format}",
		"invalid_enum":               "must be one of: {values}",
		"invalid_format":             "invalid format",
		"invalid_format.named":       "must be a valid {format}",
		"business_rule":              "business rule violated",
		"business_rule.not_before":   "{field} must not be before {other}",
		"business_rule.after":        "{field} must be after {other}",
		"business_rule.exclusive":    "{field} and {other} cannot both be set",
		"business_rule.differ":       "{field} must differ from {other}",
		"business_rule.positive_sum": "{fields} must be greater than 0",
		"business_rule.compare":      "{field} must be {op} {want}",
		"parse_error":                "parse error",
	},
	"ja": {
		"invalid_type":               "型が不正です",
		"invalid_type.expected":      "{expected} を指定してください",
		"required":                   "必須項目です",
		"unknown_key":                "未知のキーです",
		"too_small":                  "{min} 以上で指定してください",
		"too_small.exclusive":        "{min} より大きい値を指定してください",
		"too_big":                    "{max} 以下で指定してください",
		"too_short":                  "{min} 文字以上で指定してください",
		"too_short.items":            "{min} 件以上で指定してください",
		"too_long":                   "{max} 文字以内で指定してください",
		"too_long.items":             "{max} 件以内で指定してください",
		"pattern":                    "形式が不正です",
		"pattern.named":              "{format} の形式で指定してください",
		"invalid_enum":               "次のいずれかを指定してください: {values}",
		"invalid_format":             "形式が不正です",
		"invalid_format.named":       "{format} の形式で指定してください",
		"business_rule":              "業務ルール違反です",
		"business_rule.not_before":   "{field} は {other} 以降の日付を指定してください",
		"business_rule.after":        "{field} は {other} より後の日付を指定してください",
		"business_rule.exclusive":    "{field} と {other} は同時に指定できません",
		"business_rule.differ":       "{field} は {other} と異なる値を指定してください",
		"business_rule.positive_sum": "{fields} の合計は 0 より大きくしてください",
		"business_rule.compare":      "{field} は {op} {want} を満たす必要があります",
		"parse_error":                "解析エラー",
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	dict := catalog[t.lang]
	if v := data["variant"]; v != "" {
		if tpl, ok := dict[code+"."+v]; ok {
			if msg, ok := render(tpl, data); ok {
				return msg
			}
		}
	}
	if tpl, ok := dict[code]; ok {
		if msg, ok := render(tpl, data); ok {
			return msg
		}
	}
	return code
}

// render substitutes {key} placeholders; ok=false if any placeholder is left.
func render(tpl string, data map[string]string) (string, bool) {
	out := tpl
	for k, v := range data {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	if strings.Contains(out, "{") {
		return "", false
	}
	return out, true
}

type holder struct{ tr Translator }

var current atomic.Pointer[holder]

func init() { current.Store(&holder{tr: dictTranslator{lang: "en"}}) }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if _, ok := catalog[lang]; !ok {
		lang = "en"
	}
	current.Store(&holder{tr: dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(&holder{tr: tr})
}

// Languages lists the built-in languages.
func Languages() []string { return []string{"en", "ja"} }

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return current.Load().tr.Message(code, data) }
