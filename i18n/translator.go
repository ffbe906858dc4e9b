package i18n

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Translator retrieves localized messages for validation keywords.
// data carries rendered parameters to embed in the message (for example,
// "limit", "instance" or "property").
type Translator interface {
	Message(keyword string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Templates use
// {name} placeholders filled from data.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"maxItems":         "{instance} has more than {limit} items",
		"minItems":         "{instance} has less than {limit} items",
		"maxLength":        "{instance} is longer than {limit} characters",
		"minLength":        "{instance} is shorter than {limit} characters",
		"maxProperties":    "{instance} has more than {limit} properties",
		"minProperties":    "{instance} has less than {limit} properties",
		"required":         "'{property}' is a required property",
		"enum":             "{instance} is not one of {options}",
		"const":            "{expected} was expected",
		"minimum":          "{instance} is less than the minimum of {limit}",
		"maximum":          "{instance} is greater than the maximum of {limit}",
		"exclusiveMinimum": "{instance} is less than or equal to the minimum of {limit}",
		"exclusiveMaximum": "{instance} is greater than or equal to the maximum of {limit}",
		"not":              "{instance} is not allowed for {schema}",
		"false":            "false schema does not allow {instance}",
		"unknown":          "validation failed",
	},
	"ja": {
		"maxItems":         "{instance} の要素数が {limit} を超えています",
		"minItems":         "{instance} の要素数が {limit} 未満です",
		"maxLength":        "{instance} が {limit} 文字を超えています",
		"minLength":        "{instance} が {limit} 文字未満です",
		"maxProperties":    "{instance} のプロパティ数が {limit} を超えています",
		"minProperties":    "{instance} のプロパティ数が {limit} 未満です",
		"required":         "必須プロパティ '{property}' が不足しています",
		"enum":             "{instance} は {options} のいずれでもありません",
		"const":            "{expected} である必要があります",
		"minimum":          "{instance} は最小値 {limit} 未満です",
		"maximum":          "{instance} は最大値 {limit} を超えています",
		"exclusiveMinimum": "{instance} は {limit} より大きい必要があります",
		"exclusiveMaximum": "{instance} は {limit} より小さい必要があります",
		"not":              "{instance} は {schema} に一致してはいけません",
		"false":            "false スキーマは {instance} を許可しません",
		"unknown":          "検証に失敗しました",
	},
}

func (t dictTranslator) Message(keyword string, data map[string]string) string {
	dict := dictionaries[t.lang]
	tmpl, ok := dict[keyword]
	if !ok {
		tmpl = dict["unknown"]
	}
	return fill(tmpl, data)
}

func fill(tmpl string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var supported = []language.Tag{language.English, language.Japanese}

var matcher = language.NewMatcher(supported)

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator to the closest supported
// language for a BCP 47 tag ("ja-JP" selects Japanese). Unsupported tags
// fall back to English.
func SetLanguage(lang string) {
	_, idx := language.MatchStrings(matcher, lang)
	base, _ := supported[idx].Base()
	mu.Lock()
	currentTranslator = dictTranslator{lang: base.String()}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation. nil restores the
// English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given keyword using the current Translator.
func T(keyword string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(keyword, data)
}
