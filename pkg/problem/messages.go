package problem

import (
	_ "embed"
	"fmt"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Ключи общих сообщений
const (
	KeyValidation       = "errors.validation"
	KeyMalformedPayload = "errors.payload.malformed"
	KeyUnauthorized     = "errors.unauthorized"
	KeyForbidden        = "errors.forbidden"
	KeyInternal         = "errors.internal"
	KeyUpstream         = "errors.upstream"
)

//go:embed messages.yaml
var defaultBundle []byte

// Messages - локализованные сообщения, сгруппированные по языкам.
// Файл бандла: язык -> ключ -> текст.
type Messages struct {
	locales []language.Tag
	texts   []map[string]string
	matcher language.Matcher
}

// LoadMessages объединяет общий бандл с бандлами сервиса.
// Первый язык в defaultLocale используется, если Accept-Language не подошёл.
func LoadMessages(defaultLocale string, bundles ...[]byte) (*Messages, error) {
	merged := map[string]map[string]string{}
	for _, bundle := range append([][]byte{defaultBundle}, bundles...) {
		var parsed map[string]map[string]string
		if err := yaml.Unmarshal(bundle, &parsed); err != nil {
			return nil, fmt.Errorf("failed to parse messages bundle: %w", err)
		}
		for locale, texts := range parsed {
			if merged[locale] == nil {
				merged[locale] = map[string]string{}
			}
			for key, text := range texts {
				merged[locale][key] = text
			}
		}
	}

	if _, ok := merged[defaultLocale]; !ok {
		return nil, fmt.Errorf("no messages for default locale %q", defaultLocale)
	}

	m := &Messages{}
	m.add(defaultLocale, merged[defaultLocale])
	for locale, texts := range merged {
		if locale != defaultLocale {
			m.add(locale, texts)
		}
	}
	m.matcher = language.NewMatcher(m.locales)
	return m, nil
}

func (m *Messages) add(locale string, texts map[string]string) {
	m.locales = append(m.locales, language.Make(locale))
	m.texts = append(m.texts, texts)
}

// Lookup возвращает текст для ключа на языке из заголовка Accept-Language.
// Если перевода нет, возвращается текст языка по умолчанию, затем сам ключ.
func (m *Messages) Lookup(key, acceptLanguage string) string {
	if text, ok := m.texts[m.localeIndex(acceptLanguage)][key]; ok {
		return text
	}
	if text, ok := m.texts[0][key]; ok {
		return text
	}
	return key
}

func (m *Messages) localeIndex(acceptLanguage string) int {
	if acceptLanguage == "" {
		return 0
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return 0
	}
	_, index, confidence := m.matcher.Match(tags...)
	if confidence == language.No {
		return 0
	}
	return index
}
