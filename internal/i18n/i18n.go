package i18n

import (
	"sort"
	"strings"
)

// Default is used for unknown languages and missing keys.
const Default = "en"

var catalogs = map[string]map[string]string{
	"en": english,
	"nl": dutch,
}

// Languages returns the supported language codes.
func Languages() []string {
	langs := make([]string, 0, len(catalogs))
	for l := range catalogs {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}

// Supported reports whether lang has a catalog.
func Supported(lang string) bool {
	_, ok := catalogs[normalize(lang)]
	return ok
}

// Translator looks up strings for one language.
type Translator struct {
	lang string
}

// New returns a Translator for lang, falling back to English.
func New(lang string) Translator {
	lang = normalize(lang)
	if _, ok := catalogs[lang]; !ok {
		lang = Default
	}
	return Translator{lang: lang}
}

// Lang is the resolved language code.
func (t Translator) Lang() string {
	if t.lang == "" {
		return Default
	}
	return t.lang
}

// T returns the string for key in the translator's language, then English,
// then the key itself. kv are name/value pairs substituted for {name}.
func (t Translator) T(key string, kv ...string) string {
	text, ok := catalogs[t.Lang()][key]
	if !ok {
		text, ok = english[key]
	}
	if !ok {
		text = key
	}
	if len(kv) < 2 {
		return text
	}
	pairs := make([]string, 0, len(kv))
	for i := 0; i+1 < len(kv); i += 2 {
		pairs = append(pairs, "{"+kv[i]+"}", kv[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

func normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	return lang
}
