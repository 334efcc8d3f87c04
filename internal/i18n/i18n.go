// Package i18n holds larder's translated strings and maps the active locale
// onto the collation tag used for sorting.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// DefaultLocale is used when nothing else is configured.
const DefaultLocale = "en"

var (
	supported = []string{"en", "id"}
	tags      = map[string]language.Tag{
		"en": language.English,
		"id": language.Indonesian,
	}
	matcher = language.NewMatcher([]language.Tag{language.English, language.Indonesian})
	builder = newCatalog()
)

// Locale is a resolved locale with a printer bound to larder's catalog.
type Locale struct {
	code    string
	tag     language.Tag
	printer *message.Printer
}

// Resolve returns the supported locale closest to code. Unknown or empty
// codes fall back to English.
func Resolve(code string) Locale {
	normalized := strings.ToLower(strings.TrimSpace(code))
	if _, ok := tags[normalized]; !ok {
		normalized = DefaultLocale
		if parsed, err := language.Parse(code); err == nil {
			_, idx, conf := matcher.Match(parsed)
			if conf != language.No {
				normalized = supported[idx]
			}
		}
	}
	tag := tags[normalized]
	return Locale{
		code:    normalized,
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
	}
}

// Supported lists the locale codes larder ships strings for.
func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// Next returns the locale code after code in the supported cycle.
func Next(code string) string {
	current := Resolve(code).code
	for i, c := range supported {
		if c == current {
			return supported[(i+1)%len(supported)]
		}
	}
	return DefaultLocale
}

// Code returns the short locale code, e.g. "en".
func (l Locale) Code() string {
	if l.code == "" {
		return DefaultLocale
	}
	return l.code
}

// Tag returns the language tag, used for collation.
func (l Locale) Tag() language.Tag {
	if l.printer == nil {
		return language.English
	}
	return l.tag
}

// T looks up key and formats it with args.
func (l Locale) T(key string, args ...any) string {
	if l.printer == nil {
		l = Resolve(DefaultLocale)
	}
	return l.printer.Sprintf(key, args...)
}

// Number formats n with the locale's digit grouping.
func (l Locale) Number(n any) string {
	if l.printer == nil {
		return fmt.Sprint(n)
	}
	return l.printer.Sprint(n)
}

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for code, entries := range messages {
		tag := tags[code]
		for key, msg := range entries {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("i18n: register %s/%s: %v", code, key, err))
			}
		}
	}
	return b
}
