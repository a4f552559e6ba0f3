// Package i18n translates deck's UI strings.
//
// Catalogs exist for English and Dutch. T falls back to English and then to
// the key itself, so a missing translation shows up as its key instead of an
// empty label. Placeholders use {name} syntax and are filled from
// name/value argument pairs.
package i18n
