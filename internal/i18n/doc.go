// Package i18n holds the English and Indonesian strings of the console and
// the language tags used to pick collation rules.
package i18n
