package speechtotext

import (
	"errors"
	"slices"
)

// DefaultLocale is used when no locale is selected.
const DefaultLocale = "en-US"

// ErrUnsupportedLocale is returned when a recognition locale is not in the
// supported set.
var ErrUnsupportedLocale = errors.New("unsupported recognition locale")

var supportedLocales = []string{
	"en-US",
	"es-ES",
	"fr-FR",
	"de-DE",
	"hi-IN",
	"ja-JP",
	"zh-CN",
	"ar-SA",
	"te-IN",
}

// SupportedLocales returns the fixed set of recognition locales, in
// selection order.
func SupportedLocales() []string {
	return slices.Clone(supportedLocales)
}

// IsSupportedLocale reports whether the locale is in the supported set.
func IsSupportedLocale(locale string) bool {
	return slices.Contains(supportedLocales, locale)
}
