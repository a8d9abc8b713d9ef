package render

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys are the English display strings.
const (
	msgTitle         = "Catalog"
	msgSearch        = "Search products..."
	msgAllCategories = "All Categories"
	msgNoMatches     = "No matching products."
	msgLoadFailed    = "An error occurred while loading the products."
	msgClose         = "Close"
)

var arabic = map[string]string{
	msgTitle:         "المتجر",
	msgSearch:        "ابحث عن المنتجات...",
	msgAllCategories: "جميع الفئات",
	msgNoMatches:     "لا توجد منتجات مطابقة.",
	msgLoadFailed:    "حدث خطأ أثناء تحميل المنتجات.",
	msgClose:         "إغلاق",
}

var (
	supported = []language.Tag{language.English, language.Arabic}
	matcher   = language.NewMatcher(supported)
)

func init() {
	for key, ar := range arabic {
		_ = message.SetString(language.English, key, key)
		_ = message.SetString(language.Arabic, key, ar)
	}
}

type Locale struct {
	Tag     language.Tag
	printer *message.Printer
}

func newLocale(tag language.Tag) Locale {
	return Locale{Tag: tag, printer: message.NewPrinter(tag)}
}

// T returns the display string for key in this locale.
func (l Locale) T(key string) string {
	if l.printer == nil {
		return key
	}
	return l.printer.Sprintf(key)
}

func (l Locale) Lang() string { return l.Tag.String() }

func (l Locale) Dir() string {
	if l.Tag == language.Arabic {
		return "rtl"
	}
	return "ltr"
}

// ParseLocale maps a configured locale name onto a supported one.
func ParseLocale(name string) (Locale, error) {
	tag, err := language.Parse(name)
	if err != nil {
		return Locale{}, fmt.Errorf("locale %q: %w", name, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Locale{}, fmt.Errorf("locale %q is not supported", name)
	}
	return newLocale(supported[idx]), nil
}

// MatchLocale picks the locale for an Accept-Language header, falling back to
// fallback when nothing acceptable is supported.
func MatchLocale(acceptLanguage string, fallback Locale) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err == nil && len(tags) > 0 {
		if _, idx, conf := matcher.Match(tags...); conf != language.No {
			return newLocale(supported[idx])
		}
	}
	if fallback.printer == nil {
		return newLocale(language.English)
	}
	return fallback
}

func English() Locale { return newLocale(language.English) }
