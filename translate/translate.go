// Package translate renders eonasm diagnostics in the user's locale.
package translate

import (
	"io"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

// plurals are the en-US messages whose wording depends on a count.
var plurals = map[string][]any{
	"%d errors":  {"=1", "%d error", "other", "%d errors"},
	"%d errors.": {"=1", "%d error.", "other", "%d errors."},
}

func init() {
	for key, cases := range plurals {
		err := message.Set(language.AmericanEnglish, key, plural.Selectf(1, "%d", cases...))
		if err != nil {
			log.Printf("eonasm: locale: %v", err)
		}
	}

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("eonasm: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Fprintf writes a translated en-US Fprintf() format to w.
func Fprintf(w io.Writer, key message.Reference, args ...any) (n int, err error) {
	return printer.Fprintf(w, key, args...)
}
