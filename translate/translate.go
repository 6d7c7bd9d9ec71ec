// Package translate formats user visible messages for the Intcode tools
// in the language of the host locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("intcode: locale: %v", err)
	}

	SetLocales(locales...)
}

// SetLocales selects the message printer for the best supported locale.
// Unparsable locales are skipped; no match selects en-US.
func SetLocales(locales ...string) {
	var tags []language.Tag
	for _, name := range locales {
		tag, err := language.Parse(name)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}

	tag := supported[0]
	if len(tags) != 0 {
		_, index, confidence := language.NewMatcher(supported).Match(tags...)
		if confidence != language.No {
			tag = supported[index]
		}
	}

	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
