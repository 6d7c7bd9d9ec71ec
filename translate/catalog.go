package translate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Languages with a message catalog. The first is the fallback.
var supported = []language.Tag{
	language.AmericanEnglish,
	language.German,
}

// German messages, keyed by their en-US format.
var german = map[string]string{
	// intcode
	"decode":                            "Dekodierung",
	"address":                           "Adresse",
	"protocol":                          "Protokoll",
	"opcode invalid":                    "ungültiger Opcode",
	"parameter mode invalid":            "ungültiger Parametermodus",
	"input missing":                     "Eingabe fehlt",
	"instruction after non-zero output": "Befehl nach Ausgabe ungleich null",
	"halted":                            "angehalten",
	"step limit exceeded":               "Schrittgrenze überschritten",
	"dialect unknown":                   "unbekannter Dialekt",
	"ip %d word %d":                     "ip %d Wort %d",
	"address %d outside memory of %d":   "Adresse %d außerhalb des Speichers von %d",
	"opcode %d":                         "Opcode %d",
	"operand %d mode %d":                "Operand %d Modus %d",

	// io
	"image empty":          "Abbild leer",
	"tape has no output":   "Band hat keine Ausgabe",
	"'%v' is not a number": "'%v' ist keine Zahl",

	// emulator
	"no noun and verb produce the target": "kein Nomen und Verb ergibt das Ziel",
	"patch is not address=value":          "Patch ist nicht Adresse=Wert",
	"config dialect":                      "Konfigurationsdialekt",
	"ip %d step %d %v":                    "ip %d Schritt %d %v",
	"patch '%v' %v":                       "Patch '%v' %v",
	"%v is not a valid expression":        "%v ist kein gültiger Ausdruck",
}

func init() {
	for key, text := range german {
		err := message.SetString(language.German, key, text)
		if err != nil {
			panic(err)
		}
	}
}
