// Package i18n holds the user-visible strings of the recommender in the
// supported languages and picks a language for a request.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. The English text doubles as the key.
//
// Numbers are passed preformatted as %s: the printer applies locale digit
// grouping to %d, which would turn shoe #1000 into #1.000.
const (
	MissingGarments  = "You must upload all garments."
	BestOption       = "Best option: Shoe #%s"
	FileTooLarge     = "File %s is too large. Max size: %s bytes"
	FileUnreadable   = "Could not read file %s"
	InvalidForm      = "Failed to read the submitted form"
	UpstreamFailed   = "The recommendation service could not be reached"
	UpstreamStatus   = "The recommendation service answered with status %s"
	UpstreamInvalid  = "The recommendation service returned an invalid response"
	UpstreamTooLarge = "The recommendation service response is too large"
)

var translations = map[string]map[language.Tag]string{
	MissingGarments: {
		language.Spanish: "Debes subir todas las prendas.",
	},
	BestOption: {
		language.Spanish: "Mejor opción: Zapato #%s",
	},
	FileTooLarge: {
		language.Spanish: "El archivo %s es demasiado grande. Tamaño máximo: %s bytes",
	},
	FileUnreadable: {
		language.Spanish: "No se pudo leer el archivo %s",
	},
	InvalidForm: {
		language.Spanish: "No se pudo leer el formulario enviado",
	},
	UpstreamFailed: {
		language.Spanish: "No se pudo contactar al servicio de recomendaciones",
	},
	UpstreamStatus: {
		language.Spanish: "El servicio de recomendaciones respondió con estado %s",
	},
	UpstreamInvalid: {
		language.Spanish: "El servicio de recomendaciones devolvió una respuesta inválida",
	},
	UpstreamTooLarge: {
		language.Spanish: "La respuesta del servicio de recomendaciones es demasiado grande",
	},
}

var supported = []language.Tag{language.Spanish, language.English}

var matcher = language.NewMatcher(supported)

func init() {
	for key, byTag := range translations {
		if err := message.SetString(language.English, key, key); err != nil {
			panic(err)
		}
		for tag, text := range byTag {
			if err := message.SetString(tag, key, text); err != nil {
				panic(err)
			}
		}
	}
}

// Supported returns the languages with a full catalog.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Printer returns a printer for one of the supported languages.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ParseTag maps a language value like "es-MX" onto a supported tag.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	return match([]language.Tag{tag})
}

// MatchAcceptLanguage picks a supported tag from an Accept-Language header,
// or fallback when nothing matches.
func MatchAcceptLanguage(header string, fallback language.Tag) language.Tag {
	header = strings.TrimSpace(header)
	if header == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	if tag, ok := match(tags); ok {
		return tag
	}
	return fallback
}

func match(tags []language.Tag) (language.Tag, bool) {
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return language.Und, false
	}
	return supported[index], true
}
