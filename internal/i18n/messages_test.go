package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestPrinterTranslations(t *testing.T) {
	tests := []struct {
		name string
		tag  language.Tag
		key  string
		args []any
		want string
	}{
		{"spanish missing garments", language.Spanish, MissingGarments, nil, "Debes subir todas las prendas."},
		{"english missing garments", language.English, MissingGarments, nil, "You must upload all garments."},
		{"spanish best option", language.Spanish, BestOption, []any{"3"}, "Mejor opción: Zapato #3"},
		{"english best option", language.English, BestOption, []any{"1"}, "Best option: Shoe #1"},
		{"spanish best option keeps digits", language.Spanish, BestOption, []any{"1000"}, "Mejor opción: Zapato #1000"},
		{"english file too large keeps digits", language.English, FileTooLarge, []any{"a.jpg", "10485760"}, "File a.jpg is too large. Max size: 10485760 bytes"},
		{"spanish unreadable", language.Spanish, FileUnreadable, []any{"a.jpg"}, "No se pudo leer el archivo a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Printer(tt.tag).Sprintf(tt.key, tt.args...)
			if got != tt.want {
				t.Errorf("Sprintf(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestEveryKeyHasSpanish(t *testing.T) {
	for key, byTag := range translations {
		if _, ok := byTag[language.Spanish]; !ok {
			t.Errorf("missing Spanish text for %q", key)
		}
	}
}

func TestMatchAcceptLanguage(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   language.Tag
	}{
		{"empty header uses fallback", "", language.Spanish},
		{"english regional", "en-US,en;q=0.9", language.English},
		{"spanish regional", "es-MX", language.Spanish},
		{"unsupported uses fallback", "ja", language.Spanish},
		{"malformed uses fallback", ";;;", language.Spanish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchAcceptLanguage(tt.header, language.Spanish)
			if got != tt.want {
				t.Errorf("MatchAcceptLanguage(%q) = %v, want %v", tt.header, got, tt.want)
			}
		})
	}
}

func TestParseTag(t *testing.T) {
	if tag, ok := ParseTag("en-GB"); !ok || tag != language.English {
		t.Errorf("ParseTag(en-GB) = %v, %v; want en, true", tag, ok)
	}
	if _, ok := ParseTag(""); ok {
		t.Error("ParseTag(\"\") should not match")
	}
	if _, ok := ParseTag("not a tag!"); ok {
		t.Error("ParseTag of garbage should not match")
	}
}
