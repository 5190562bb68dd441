package services

import (
	"encoding/json"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"aitrustyou/outfit-recommender/internal/models"
)

func TestRendererHTML(t *testing.T) {
	rec := &models.Recommendation{BestIndex: 2, Results: json.RawMessage(`[1,2,3]`)}

	html, err := NewRenderer(language.Spanish).HTML(rec)
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}

	if !strings.Contains(html, "Zapato #3") {
		t.Errorf("expected best option in output, got %q", html)
	}
	if !strings.Contains(html, "<h3>✅ Mejor opción: Zapato #3</h3>") {
		t.Errorf("unexpected heading in %q", html)
	}
	if !strings.Contains(html, "<pre>[\n  1,\n  2,\n  3\n]</pre>") {
		t.Errorf("expected pretty-printed results, got %q", html)
	}
}

func TestRendererHeadingDoesNotGroupDigits(t *testing.T) {
	tests := []struct {
		name string
		tag  language.Tag
		want string
	}{
		{"spanish", language.Spanish, "Mejor opción: Zapato #1000"},
		{"english", language.English, "Best option: Shoe #1000"},
	}

	rec := &models.Recommendation{BestIndex: 999, Results: json.RawMessage(`[]`)}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewRenderer(tt.tag).Heading(rec); got != tt.want {
				t.Errorf("Heading() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRendererHTMLEscapesResults(t *testing.T) {
	rec := &models.Recommendation{BestIndex: 0, Results: json.RawMessage(`{"note":"<script>alert(1)</script>"}`)}

	html, err := NewRenderer(language.Spanish).HTML(rec)
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("results were not escaped: %q", html)
	}
}

func TestRendererText(t *testing.T) {
	tests := []struct {
		name string
		tag  language.Tag
		want string
	}{
		{"spanish", language.Spanish, "✅ Mejor opción: Zapato #1\n{\n  \"score\": 0.9\n}\n"},
		{"english", language.English, "✅ Best option: Shoe #1\n{\n  \"score\": 0.9\n}\n"},
	}

	rec := &models.Recommendation{BestIndex: 0, Results: json.RawMessage(`{"score":0.9}`)}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRenderer(tt.tag).Text(rec)
			if err != nil {
				t.Fatalf("Text() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrettyResults(t *testing.T) {
	got, err := PrettyResults(json.RawMessage(`null`))
	if err != nil || got != "null" {
		t.Errorf("PrettyResults(null) = %q, %v", got, err)
	}

	if _, err := PrettyResults(nil); KindOf(err) != KindContract {
		t.Errorf("PrettyResults(nil) kind = %q, want %q", KindOf(err), KindContract)
	}
	if _, err := PrettyResults(json.RawMessage(`{`)); KindOf(err) != KindDecode {
		t.Errorf("PrettyResults({) kind = %q, want %q", KindOf(err), KindDecode)
	}
}
