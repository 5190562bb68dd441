package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"aitrustyou/outfit-recommender/internal/i18n"
	"aitrustyou/outfit-recommender/internal/models"
)

var resultTemplate = template.Must(template.New("result").Parse(`<h3>✅ {{.Heading}}</h3>
<pre>{{.Results}}</pre>
`))

type resultView struct {
	Heading string
	Results string
}

// Renderer turns a recommendation into the text shown to the user.
type Renderer struct {
	printer *message.Printer
}

func NewRenderer(tag language.Tag) *Renderer {
	return &Renderer{printer: i18n.Printer(tag)}
}

// Heading names the best shoe, 1-based.
func (r *Renderer) Heading(rec *models.Recommendation) string {
	return r.printer.Sprintf(i18n.BestOption, strconv.Itoa(rec.BestOption()))
}

// HTML renders the fragment that replaces the results region of the page.
// Results are escaped, so backend data cannot inject markup.
func (r *Renderer) HTML(rec *models.Recommendation) (string, error) {
	results, err := PrettyResults(rec.Results)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := resultTemplate.Execute(&buf, resultView{Heading: r.Heading(rec), Results: results}); err != nil {
		return "", fmt.Errorf("failed to render result: %w", err)
	}
	return buf.String(), nil
}

func (r *Renderer) Text(rec *models.Recommendation) (string, error) {
	results, err := PrettyResults(rec.Results)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("✅ ")
	b.WriteString(r.Heading(rec))
	b.WriteString("\n")
	b.WriteString(results)
	b.WriteString("\n")
	return b.String(), nil
}

// PrettyResults re-indents the opaque results value with two spaces.
func PrettyResults(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", &RecommendError{Kind: KindContract, Err: fmt.Errorf("%w: results", ErrMissingField)}
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", &RecommendError{Kind: KindDecode, Err: fmt.Errorf("failed to format results: %w", err)}
	}
	return buf.String(), nil
}
