package server

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"strings"

	"explicador-backend/internal/types"
)

//go:embed templates/page.html
var templateFS embed.FS

var pageTmpl = template.Must(template.New("page.html").
	Funcs(template.FuncMap{"paragraphs": paragraphs}).
	ParseFS(templateFS, "templates/page.html"))

// paragraphs splits explanation text on line breaks, dropping blank lines.
func paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// RenderPage writes the full page. sanitizedTerm must come from groq.Sanitize.
func RenderPage(w io.Writer, sanitizedTerm string, outcome *types.Outcome) error {
	var buf bytes.Buffer
	view := types.PageView{Term: template.HTML(sanitizedTerm), Outcome: outcome}
	if err := pageTmpl.Execute(&buf, view); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
