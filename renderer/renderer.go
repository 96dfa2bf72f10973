// Package renderer turns a portfolio summary into text, markdown, HTML and images.
package renderer

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.md
var templateFS embed.FS

// templates holds the markdown templates, at the root.
var templates, _ = fs.Sub(templateFS, "templates")

// SummaryMarkdown renders the summary as a markdown document with a table of
// holdings and a final TOTAL row.
func SummaryMarkdown(s *Summary) string {
	partials := map[string]string{
		"summary_title": "summary_title.md",
		"summary_table": "summary_table.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}

// SummaryHTML writes the markdown summary converted to an HTML fragment.
func SummaryHTML(w io.Writer, s *Summary) error {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := md.Convert([]byte(SummaryMarkdown(s)), w); err != nil {
		return fmt.Errorf("cannot convert summary to HTML: %w", err)
	}
	return nil
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
