// Package renderer renders calculator states and TVM solutions as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// RenderSolution renders a TVM solution to a markdown string.
func RenderSolution(s *Solution) string {
	partials := map[string]string{
		"registers": "registers.md",
	}
	return renderTemplate("solution", "solution.md", partials, s)
}

// RenderState renders a keypad session state to a markdown string.
func RenderState(s *State) string {
	partials := map[string]string{
		"registers": "registers.md",
	}
	return renderTemplate("state", "state.md", partials, s)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		return fmt.Sprintf("error opening templates: %v", err)
	}
	mainContent, err := fs.ReadFile(sub, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(sub, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
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
