package reports

import (
	"embed"
	"fmt"
	"path"
)

//go:embed templates/page.html templates/panels/*.md assets/page.js
var content embed.FS

// TemplateLoader reads the embedded page template, panel markdown and script
type TemplateLoader struct {
	fs embed.FS
}

// NewTemplateLoader creates a new template loader
func NewTemplateLoader() *TemplateLoader {
	return &TemplateLoader{fs: content}
}

// LoadHTMLTemplate loads the page template
func (t *TemplateLoader) LoadHTMLTemplate() (string, error) {
	return t.read("templates/page.html")
}

// LoadPanel loads the markdown body of a named panel
func (t *TemplateLoader) LoadPanel(name string) (string, error) {
	return t.read(path.Join("templates", "panels", name+".md"))
}

// LoadScript loads the unminified page helper script
func (t *TemplateLoader) LoadScript() (string, error) {
	return t.read("assets/page.js")
}

func (t *TemplateLoader) read(name string) (string, error) {
	data, err := t.fs.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read embedded %s: %w", name, err)
	}
	return string(data), nil
}
