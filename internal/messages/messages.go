// ABOUTME: Bilingual message catalog loaded from embedded YAML templates
// ABOUTME: Lookup falls back to Spanish, then to a visible missing-template marker

package messages

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed templates/es.yaml templates/en.yaml
var templatesFS embed.FS

const defaultLanguage = "es"

// Catalog holds the per-language message templates.
type Catalog struct {
	byLang map[string]map[string]string
}

// Load parses the embedded template files.
func Load() (*Catalog, error) {
	byLang := map[string]map[string]string{}
	for _, lang := range []string{"es", "en"} {
		data, err := templatesFS.ReadFile("templates/" + lang + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("reading %s templates: %w", lang, err)
		}
		templates := map[string]string{}
		if err := yaml.Unmarshal(data, &templates); err != nil {
			return nil, fmt.Errorf("parsing %s templates: %w", lang, err)
		}
		byLang[lang] = templates
	}
	return &Catalog{byLang: byLang}, nil
}

// Get returns the template for key in the given language. Unknown languages
// fall back to Spanish; a missing key returns a visible marker instead of an
// empty string so broken lookups surface in conversations and tests.
func (c *Catalog) Get(key, lang string) string {
	templates, ok := c.byLang[lang]
	if !ok {
		templates = c.byLang[defaultLanguage]
	}
	if msg, ok := templates[key]; ok {
		return msg
	}
	if msg, ok := c.byLang[defaultLanguage][key]; ok {
		return msg
	}
	return fmt.Sprintf("[missing template: %s]", key)
}

// Format renders a template with fmt verbs.
func (c *Catalog) Format(key, lang string, args ...any) string {
	return fmt.Sprintf(c.Get(key, lang), args...)
}
