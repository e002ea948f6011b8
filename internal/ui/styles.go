package ui

import (
	_ "embed"
)

// Styles is a scoped stylesheet: logical class names map to the class names
// that appear in markup and in the CSS source.
type Styles struct {
	classes map[string]string
	css     string
}

func NewStyles(css string, classes map[string]string) Styles {
	m := make(map[string]string, len(classes))
	for k, v := range classes {
		m[k] = v
	}
	return Styles{classes: m, css: css}
}

// Class returns the scoped class for name, or "" when the stylesheet does
// not define it.
func (s Styles) Class(name string) string {
	return s.classes[name]
}

func (s Styles) CSS() string {
	return s.css
}

//go:embed contact.css
var contactCSS string

// ContactStyles scopes the Contact section.
var ContactStyles = NewStyles(contactCSS, map[string]string{
	"container": "Contact_container",
})
