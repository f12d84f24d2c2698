// Package views renders the static pages of the cheat sheet web client.
package views

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Link is a navigation entry.
type Link struct {
	Label string
	Path  string
}

var navigation = []Link{
	{Label: "Home", Path: "/"},
	{Label: "Notes", Path: "/notes"},
	{Label: "About", Path: "/about"},
	{Label: "Project", Path: "/project"},
}

// Navigation returns the links shown at the top of every page.
func Navigation() []Link {
	links := make([]Link, len(navigation))
	copy(links, navigation)
	return links
}

// RenderProject writes the project page.
func RenderProject(w io.Writer) error {
	return templates.ExecuteTemplate(w, "project.html", struct {
		Navigation []Link
	}{
		Navigation: navigation,
	})
}
