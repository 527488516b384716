// Pygoscelis - Interactive Exploration of the Palmer Penguins Dataset
// Copyright 2026 L. McGrath (ljmcgrath)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ljmcgrath/pygoscelis

// Package web carries the embedded dashboard frontend: page templates and
// static assets. Every page is a layout plus a content block; the chart pages
// re-request their figure from the API on every radio interaction.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"github.com/ljmcgrath/pygoscelis/internal/dataset"
)

//go:embed templates static
var files embed.FS

// pageNames lists the content templates, one per dashboard page.
var pageNames = []string{"index", "glossary", "histograms", "linear_regression", "multiple_regression"}

// pages maps page name to its parsed layout+content template set.
var pages = mustParsePages()

func mustParsePages() map[string]*template.Template {
	parsed := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t := template.Must(template.ParseFS(files,
			"templates/layout.html.tmpl",
			fmt.Sprintf("templates/%s.html.tmpl", name)))
		parsed[name] = t
	}
	return parsed
}

// Option is one radio button choice on a chart page.
type Option struct {
	Value string
	Label string
}

// PageData is the template context for every page.
type PageData struct {
	Title     string
	Active    string
	Species   []Option
	Sexes     []Option
	Variables []Option
}

// speciesOptions returns the species radio choices, including "all".
func speciesOptions() []Option {
	opts := []Option{{Value: "", Label: "All Species"}}
	for _, sp := range dataset.SpeciesValues {
		opts = append(opts, Option{Value: string(sp), Label: sp.Name()})
	}
	return opts
}

// sexOptions returns the sex radio choices, including "both".
func sexOptions() []Option {
	opts := []Option{{Value: "", Label: "Both Sexes"}}
	for _, sx := range dataset.SexValues {
		opts = append(opts, Option{Value: string(sx), Label: strings.TrimSpace(sx.DisplayName())})
	}
	return opts
}

// variableOptions returns the measurement variable radio choices.
func variableOptions() []Option {
	opts := make([]Option, 0, len(dataset.Variables))
	for _, v := range dataset.Variables {
		opts = append(opts, Option{Value: v.Column(), Label: v.Label()})
	}
	return opts
}

// RenderPage writes one dashboard page.
func RenderPage(w io.Writer, name, title string) error {
	t, ok := pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	data := PageData{
		Title:     title,
		Active:    name,
		Species:   speciesOptions(),
		Sexes:     sexOptions(),
		Variables: variableOptions(),
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// StaticHandler serves the embedded static assets under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		// The static directory is embedded at compile time.
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
