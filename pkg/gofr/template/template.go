// Package template renders html/template pages and the anchors of filter links.
package template

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

type fileType int

const (
	// HTML enum denoting html file
	HTML fileType = iota
	// TEXT enum denoting text file
	TEXT
)

// FileNotFound is returned when the template file cannot be parsed.
type FileNotFound struct {
	Path     string
	FileName string
}

func (e FileNotFound) Error() string {
	return fmt.Sprintf("File %v not found at location %v", e.FileName, e.Path)
}

// Template contains the info about the file and implements a renderer to render the file
type Template struct {
	// Directory holds the template files, ./templates when empty
	Directory string
	// File denotes the file name
	File string
	// Data has the information that template need to render the file
	Data any
	// Funcs are made available to the template, typically the FuncMap of a filter.Helper
	Funcs template.FuncMap
	// Type denotes the file type
	Type fileType
}

// Render parses and executes the template file.
func (t *Template) Render() ([]byte, error) {
	dir := t.Directory
	if dir == "" {
		root, _ := os.Getwd()
		dir = filepath.Join(root, "templates")
	}

	templ, err := template.New(t.File).Funcs(t.Funcs).ParseFiles(filepath.Join(dir, t.File))
	if err != nil {
		return nil, FileNotFound{Path: dir, FileName: t.File}
	}

	var tpl bytes.Buffer

	if err := templ.Execute(&tpl, t.Data); err != nil {
		return nil, err
	}

	return tpl.Bytes(), nil
}

// ContentType returns the content type associated with the template's file type.
func (t *Template) ContentType() string {
	if t.Type == HTML {
		return "text/html; charset=utf-8"
	}

	return "text/plain; charset=utf-8"
}
