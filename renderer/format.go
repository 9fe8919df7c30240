package renderer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Format is an output format of the command line.
type Format string

const (
	Text     Format = "text" // markdown styled for the terminal
	Markdown Format = "md"
	HTML     Format = "html"
	JSON     Format = "json"
)

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Text, Markdown, HTML, JSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q want one of text, md, html, json", s)
	}
}

// Terminal styles markdown for a terminal.
func Terminal(md string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

// ToHTML converts markdown, tables included, to an HTML fragment.
func ToHTML(md string) (string, error) {
	var buf bytes.Buffer
	conv := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := conv.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToJSON renders any marshalable result, indented.
func ToJSON(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}

// Render renders md, or v for JSON, in format f.
func Render(f Format, md string, v any) (string, error) {
	switch f {
	case Markdown:
		return md, nil
	case HTML:
		return ToHTML(md)
	case JSON:
		return ToJSON(v)
	default:
		return Terminal(md)
	}
}
