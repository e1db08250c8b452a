package render

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// Blog posts are plain text with line breaks; hard wraps keep them visible in HTML.
// Raw HTML in the input is not rendered.
var blogMarkdown = goldmark.New(
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// BlogHTML renders blog content as an HTML fragment for previews
func BlogHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := blogMarkdown.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
