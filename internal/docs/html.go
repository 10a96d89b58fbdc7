package docs

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Raw HTML in topics is not passed through (no html.WithUnsafe).
var htmlRenderer = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		emoji.Emoji,
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>saleshub: {{.Topic}}</title></head>
<body>
{{.Body}}
</body>
</html>
`))

// HTML renders topic as a standalone HTML page.
func HTML(topic string) ([]byte, error) {
	md, ok := Get(topic)
	if !ok {
		return nil, fmt.Errorf("unknown docs topic: %q", topic)
	}
	var body bytes.Buffer
	if err := htmlRenderer.Convert([]byte(md), &body); err != nil {
		return nil, fmt.Errorf("render %s: %w", topic, err)
	}
	var out bytes.Buffer
	err := pageTemplate.Execute(&out, struct {
		Topic string
		Body  template.HTML
	}{Topic: topic, Body: template.HTML(body.String())})
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
