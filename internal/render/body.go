package render

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// BodyRenderer turns message bodies into safe HTML fragments. Bodies are
// treated as plain text: newlines become line breaks and bare URLs become
// links. Nothing else is interpreted, a message is not markdown.
type BodyRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewBodyRenderer() *BodyRenderer {
	p := parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewParagraphParser(), 100),
		),
	)
	md := goldmark.New(
		goldmark.WithParser(p),
		goldmark.WithExtensions(extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)

	policy := bluemonday.NewPolicy()
	policy.AllowElements("p", "br")
	policy.AllowAttrs("href").OnElements("a")
	policy.AllowURLSchemes("http", "https", "mailto", "tel")

	return &BodyRenderer{md: md, policy: policy}
}

// Render converts one message body. If conversion fails the body is kept as
// escaped text; a page must never lose a message.
func (b *BodyRenderer) Render(body string) template.HTML {
	if strings.TrimSpace(body) == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := b.md.Convert([]byte(body), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(body) + "</p>")
	}
	safe := b.policy.Sanitize(buf.String())
	return template.HTML(strings.TrimSpace(safe))
}
