// Package markdown renders user-authored text to safe HTML for the
// rendering layer. Moderation always runs on the raw text before any
// of this.
package markdown

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

type TextProcessor struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// New builds a processor with a deliberately small markdown surface:
// inline emphasis, code and strikethrough. Headings, lists, raw HTML
// and the rest stay plain text.
func New() *TextProcessor {
	p := parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewFencedCodeBlockParser(), 700),
			util.Prioritized(parser.NewParagraphParser(), 1000),
		),
		parser.WithInlineParsers(
			util.Prioritized(parser.NewCodeSpanParser(), 100),
			util.Prioritized(parser.NewEmphasisParser(), 500),
		),
	)

	md := goldmark.New(
		goldmark.WithParser(p),
		goldmark.WithRendererOptions(html.WithUnsafe()),
		goldmark.WithExtensions(extension.Strikethrough),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowRelativeURLs(true)

	return &TextProcessor{md: md, policy: policy}
}

// Render converts text to sanitized HTML. On a render failure the
// escaped raw text is returned so the caller always gets something
// safe to show.
func (tp *TextProcessor) Render(text string) string {
	var buf bytes.Buffer
	if err := tp.md.Convert([]byte(text), &buf); err != nil {
		return tp.policy.Sanitize(text)
	}
	return tp.policy.Sanitize(strings.TrimSpace(buf.String()))
}
