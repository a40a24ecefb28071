// Package markdown renders Markdown input to HTML for the CLI's
// markdown mode. The output is an HTML fragment meant to be fed to the
// non-breaking-space engine and then embedded by the caller; document
// assembly (head, styles) stays out of scope.
package markdown

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrRender indicates Markdown to HTML conversion failed.
var ErrRender = errors.New("markdown rendering failed")

// Renderer converts Markdown to HTML using goldmark (pure Go).
// A Renderer is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a Renderer with GFM extensions and syntax
// highlighting. Code blocks get chroma CSS classes, not inline styles,
// so the embedding page keeps control of the stylesheet.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
			// WithUnsafe() intentionally not used: raw HTML in the
			// input stays escaped.
		),
	)
	return &Renderer{md: md}
}

// Render converts Markdown content to an HTML fragment. Line endings
// are normalized first so CRLF input renders the same as LF input.
// Supports context cancellation via goroutine + select since goldmark
// doesn't natively support context.
func (r *Renderer) Render(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content = Normalize(content)

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrRender, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}
