// Package extract turns raw HTML into a best-effort plain-text
// approximation. It is deliberately not an HTML parser: no DOM is built, the
// markup is consumed in a single tokenizer pass, and malformed input can
// never make it fail.
package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// Extract strips markup from raw and normalizes whitespace. Script and style
// blocks are removed together with their content; every other tag becomes a
// single space so adjacent text runs do not fuse. Pure and total: any input,
// however hostile, yields a string.
func Extract(raw string) string {
	z := html.NewTokenizer(strings.NewReader(raw))

	var b strings.Builder
	skip := "" // non-empty while inside a script or style element
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF or malformed markup the tokenizer gave up on;
			// either way, keep what was collected so far.
			break
		}
		switch tt {
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := strings.ToLower(string(name))
			if tag == "script" || tag == "style" {
				if tt == html.StartTagToken {
					skip = tag
				} else if tag == skip {
					skip = ""
				}
			}
			b.WriteByte(' ')
		case html.TextToken:
			if skip == "" {
				b.Write(z.Text())
			}
		case html.CommentToken, html.DoctypeToken:
			b.WriteByte(' ')
		}
	}

	return collapseWhitespace(b.String())
}

// collapseWhitespace reduces every run of whitespace, newlines included, to a
// single space and trims the ends.
func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimSpace(b.String())
}
