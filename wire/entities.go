package wire

import (
	"regexp"
	"strings"
)

// The five standard entities plus the non-breaking space. Escape handles
// the five on the way out; Unescape additionally folds &nbsp; to a plain
// space on the way in.

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// escapeEntities escapes text for embedding in element bodies and
// attribute values.
func escapeEntities(s string) string {
	return escaper.Replace(s)
}

// unescapeEntities decodes the escaped entities. &amp; is decoded last so
// double-escaped input ("&amp;lt;") stays single-escaped rather than
// collapsing twice.
func unescapeEntities(s string) string {
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&#39;", "'")
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}

var tagRe = regexp.MustCompile(`<[^>]*>`)

// stripTags removes all HTML tags, leaving text content and entities.
func stripTags(s string) string {
	return tagRe.ReplaceAllString(s, "")
}

// textContent is the common extraction for text-bearing blocks: strip tags,
// decode entities, trim surrounding whitespace.
func textContent(s string) string {
	return strings.TrimSpace(unescapeEntities(stripTags(s)))
}
