// Package wire implements the block codec: the bidirectional transformation
// between comment-delimited block HTML and the in-memory block tree.
//
// Decode and Encode are pure, synchronous functions with no shared mutable
// state; they are safe to call concurrently on independent inputs. Neither
// ever fails: unparseable input degrades to best-effort blocks.
package wire

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/teranos/blockpress/block"
)

// openRe matches an opening block delimiter: a namespaced identifier
// optionally followed by a single-line JSON attribute object. The attribute
// match is non-greedy but anchored by the trailing "-->", so nested braces
// inside the object are covered.
var openRe = regexp.MustCompile(`<!--\s*(wp:[A-Za-z0-9][A-Za-z0-9_/-]*)(\s+\{.*?\})?\s*-->`)

var (
	srcDoubleRe  = regexp.MustCompile(`src="([^"]*)"`)
	srcSingleRe  = regexp.MustCompile(`src='([^']*)'`)
	srcBareRe    = regexp.MustCompile(`src=([^\s"'>]+)`)
	altDoubleRe  = regexp.MustCompile(`alt="([^"]*)"`)
	altSingleRe  = regexp.MustCompile(`alt='([^']*)'`)
	hrefDoubleRe = regexp.MustCompile(`href="([^"]*)"`)
	hrefSingleRe = regexp.MustCompile(`href='([^']*)'`)

	figcaptionRe   = regexp.MustCompile(`(?s)<figcaption[^>]*>(.*?)</figcaption>`)
	classCaptionRe = regexp.MustCompile(`(?s)<(?:div|p|span)[^>]*class="[^"]*caption[^"]*"[^>]*>(.*?)</(?:div|p|span)>`)

	orderedListRe = regexp.MustCompile(`<ol[\s>]`)
	listItemRe    = regexp.MustCompile(`(?s)<li[^>]*>(.*?)</li>`)
	tableRowRe    = regexp.MustCompile(`(?s)<tr[^>]*>(.*?)</tr>`)
	tableCellRe   = regexp.MustCompile(`(?s)<t[hd][^>]*>(.*?)</t[hd]>`)
	imgTagRe      = regexp.MustCompile(`<img[^>]*>`)
	headingTagRe  = regexp.MustCompile(`<h([1-6])[^>]*>`)
	codeInnerRe   = regexp.MustCompile(`(?s)<code[^>]*>(.*?)</code>`)
	backgroundRe  = regexp.MustCompile(`background-image:\s*url\(\s*['"]?([^'")]+?)['"]?\s*\)`)
)

// Decode parses wire-format text into a block sequence. It is a total
// function: it never fails, and degrades to classic-content paragraphs for
// anything that does not match the block grammar. Every call assigns fresh
// block ids. Empty or whitespace-only input yields an empty sequence;
// callers needing a non-empty document create the placeholder themselves.
func Decode(text string) []*block.Block {
	var blocks []*block.Block

	segStart := 0 // start of pending interstitial (classic) text
	scan := 0     // scan position, advances past unmatched openers

	for scan < len(text) {
		m := openRe.FindStringSubmatchIndex(text[scan:])
		if m == nil {
			break
		}

		openStart := scan + m[0]
		openEnd := scan + m[1]
		name := text[scan+m[2] : scan+m[3]]

		rawAttrs := ""
		if m[4] >= 0 {
			rawAttrs = strings.TrimSpace(text[scan+m[4] : scan+m[5]])
		}

		// The closing delimiter must reference the identical identifier.
		// A span whose open and close names disagree never matches and
		// folds into the surrounding classic content.
		closeRe := regexp.MustCompile(`<!--\s*/` + regexp.QuoteMeta(name) + `\s*-->`)
		cm := closeRe.FindStringIndex(text[openEnd:])
		if cm == nil {
			scan = openEnd
			continue
		}
		bodyEnd := openEnd + cm[0]
		closeEnd := openEnd + cm[1]

		blocks = append(blocks, classicBlocks(text[segStart:openStart])...)
		blocks = append(blocks, decodeOne(name, rawAttrs, text[openEnd:bodyEnd]))

		segStart = closeEnd
		scan = closeEnd
	}

	return append(blocks, classicBlocks(text[segStart:])...)
}

// decodeOne builds a single block from a matched span.
func decodeOne(name, rawAttrs, body string) *block.Block {
	kind := block.KindFromWireName(name)
	b := &block.Block{
		ID:       block.NewID(),
		Kind:     kind,
		WireName: name,
		Attrs:    block.ParseAttrs(rawAttrs),
	}

	switch kind {
	case block.KindParagraph, block.KindQuote, block.KindPullquote, block.KindButton:
		b.Content = textContent(body)

	case block.KindHeading:
		b.Content = textContent(body)
		if _, ok := b.Attrs["level"]; !ok {
			if m := headingTagRe.FindStringSubmatch(body); m != nil {
				lvl, _ := strconv.Atoi(m[1])
				b.Attrs["level"] = block.Int(lvl)
			}
		}

	case block.KindCode:
		// The inner <code> body is authoritative when present; otherwise
		// the body is preserved verbatim apart from trimming.
		if m := codeInnerRe.FindStringSubmatch(body); m != nil {
			b.Content = unescapeEntities(m[1])
		} else {
			b.Content = strings.TrimSpace(body)
		}

	case block.KindList:
		if orderedListRe.MatchString(body) {
			b.Attrs["ordered"] = block.Bool(true)
		}
		for _, im := range listItemRe.FindAllStringSubmatch(body, -1) {
			item := &block.Block{
				ID:       block.NewID(),
				Kind:     block.KindList,
				WireName: block.KindList.WireName(),
				Content:  textContent(im[1]),
				Attrs:    block.Attrs{},
			}
			b.Children = append(b.Children, item)
		}

	case block.KindImage:
		decodeImage(b, body)

	case block.KindSeparator, block.KindSpacer:
		// Purely structural; nothing to extract.

	case block.KindButtons, block.KindColumns, block.KindColumn, block.KindGroup:
		b.Children = Decode(body)

	case block.KindCover:
		if m := backgroundRe.FindStringSubmatch(body); m != nil {
			b.Attrs["url"] = block.String(m[1])
		}
		b.Children = Decode(body)

	case block.KindGallery:
		var urls []string
		for _, tag := range imgTagRe.FindAllString(body, -1) {
			if src, ok := extractSrc(tag); ok {
				urls = append(urls, src)
			}
		}
		if len(urls) > 0 {
			b.Attrs["urls"] = block.Strings(urls)
		}

	case block.KindVideo, block.KindAudio:
		if src, ok := extractSrc(body); ok {
			b.Attrs["src"] = block.String(src)
		}

	case block.KindTable:
		var rows []block.Value
		for _, rm := range tableRowRe.FindAllStringSubmatch(body, -1) {
			var cells []block.Value
			for _, cm := range tableCellRe.FindAllStringSubmatch(rm[1], -1) {
				cells = append(cells, block.String(textContent(cm[1])))
			}
			rows = append(rows, block.Array(cells...))
		}
		if len(rows) > 0 {
			b.Attrs["rows"] = block.Array(rows...)
		}

	case block.KindEmbed:
		if src, ok := extractSrc(body); ok {
			b.Attrs["url"] = block.String(src)
		} else if href, ok := extractHref(body); ok {
			b.Attrs["url"] = block.String(href)
		}

	default: // KindUnknown
		// Body preserved verbatim, the only way it round-trips.
		b.Content = body
	}

	return b
}

// decodeImage extracts src, alt, and caption. Absent src yields an image
// block with no extracted attributes — a placeholder mid-edit state, not an
// error.
func decodeImage(b *block.Block, body string) {
	src, ok := extractSrc(body)
	if !ok {
		return
	}
	b.Attrs["url"] = block.String(src)

	if m := altDoubleRe.FindStringSubmatch(body); m != nil {
		b.Attrs["alt"] = block.String(unescapeEntities(m[1]))
	} else if m := altSingleRe.FindStringSubmatch(body); m != nil {
		b.Attrs["alt"] = block.String(unescapeEntities(m[1]))
	}

	// <figcaption> wins over class-tagged caption containers.
	if m := figcaptionRe.FindStringSubmatch(body); m != nil {
		b.Attrs["caption"] = block.String(textContent(m[1]))
	} else if m := classCaptionRe.FindStringSubmatch(body); m != nil {
		b.Attrs["caption"] = block.String(textContent(m[1]))
	}
}

// extractSrc tries the double-quoted, single-quoted, and unquoted attribute
// forms, in that order. Attribute values are entity-decoded so they mirror
// what the encoder escapes on the way out.
func extractSrc(s string) (string, bool) {
	if m := srcDoubleRe.FindStringSubmatch(s); m != nil {
		return unescapeEntities(m[1]), true
	}
	if m := srcSingleRe.FindStringSubmatch(s); m != nil {
		return unescapeEntities(m[1]), true
	}
	if m := srcBareRe.FindStringSubmatch(s); m != nil {
		return unescapeEntities(m[1]), true
	}
	return "", false
}

func extractHref(s string) (string, bool) {
	if m := hrefDoubleRe.FindStringSubmatch(s); m != nil {
		return unescapeEntities(m[1]), true
	}
	if m := hrefSingleRe.FindStringSubmatch(s); m != nil {
		return unescapeEntities(m[1]), true
	}
	return "", false
}
