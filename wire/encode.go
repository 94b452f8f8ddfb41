package wire

import (
	"strings"

	"github.com/teranos/blockpress/block"
)

// Encode serializes a block sequence to wire-format text. It is a pure
// function of the tree: identical trees always produce byte-identical
// output (attribute JSON is sorted-key), which fingerprinting relies on.
// Top-level blocks are joined with a blank line.
func Encode(blocks []*block.Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, encodeBlock(b))
	}
	return strings.Join(parts, "\n\n")
}

func encodeBlock(b *block.Block) string {
	name := b.WireName
	if name == "" {
		name = b.Kind.WireName()
	}

	// Unknown blocks re-emit their original body verbatim with no added
	// framing, guaranteeing syntactic round-trip of anything the decoder
	// could not interpret.
	if b.Kind == block.KindUnknown {
		return openDelim(name, b.Attrs) + b.Content + closeDelim(name)
	}

	return openDelim(name, b.Attrs) + "\n" + innerHTML(b) + "\n" + closeDelim(name)
}

func openDelim(name string, a block.Attrs) string {
	if len(a) == 0 {
		return "<!-- " + name + " -->"
	}
	return "<!-- " + name + " " + a.JSON() + " -->"
}

func closeDelim(name string) string {
	return "<!-- /" + name + " -->"
}

// innerHTML produces the canonical body for a known kind, mirroring the
// decoder's extraction logic in reverse.
func innerHTML(b *block.Block) string {
	switch b.Kind {
	case block.KindParagraph:
		return "<p>" + escapeEntities(b.Content) + "</p>"

	case block.KindHeading:
		lvl := b.Attrs.Int("level", 2)
		if lvl < 1 || lvl > 6 {
			lvl = 2
		}
		tag := "h" + string(rune('0'+lvl))
		return "<" + tag + ">" + escapeEntities(b.Content) + "</" + tag + ">"

	case block.KindQuote:
		return `<blockquote class="wp-block-quote"><p>` + escapeEntities(b.Content) + "</p></blockquote>"

	case block.KindPullquote:
		return `<figure class="wp-block-pullquote"><blockquote><p>` + escapeEntities(b.Content) + "</p></blockquote></figure>"

	case block.KindCode:
		return `<pre class="wp-block-code"><code>` + escapeEntities(b.Content) + "</code></pre>"

	case block.KindList:
		tag := "ul"
		if b.Attrs.Bool("ordered", false) {
			tag = "ol"
		}
		var sb strings.Builder
		sb.WriteString("<" + tag + ` class="wp-block-list">`)
		for _, item := range b.Children {
			sb.WriteString("<li>" + escapeEntities(item.Content) + "</li>")
		}
		sb.WriteString("</" + tag + ">")
		return sb.String()

	case block.KindImage:
		var sb strings.Builder
		sb.WriteString(`<figure class="wp-block-image">`)
		if url, ok := b.Attrs["url"].Str(); ok {
			sb.WriteString(`<img src="` + escapeEntities(url) + `"`)
			if alt, ok := b.Attrs["alt"].Str(); ok {
				sb.WriteString(` alt="` + escapeEntities(alt) + `"`)
			}
			sb.WriteString("/>")
		}
		if caption, ok := b.Attrs["caption"].Str(); ok {
			sb.WriteString("<figcaption>" + escapeEntities(caption) + "</figcaption>")
		}
		sb.WriteString("</figure>")
		return sb.String()

	case block.KindSeparator:
		return `<hr class="wp-block-separator"/>`

	case block.KindSpacer:
		return `<div class="wp-block-spacer" aria-hidden="true"></div>`

	case block.KindButton:
		var sb strings.Builder
		sb.WriteString(`<div class="wp-block-button"><a class="wp-block-button__link"`)
		if url, ok := b.Attrs["url"].Str(); ok {
			sb.WriteString(` href="` + escapeEntities(url) + `"`)
		}
		sb.WriteString(">" + escapeEntities(b.Content) + "</a></div>")
		return sb.String()

	case block.KindButtons, block.KindColumns, block.KindColumn, block.KindGroup:
		return container(`<div class="wp-block-`+string(b.Kind)+`">`, b.Children)

	case block.KindCover:
		open := `<div class="wp-block-cover">`
		if url, ok := b.Attrs["url"].Str(); ok {
			open = `<div class="wp-block-cover" style="background-image:url(` + url + `)">`
		}
		return container(open, b.Children)

	case block.KindGallery:
		var sb strings.Builder
		sb.WriteString(`<figure class="wp-block-gallery">`)
		for _, url := range b.Attrs.StringSlice("urls") {
			sb.WriteString(`<img src="` + escapeEntities(url) + `"/>`)
		}
		sb.WriteString("</figure>")
		return sb.String()

	case block.KindVideo:
		return mediaFigure("video", b.Attrs.Str("src", ""))

	case block.KindAudio:
		return mediaFigure("audio", b.Attrs.Str("src", ""))

	case block.KindTable:
		var sb strings.Builder
		sb.WriteString(`<figure class="wp-block-table"><table><tbody>`)
		if rows, ok := b.Attrs["rows"].Arr(); ok {
			for _, row := range rows {
				sb.WriteString("<tr>")
				if cells, ok := row.Arr(); ok {
					for _, cell := range cells {
						sb.WriteString("<td>" + escapeEntities(cell.StrOr("")) + "</td>")
					}
				}
				sb.WriteString("</tr>")
			}
		}
		sb.WriteString("</tbody></table></figure>")
		return sb.String()

	case block.KindEmbed:
		url := b.Attrs.Str("url", "")
		if url == "" {
			return `<figure class="wp-block-embed"><div class="wp-block-embed__wrapper"></div></figure>`
		}
		esc := escapeEntities(url)
		return `<figure class="wp-block-embed"><div class="wp-block-embed__wrapper"><a href="` + esc + `">` + esc + `</a></div></figure>`
	}

	return escapeEntities(b.Content)
}

// container wraps encoded children in a structural element, blank-line
// separated so the decoder's recursive pass sees them as top-level spans.
func container(open string, children []*block.Block) string {
	if len(children) == 0 {
		return open + "</div>"
	}
	return open + "\n\n" + Encode(children) + "\n\n</div>"
}

func mediaFigure(tag, src string) string {
	if src == "" {
		return `<figure class="wp-block-` + tag + `"><` + tag + ` controls></` + tag + `></figure>`
	}
	return `<figure class="wp-block-` + tag + `"><` + tag + ` controls src="` + escapeEntities(src) + `"></` + tag + `></figure>`
}
