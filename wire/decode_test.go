package wire

import (
	"testing"

	"github.com/teranos/blockpress/block"
)

func TestDecodeParagraph(t *testing.T) {
	in := "<!-- wp:paragraph -->\n<p>Hello &amp; world</p>\n<!-- /wp:paragraph -->"

	blocks := Decode(in)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	b := blocks[0]
	if b.Kind != block.KindParagraph {
		t.Errorf("kind = %v, want paragraph", b.Kind)
	}
	if b.Content != "Hello & world" {
		t.Errorf("content = %q, want %q", b.Content, "Hello & world")
	}
	if len(b.Attrs) != 0 {
		t.Errorf("attrs = %v, want empty", b.Attrs)
	}
}

func TestDecodeHeadingWithAttrs(t *testing.T) {
	in := "<!-- wp:heading {\"level\":3} -->\n<h3>Title</h3>\n<!-- /wp:heading -->"

	blocks := Decode(in)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Kind != block.KindHeading {
		t.Errorf("kind = %v, want heading", blocks[0].Kind)
	}
	if lvl := blocks[0].Attrs.Int("level", 0); lvl != 3 {
		t.Errorf("level = %d, want 3", lvl)
	}
}

func TestDecodeHeadingLevelFromTag(t *testing.T) {
	// No JSON attributes: level falls back to the tag.
	in := "<!-- wp:heading -->\n<h4>Deep</h4>\n<!-- /wp:heading -->"

	blocks := Decode(in)
	if lvl := blocks[0].Attrs.Int("level", 0); lvl != 4 {
		t.Errorf("level = %d, want 4", lvl)
	}
}

func TestDecodeClassicFallback(t *testing.T) {
	blocks := Decode("Para one\n\nPara two")
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].Kind != block.KindParagraph || blocks[0].Content != "Para one" {
		t.Errorf("first block = %v %q", blocks[0].Kind, blocks[0].Content)
	}
	if blocks[1].Content != "Para two" {
		t.Errorf("second block content = %q", blocks[1].Content)
	}
}

func TestDecodeClassicHeuristics(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantKind block.Kind
	}{
		{"image wins over text", `<img src="https://x/a.png"> trailing text`, block.KindImage},
		{"heading", "<h2>Section</h2>", block.KindHeading},
		{"plain text", "just words", block.KindParagraph},
		{"tagged text", "<span>styled</span>", block.KindParagraph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := Decode(tt.in)
			if len(blocks) != 1 {
				t.Fatalf("got %d blocks, want 1", len(blocks))
			}
			if blocks[0].Kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", blocks[0].Kind, tt.wantKind)
			}
		})
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n\t\n"} {
		if blocks := Decode(in); len(blocks) != 0 {
			t.Errorf("Decode(%q) = %d blocks, want 0", in, len(blocks))
		}
	}
}

func TestDecodeMalformedAttrsDegrade(t *testing.T) {
	in := "<!-- wp:heading {\"level\":3,,,} -->\n<h3>T</h3>\n<!-- /wp:heading -->"

	blocks := Decode(in)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	// Malformed JSON degrades to empty attrs; the tag still supplies level.
	if lvl := blocks[0].Attrs.Int("level", 0); lvl != 3 {
		t.Errorf("level from tag = %d, want 3", lvl)
	}
}

func TestDecodeMismatchedNamesFoldToClassic(t *testing.T) {
	// Closing name disagrees: the whole span is classic content.
	in := "<!-- wp:paragraph -->\n<p>orphan</p>\n<!-- /wp:heading -->"

	blocks := Decode(in)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Kind != block.KindParagraph {
		t.Errorf("kind = %v, want paragraph via classic fallback", blocks[0].Kind)
	}
	if blocks[0].Content != "orphan" {
		t.Errorf("content = %q, want %q", blocks[0].Content, "orphan")
	}
}

func TestDecodeInterstitialClassicOrder(t *testing.T) {
	in := "Loose intro\n\n<!-- wp:paragraph -->\n<p>governed</p>\n<!-- /wp:paragraph -->\n\nLoose outro"

	blocks := Decode(in)
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}
	if blocks[0].Content != "Loose intro" || blocks[1].Content != "governed" || blocks[2].Content != "Loose outro" {
		t.Errorf("document order broken: %q %q %q", blocks[0].Content, blocks[1].Content, blocks[2].Content)
	}
}

func TestDecodeUnknownBlock(t *testing.T) {
	in := "<!-- wp:acme/widget {\"mode\":\"live\"} -->\n<div data-x=\"1\">opaque</div>\n<!-- /wp:acme/widget -->"

	blocks := Decode(in)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	b := blocks[0]
	if b.Kind != block.KindUnknown {
		t.Errorf("kind = %v, want unknown", b.Kind)
	}
	if b.WireName != "wp:acme/widget" {
		t.Errorf("wire name = %q", b.WireName)
	}
	if b.Content != "\n<div data-x=\"1\">opaque</div>\n" {
		t.Errorf("body not verbatim: %q", b.Content)
	}
	if b.Attrs.Str("mode", "") != "live" {
		t.Errorf("attrs = %v", b.Attrs)
	}
}

func TestDecodeList(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantOrdered bool
		wantItems   []string
	}{
		{
			"unordered",
			"<!-- wp:list -->\n<ul><li>one</li><li>two</li></ul>\n<!-- /wp:list -->",
			false,
			[]string{"one", "two"},
		},
		{
			"ordered sets flag",
			"<!-- wp:list -->\n<ol><li>first</li></ol>\n<!-- /wp:list -->",
			true,
			[]string{"first"},
		},
		{
			"items entity-decoded",
			"<!-- wp:list -->\n<ul><li>a &amp; b</li></ul>\n<!-- /wp:list -->",
			false,
			[]string{"a & b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := Decode(tt.in)
			if len(blocks) != 1 {
				t.Fatalf("got %d blocks", len(blocks))
			}
			b := blocks[0]
			if got := b.Attrs.Bool("ordered", false); got != tt.wantOrdered {
				t.Errorf("ordered = %v, want %v", got, tt.wantOrdered)
			}
			if len(b.Children) != len(tt.wantItems) {
				t.Fatalf("got %d items, want %d", len(b.Children), len(tt.wantItems))
			}
			for i, want := range tt.wantItems {
				if b.Children[i].Content != want {
					t.Errorf("item %d = %q, want %q", i, b.Children[i].Content, want)
				}
			}
		})
	}
}

func TestDecodeImage(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantURL     string
		wantAlt     string
		wantCaption string
		wantNoAttrs bool
	}{
		{
			name:    "double quoted",
			body:    `<figure><img src="https://x/a.png" alt="cat"/></figure>`,
			wantURL: "https://x/a.png",
			wantAlt: "cat",
		},
		{
			name:    "single quoted",
			body:    `<img src='https://x/b.png' alt='dog'>`,
			wantURL: "https://x/b.png",
			wantAlt: "dog",
		},
		{
			name:    "unquoted",
			body:    `<img src=https://x/c.png>`,
			wantURL: "https://x/c.png",
		},
		{
			name:        "figcaption",
			body:        `<figure><img src="u"/><figcaption>A <em>fine</em> cat</figcaption></figure>`,
			wantURL:     "u",
			wantCaption: "A fine cat",
		},
		{
			name:        "class-tagged caption",
			body:        `<img src="u"/><div class="wp-caption-text">legacy caption</div>`,
			wantURL:     "u",
			wantCaption: "legacy caption",
		},
		{
			name:        "figcaption beats class caption",
			body:        `<img src="u"/><figcaption>fig</figcaption><div class="caption">cls</div>`,
			wantURL:     "u",
			wantCaption: "fig",
		},
		{
			name:        "no src yields bare image block",
			body:        `<figure>placeholder</figure>`,
			wantNoAttrs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := "<!-- wp:image -->\n" + tt.body + "\n<!-- /wp:image -->"
			blocks := Decode(in)
			if len(blocks) != 1 || blocks[0].Kind != block.KindImage {
				t.Fatalf("decode = %+v", blocks)
			}
			a := blocks[0].Attrs
			if tt.wantNoAttrs {
				if len(a) != 0 {
					t.Fatalf("attrs = %v, want none", a)
				}
				return
			}
			if got := a.Str("url", ""); got != tt.wantURL {
				t.Errorf("url = %q, want %q", got, tt.wantURL)
			}
			if tt.wantAlt != "" && a.Str("alt", "") != tt.wantAlt {
				t.Errorf("alt = %q, want %q", a.Str("alt", ""), tt.wantAlt)
			}
			if tt.wantCaption != "" && a.Str("caption", "") != tt.wantCaption {
				t.Errorf("caption = %q, want %q", a.Str("caption", ""), tt.wantCaption)
			}
		})
	}
}

func TestDecodeContainers(t *testing.T) {
	in := "<!-- wp:columns -->\n<div class=\"wp-block-columns\">\n\n" +
		"<!-- wp:column -->\n<div class=\"wp-block-column\">\n\n" +
		"<!-- wp:paragraph -->\n<p>inner</p>\n<!-- /wp:paragraph -->\n\n" +
		"</div>\n<!-- /wp:column -->\n\n" +
		"</div>\n<!-- /wp:columns -->"

	blocks := Decode(in)
	if len(blocks) != 1 {
		t.Fatalf("got %d top-level blocks, want 1", len(blocks))
	}
	cols := blocks[0]
	if cols.Kind != block.KindColumns || len(cols.Children) != 1 {
		t.Fatalf("columns = %v with %d children", cols.Kind, len(cols.Children))
	}
	col := cols.Children[0]
	if col.Kind != block.KindColumn || len(col.Children) != 1 {
		t.Fatalf("column = %v with %d children", col.Kind, len(col.Children))
	}
	if col.Children[0].Content != "inner" {
		t.Errorf("inner paragraph = %q", col.Children[0].Content)
	}
}

func TestDecodeGallery(t *testing.T) {
	in := "<!-- wp:gallery -->\n<figure><img src=\"https://x/1.png\"/><img src=\"https://x/2.png\"/></figure>\n<!-- /wp:gallery -->"

	blocks := Decode(in)
	urls := blocks[0].Attrs.StringSlice("urls")
	if len(urls) != 2 || urls[0] != "https://x/1.png" || urls[1] != "https://x/2.png" {
		t.Errorf("urls = %v", urls)
	}
}

func TestDecodeTable(t *testing.T) {
	in := "<!-- wp:table -->\n<table><tbody><tr><th>h1</th><th>h2</th></tr><tr><td>a</td><td>b</td></tr></tbody></table>\n<!-- /wp:table -->"

	blocks := Decode(in)
	rows, ok := blocks[0].Attrs["rows"].Arr()
	if !ok || len(rows) != 2 {
		t.Fatalf("rows = %v", blocks[0].Attrs["rows"])
	}
	first, _ := rows[0].Arr()
	if len(first) != 2 || first[0].StrOr("") != "h1" {
		t.Errorf("first row = %v", first)
	}
	second, _ := rows[1].Arr()
	if second[1].StrOr("") != "b" {
		t.Errorf("second row = %v", second)
	}
}

func TestDecodeMedia(t *testing.T) {
	video := Decode("<!-- wp:video -->\n<figure><video controls src=\"https://x/v.mp4\"></video></figure>\n<!-- /wp:video -->")
	if got := video[0].Attrs.Str("src", ""); got != "https://x/v.mp4" {
		t.Errorf("video src = %q", got)
	}

	audio := Decode("<!-- wp:audio -->\n<audio controls src=\"https://x/a.mp3\"></audio>\n<!-- /wp:audio -->")
	if got := audio[0].Attrs.Str("src", ""); got != "https://x/a.mp3" {
		t.Errorf("audio src = %q", got)
	}
}

func TestDecodeCover(t *testing.T) {
	in := "<!-- wp:cover -->\n<div class=\"wp-block-cover\" style=\"background-image:url(https://x/bg.jpg)\">\n\n" +
		"<!-- wp:paragraph -->\n<p>over</p>\n<!-- /wp:paragraph -->\n\n</div>\n<!-- /wp:cover -->"

	blocks := Decode(in)
	b := blocks[0]
	if got := b.Attrs.Str("url", ""); got != "https://x/bg.jpg" {
		t.Errorf("background url = %q", got)
	}
	if len(b.Children) != 1 || b.Children[0].Content != "over" {
		t.Errorf("children = %+v", b.Children)
	}
}

func TestDecodeEmbed(t *testing.T) {
	in := "<!-- wp:embed -->\n<figure><div><a href=\"https://youtu.be/x\">https://youtu.be/x</a></div></figure>\n<!-- /wp:embed -->"

	blocks := Decode(in)
	if got := blocks[0].Attrs.Str("url", ""); got != "https://youtu.be/x" {
		t.Errorf("embed url = %q", got)
	}
}

func TestDecodeCodePreservesMarkup(t *testing.T) {
	in := "<!-- wp:code -->\n<pre class=\"wp-block-code\"><code>if a &lt; b { ok() }</code></pre>\n<!-- /wp:code -->"

	blocks := Decode(in)
	if blocks[0].Content != "if a < b { ok() }" {
		t.Errorf("code content = %q", blocks[0].Content)
	}
}

func TestDecodeFreshIDsPerCall(t *testing.T) {
	in := "<!-- wp:paragraph -->\n<p>x</p>\n<!-- /wp:paragraph -->"
	a := Decode(in)
	b := Decode(in)
	if a[0].ID == b[0].ID {
		t.Error("repeated decodes must assign fresh ids")
	}
}
