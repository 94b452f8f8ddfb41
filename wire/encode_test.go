package wire

import (
	"strings"
	"testing"

	"github.com/teranos/blockpress/block"
)

func TestEncodeImageSortedAttrs(t *testing.T) {
	img := block.New(block.KindImage)
	img.Attrs["url"] = block.String("https://x/y.png")
	img.Attrs["alt"] = block.String("cat")

	got := Encode([]*block.Block{img})
	want := "<!-- wp:image {\"alt\":\"cat\",\"url\":\"https://x/y.png\"} -->\n" +
		`<figure class="wp-block-image"><img src="https://x/y.png" alt="cat"/></figure>` +
		"\n<!-- /wp:image -->"

	if got != want {
		t.Errorf("encode image:\n got %q\nwant %q", got, want)
	}
}

func TestEncodeParagraphEscapes(t *testing.T) {
	p := block.NewParagraph(`a < b & "c" > 'd'`)
	got := Encode([]*block.Block{p})

	wantInner := "<p>a &lt; b &amp; &quot;c&quot; &gt; &#39;d&#39;</p>"
	if !strings.Contains(got, wantInner) {
		t.Errorf("encoded paragraph = %q, want body %q", got, wantInner)
	}
}

func TestEncodeHeadingLevels(t *testing.T) {
	tests := []struct {
		name    string
		attrs   block.Attrs
		wantTag string
	}{
		{"explicit 3", block.Attrs{"level": block.Int(3)}, "<h3>"},
		{"absent defaults to 2", block.Attrs{}, "<h2>"},
		{"out of range high", block.Attrs{"level": block.Int(9)}, "<h2>"},
		{"out of range low", block.Attrs{"level": block.Int(0)}, "<h2>"},
		{"non-integer", block.Attrs{"level": block.String("three")}, "<h2>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := block.New(block.KindHeading)
			h.Content = "T"
			h.Attrs = tt.attrs
			if got := Encode([]*block.Block{h}); !strings.Contains(got, tt.wantTag) {
				t.Errorf("encoded = %q, want tag %s", got, tt.wantTag)
			}
		})
	}
}

func TestEncodeListTagChoice(t *testing.T) {
	mkList := func(ordered bool) *block.Block {
		l := block.New(block.KindList)
		if ordered {
			l.Attrs["ordered"] = block.Bool(true)
		}
		item := block.New(block.KindList)
		item.Content = "only"
		l.Children = []*block.Block{item}
		return l
	}

	if got := Encode([]*block.Block{mkList(false)}); !strings.Contains(got, "<ul") || strings.Contains(got, "<ol") {
		t.Errorf("unordered list encoded as %q", got)
	}
	if got := Encode([]*block.Block{mkList(true)}); !strings.Contains(got, "<ol") {
		t.Errorf("ordered list encoded as %q", got)
	}
}

func TestEncodeBlankLineJoin(t *testing.T) {
	got := Encode([]*block.Block{block.NewParagraph("one"), block.NewParagraph("two")})
	want := "<!-- wp:paragraph -->\n<p>one</p>\n<!-- /wp:paragraph -->\n\n" +
		"<!-- wp:paragraph -->\n<p>two</p>\n<!-- /wp:paragraph -->"
	if got != want {
		t.Errorf("join:\n got %q\nwant %q", got, want)
	}
}

func TestEncodeUnknownVerbatim(t *testing.T) {
	u := block.NewUnknown("wp:acme/widget", "\n<div data-x=\"1\">opaque</div>\n")
	got := Encode([]*block.Block{u})
	want := "<!-- wp:acme/widget -->\n<div data-x=\"1\">opaque</div>\n<!-- /wp:acme/widget -->"
	if got != want {
		t.Errorf("unknown encode:\n got %q\nwant %q", got, want)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	b := block.New(block.KindImage)
	b.Attrs["url"] = block.String("u")
	b.Attrs["alt"] = block.String("a")
	b.Attrs["caption"] = block.String("c")

	first := Encode([]*block.Block{b})
	for i := 0; i < 10; i++ {
		if got := Encode([]*block.Block{b}); got != first {
			t.Fatalf("iteration %d: non-deterministic encode", i)
		}
	}
}

func TestEncodeEmptySequence(t *testing.T) {
	if got := Encode(nil); got != "" {
		t.Errorf("Encode(nil) = %q, want empty", got)
	}
}

func TestEncodeSeparatorAndSpacer(t *testing.T) {
	sep := Encode([]*block.Block{block.New(block.KindSeparator)})
	if !strings.Contains(sep, "<hr") {
		t.Errorf("separator = %q", sep)
	}
	sp := Encode([]*block.Block{block.New(block.KindSpacer)})
	if !strings.Contains(sp, "wp-block-spacer") {
		t.Errorf("spacer = %q", sp)
	}
}
