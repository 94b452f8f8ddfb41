package wire

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/teranos/blockpress/block"
)

var blankLineRe = regexp.MustCompile(`\n[ \t\r]*\n`)

// classicBlocks converts ungoverned HTML — text carrying no block
// delimiters — into blocks heuristically. Segments are split on blank
// lines; each segment becomes an image, heading, or paragraph, tried in
// that priority order. Segments that reduce to nothing (pure markup such
// as container wrapper tags) are dropped.
func classicBlocks(text string) []*block.Block {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var blocks []*block.Block
	for _, seg := range blankLineRe.Split(text, -1) {
		if strings.TrimSpace(seg) == "" {
			continue
		}

		if tag := imgTagRe.FindString(seg); tag != "" {
			img := block.New(block.KindImage)
			decodeImage(img, tag)
			blocks = append(blocks, img)
			continue
		}

		if m := headingTagRe.FindStringSubmatch(seg); m != nil {
			lvl, _ := strconv.Atoi(m[1])
			blocks = append(blocks, block.NewHeading(textContent(seg), lvl))
			continue
		}

		content := textContent(seg)
		if content == "" {
			continue
		}
		blocks = append(blocks, block.NewParagraph(content))
	}
	return blocks
}
