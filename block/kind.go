package block

import "strings"

// Kind identifies the semantic type of a block. The set is closed except for
// KindUnknown, which preserves any wire name the codec does not recognize.
type Kind string

const (
	KindParagraph Kind = "paragraph"
	KindHeading   Kind = "heading"
	KindList      Kind = "list"
	KindQuote     Kind = "quote"
	KindCode      Kind = "code"
	KindImage     Kind = "image"
	KindSeparator Kind = "separator"
	KindButtons   Kind = "buttons"
	KindButton    Kind = "button"
	KindColumns   Kind = "columns"
	KindColumn    Kind = "column"
	KindGallery   Kind = "gallery"
	KindVideo     Kind = "video"
	KindAudio     Kind = "audio"
	KindTable     Kind = "table"
	KindSpacer    Kind = "spacer"
	KindGroup     Kind = "group"
	KindCover     Kind = "cover"
	KindEmbed     Kind = "embed"
	KindPullquote Kind = "pullquote"
	KindUnknown   Kind = "unknown"
)

// wirePrefix is the namespace every governed block identifier carries in the
// delimiter comments, e.g. "wp:paragraph".
const wirePrefix = "wp:"

// containerKinds hold children instead of (or in addition to) content.
var containerKinds = map[Kind]bool{
	KindButtons: true,
	KindColumns: true,
	KindColumn:  true,
	KindGroup:   true,
	KindCover:   true,
}

// IsContainer reports whether blocks of this kind carry child blocks.
func (k Kind) IsContainer() bool {
	return containerKinds[k]
}

// WireName returns the canonical wire identifier for a known kind,
// e.g. "wp:paragraph". For KindUnknown the block's own WireName field is
// authoritative and this returns the bare prefix-less placeholder.
func (k Kind) WireName() string {
	if k == KindUnknown {
		return ""
	}
	return wirePrefix + string(k)
}

// KindFromWireName maps a wire identifier to its Kind. Identifiers outside
// the core set (including namespaced ones like "wp:acme/widget") map to
// KindUnknown; the caller keeps the original name for round-tripping.
func KindFromWireName(name string) Kind {
	bare, ok := strings.CutPrefix(name, wirePrefix)
	if !ok {
		return KindUnknown
	}
	switch Kind(bare) {
	case KindParagraph, KindHeading, KindList, KindQuote, KindCode,
		KindImage, KindSeparator, KindButtons, KindButton, KindColumns,
		KindColumn, KindGallery, KindVideo, KindAudio, KindTable,
		KindSpacer, KindGroup, KindCover, KindEmbed, KindPullquote:
		return Kind(bare)
	}
	return KindUnknown
}
