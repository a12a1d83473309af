package markup

import (
	"regexp"
	"strings"
)

// BlockKind identifies the layout role of a rendered block.
type BlockKind string

const (
	BlockHeading       BlockKind = "heading"
	BlockUnorderedItem BlockKind = "unordered_item"
	BlockOrderedItem   BlockKind = "ordered_item"
	BlockParagraph     BlockKind = "paragraph"
	BlockSpacer        BlockKind = "spacer"
)

// Block is one rendered line. Level is set for headings only (1-3).
// Runs carry the inline-formatted text; a spacer has none.
type Block struct {
	Kind  BlockKind `json:"kind"`
	Level int       `json:"level,omitempty"`
	Runs  []Run     `json:"runs,omitempty"`
}

var orderedItemRe = regexp.MustCompile(`^\d+\.\s`)

// Render turns markdown-like text into an ordered block sequence,
// classifying line by line. Empty input yields an empty sequence.
func Render(text string) []Block {
	if text == "" {
		return []Block{}
	}

	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, renderLine(line))
	}
	return blocks
}

func renderLine(line string) Block {
	switch {
	case strings.HasPrefix(line, "### "):
		return Block{Kind: BlockHeading, Level: 3, Runs: FormatInline(line[4:])}
	case strings.HasPrefix(line, "## "):
		return Block{Kind: BlockHeading, Level: 2, Runs: FormatInline(line[3:])}
	case strings.HasPrefix(line, "# "):
		return Block{Kind: BlockHeading, Level: 1, Runs: FormatInline(line[2:])}
	case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
		return Block{Kind: BlockUnorderedItem, Runs: FormatInline(line[2:])}
	case orderedItemRe.MatchString(line):
		return Block{Kind: BlockOrderedItem, Runs: FormatInline(orderedItemRe.ReplaceAllString(line, ""))}
	case strings.TrimSpace(line) == "":
		return Block{Kind: BlockSpacer}
	default:
		return Block{Kind: BlockParagraph, Runs: FormatInline(line)}
	}
}
