// Package classify assigns each token a visual category, an RGB color, and a
// rarity weight. The category set is closed at eight variants; evaluation of
// the categorization rules is order-dependent and the first match wins,
// mirroring the original prompt-quant-core color.rs policy table.
package classify

import (
	"strings"

	"github.com/emirpasic/gods/v2/sets/hashset"
)

// Category is a closed enumeration driving token color and grouping in the
// live token-stream display.
type Category int

const (
	Whitespace Category = iota
	Punctuation
	CommonWord
	Word
	Numeric
	Code
	Special
	Fragment
)

// String renders the snake_case wire name used throughout §6.
func (c Category) String() string {
	switch c {
	case Whitespace:
		return "whitespace"
	case Punctuation:
		return "punctuation"
	case CommonWord:
		return "common_word"
	case Word:
		return "word"
	case Numeric:
		return "numeric"
	case Code:
		return "code"
	case Special:
		return "special"
	case Fragment:
		return "fragment"
	default:
		return "word"
	}
}

// ParseCategory is the inverse of String, used by the category_color
// external operation which takes a category name rather than an id.
func ParseCategory(name string) (Category, bool) {
	switch name {
	case "whitespace":
		return Whitespace, true
	case "punctuation":
		return Punctuation, true
	case "common_word", "commonword":
		return CommonWord, true
	case "word":
		return Word, true
	case "numeric":
		return Numeric, true
	case "code":
		return Code, true
	case "special":
		return Special, true
	case "fragment":
		return Fragment, true
	default:
		return Word, false
	}
}

// palette is the eight-entry fixed color table. Order doesn't matter for
// lookup (ColorFor indexes it by category) but is kept in enum order for
// readability.
var palette = map[Category][3]uint8{
	Whitespace:  {60, 70, 90},    // dark slate
	Punctuation: {120, 140, 170}, // steel blue
	CommonWord:  {0, 255, 204},   // cyan-green, primary glow
	Word:        {125, 244, 255}, // bright cyan
	Numeric:     {255, 170, 50},  // amber
	Code:        {16, 185, 129},  // emerald
	Special:     {255, 80, 120},  // hot pink
	Fragment:    {160, 120, 255}, // purple
}

var fallbackColor = [3]uint8{125, 244, 255}

// ColorFor returns the RGB color for a category, falling back to bright
// cyan for any value outside the closed set (defensive; Category is closed
// by construction so this only matters for an out-of-range value such as
// Category(-1)).
func ColorFor(c Category) [3]uint8 {
	if color, ok := palette[c]; ok {
		return color
	}
	return fallbackColor
}

// WeightFor computes the rarity weight: low ids (single bytes) are common
// and weight near zero, high ids (rare learned merges) approach one.
func WeightFor(id int, vocabSize int) float32 {
	if vocabSize <= 0 {
		return 0.5
	}
	w := float32(id) / float32(vocabSize)
	if w < 0 {
		return 0
	}
	if w > 1.0 {
		return 1.0
	}
	return w
}

// codeKeywords and commonWords are the closed policy tables from spec §4.5
// rules 5 and 7. They're built as sets rather than repeated switch/case
// ladders so membership testing is O(1) regardless of table size.
var codeKeywords = hashset.New(
	"{", "}", "[", "]", "(", ")", ";", "::", "->", "=>", "==",
	"!=", "<=", ">=", "&&", "||", "+=", "-=", "*=", "/=",
	"fn", "let", "mut", "const", "pub", "struct", "enum", "impl",
	"trait", "use", "mod", "async", "await", "return",
	"function", "var", "class", "import", "export", "def", "self",
)

var commonWords = hashset.New(
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to",
	"for", "of", "with", "by", "from", "is", "are", "was", "were",
	"be", "been", "being", "have", "has", "had", "do", "does", "did",
	"will", "would", "could", "should", "may", "might", "can",
	"this", "that", "these", "those", "it", "its",
	"i", "you", "he", "she", "we", "they", "me", "him", "her", "us", "them",
	"my", "your", "his", "our", "their",
	"not", "no", "if", "then", "else", "so", "as", "up",
)

// Categorize implements the ordered rule list from spec §4.5. id is the
// token's vocabulary id, text is its decoded text.
func Categorize(id int, text string) Category {
	if strings.HasPrefix(text, "<|") && strings.HasSuffix(text, "|>") {
		return Special
	}

	trimmed := strings.TrimSpace(text)

	if trimmed == "" {
		return Whitespace
	}

	if isNumeric(trimmed) {
		return Numeric
	}

	if codeKeywords.Contains(trimmed) {
		return Code
	}

	if isPunctuation(trimmed) {
		return Punctuation
	}

	if commonWords.Contains(strings.ToLower(trimmed)) {
		return CommonWord
	}

	if !strings.HasPrefix(text, " ") && len(text) <= 3 && id > 255 {
		return Fragment
	}

	return Word
}

func isNumeric(s string) bool {
	hasDigit := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			hasDigit = true
		} else if r != '.' && r != ',' {
			return false
		}
	}
	return hasDigit
}

func isPunctuation(s string) bool {
	for _, r := range s {
		if !isASCIIPunct(r) {
			return false
		}
	}
	return true
}

// isASCIIPunct mirrors Rust's char::is_ascii_punctuation: the graphic ASCII
// ranges that are neither letters nor digits.
func isASCIIPunct(r rune) bool {
	return (r >= '!' && r <= '/') ||
		(r >= ':' && r <= '@') ||
		(r >= '[' && r <= '`') ||
		(r >= '{' && r <= '~')
}
