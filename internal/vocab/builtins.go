package vocab

// mergeDef is a single (left, right) byte-sequence merge, written as Go
// string literals for readability; all of the built-in merges happen to be
// ASCII, so the string form is also the exact byte form.
type mergeDef struct {
	left, right string
}

// commonMergesBase and commonMergesExtended are the approximate English BPE
// merge orders the original prompt-quant-core shipped (vocab.rs), ordered by
// typical frequency in English prose. These are deliberately not bit-exact
// with any production tokenizer (spec §4.4, §9): they exist so the registry
// has something to tokenize with out of the box.
var commonMergesBase = []mergeDef{
	{" ", "t"}, {" ", "a"}, {" ", "s"}, {" ", "o"}, {" ", "i"}, {" ", "c"},
	{" ", "w"}, {" ", "h"}, {" ", "m"}, {" ", "d"}, {" ", "f"}, {" ", "b"},
	{" ", "p"}, {" ", "n"}, {" ", "e"}, {" ", "r"}, {" ", "l"}, {" ", "g"},
	{"t", "h"}, {"h", "e"}, {"i", "n"}, {"e", "r"}, {"a", "n"}, {"r", "e"},
	{"o", "n"}, {"e", "n"}, {"a", "t"}, {"o", "r"}, {"e", "s"}, {"t", "e"},
	{"e", "d"}, {"i", "t"}, {"o", "u"}, {"a", "l"}, {"i", "s"}, {"s", "t"},
	{"a", "r"}, {"n", "d"},
	{"th", "e"}, {"in", "g"}, {"an", "d"}, {"er", "e"}, {"th", "a"},
	{"en", "t"}, {"at", "e"}, {"al", "l"}, {"ou", "r"},
}

var commonMergesExtended = append(append([]mergeDef{}, commonMergesBase...), []mergeDef{
	{" ", "th"}, {" th", "e"}, {"l", "e"}, {"s", "e"}, {"o", "f"},
	{" ", "of"}, {"i", "on"}, {"t", "ion"}, {"c", "h"}, {"l", "y"}, {"m", "e"},
	{"i", "l"}, {"c", "e"}, {"v", "e"}, {"n", "e"}, {"w", "i"}, {"i", "th"},
	{" ", "in"}, {" ", "is"}, {" ", "it"}, {" ", "an"}, {" ", "on"},
	{" ", "or"}, {" ", "at"}, {" ", "re"}, {" ", "al"}, {" ", "st"},
	{" ", "en"}, {" ", "er"}, {" ", "he"}, {"t", "o"}, {" ", "to"},
}...)

// buildApprox constructs a byte-level BPE vocabulary from a merge list plus
// the conventional `<|endoftext|>` special token, the way
// build_english_bpe_tokenizer did in the original core.
func buildApprox(id string, merges []mergeDef) (*Vocabulary, error) {
	b := newBuilder()
	for _, m := range merges {
		if err := b.merge([]byte(m.left), []byte(m.right)); err != nil {
			return nil, err
		}
	}
	b.addSpecial("<|endoftext|>", b.nextID())
	return b.build(id)
}

// BuildCL100kApprox approximates cl100k_base (GPT-4 / GPT-3.5-turbo).
func BuildCL100kApprox() (*Vocabulary, error) {
	return buildApprox("cl100k_base", commonMergesExtended)
}

// BuildO200kApprox approximates o200k_base (GPT-4o). The real o200k vocab is
// much larger than cl100k's; the approximation here reuses the same extended
// merge order since bit-exactness is explicitly out of scope (spec §9).
func BuildO200kApprox() (*Vocabulary, error) {
	return buildApprox("o200k_base", commonMergesExtended)
}

// BuildP50kApprox approximates p50k_base (legacy text-davinci models), which
// used fewer merges than cl100k.
func BuildP50kApprox() (*Vocabulary, error) {
	return buildApprox("p50k_base", commonMergesBase)
}

// BuiltinDescriptions provides the human-readable name/description pairs the
// registry's info() operation surfaces for UI display (spec §4.4).
var BuiltinDescriptions = map[string]struct {
	Name        string
	Description string
}{
	"cl100k_base": {"cl100k_base", "GPT-4 / GPT-3.5-turbo tokenizer (approximation)"},
	"o200k_base":  {"o200k_base", "GPT-4o tokenizer (approximation)"},
	"p50k_base":   {"p50k_base", "Legacy (text-davinci) tokenizer (approximation)"},
}
