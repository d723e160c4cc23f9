package vocab

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// LoadFromFiles builds a Vocabulary from a HuggingFace-style vocab.json
// (token string -> dense id) and merges.txt (one "left right" pair per
// line, in rank order), plus an optional ordered set of special-token
// literals mapped to their reserved ids.
//
// This is the "separate loader (external to the core)" spec §4.4 allows for
// replacing the approximate built-ins with real merge data.
func LoadFromFiles(id, vocabPath, mergesPath string, special *orderedmap.OrderedMap[string, int]) (*Vocabulary, error) {
	data, err := os.ReadFile(vocabPath)
	if err != nil {
		return nil, fmt.Errorf("vocab: reading vocab file: %w", err)
	}

	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("vocab: unmarshalling vocab json: %w", err)
	}

	maxID := -1
	seen := make(map[int]bool, len(raw))
	for _, tokID := range raw {
		seen[tokID] = true
		if tokID > maxID {
			maxID = tokID
		}
	}
	for i := 0; i <= maxID; i++ {
		if !seen[i] {
			return nil, fmt.Errorf("vocab: ids not dense, missing %d", i)
		}
	}

	decoder, err := buildRevVocab(raw, len(raw))
	if err != nil {
		return nil, err
	}

	lines, err := readLines(mergesPath)
	if err != nil {
		return nil, fmt.Errorf("vocab: reading merges file: %w", err)
	}

	entries, err := buildMergeEntries(lines, raw)
	if err != nil {
		return nil, err
	}

	mt, err := NewMergeTable(entries)
	if err != nil {
		return nil, err
	}
	c, err := newCodec(decoder)
	if err != nil {
		return nil, err
	}

	if special == nil {
		special = orderedmap.New[string, int]()
	}

	maxLen := 0
	for _, bs := range decoder {
		if len(bs) > maxLen {
			maxLen = len(bs)
		}
	}

	return &Vocabulary{
		id:              id,
		codec:           c,
		merges:          mt,
		special:         special,
		vocabSize:       len(decoder) + special.Len(),
		maxTokenByteLen: maxLen,
	}, nil
}

// buildRevVocab turns the parsed vocab.json (tokenString -> id) into
// decoder[id] = raw bytes for that id, undoing GPT-2's byte<->unicode
// stand-in encoding along the way.
func buildRevVocab(vocabMap map[string]int, vocabSize int) ([][]byte, error) {
	byteDecoder := gpt2ByteDecoder()

	decoder := make([][]byte, vocabSize)
	for tokStr, id := range vocabMap {
		if id < 0 || id >= vocabSize {
			return nil, fmt.Errorf("vocab: token id out of range: %d", id)
		}
		tokBytes, err := decodeGPT2TokenString(tokStr, byteDecoder)
		if err != nil {
			return nil, fmt.Errorf("vocab: decoding token %q: %w", tokStr, err)
		}
		if len(tokBytes) == 0 {
			return nil, fmt.Errorf("vocab: empty byte sequence for token id %d", id)
		}
		decoder[id] = tokBytes
	}

	for i, bs := range decoder {
		if len(bs) == 0 {
			return nil, fmt.Errorf("vocab: id %d is unset in vocab file", i)
		}
	}
	return decoder, nil
}

// decodeGPT2TokenString turns a vocab.json key back into real raw bytes,
// mapping the GPT-2 "printable stand-in" runes back to their original byte
// and passing everything else through as literal UTF-8.
func decodeGPT2TokenString(s string, byteDecoder map[rune]byte) ([]byte, error) {
	var out []byte
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			return nil, fmt.Errorf("invalid utf8 at %q", s)
		}
		if b, ok := byteDecoder[r]; ok {
			out = append(out, b)
		} else {
			var tmp [utf8.UTFMax]byte
			n := utf8.EncodeRune(tmp[:], r)
			out = append(out, tmp[:n]...)
		}
		s = s[size:]
	}
	return out, nil
}

// gpt2ByteDecoder builds the rune->byte inverse of GPT-2's reversible
// byte<->unicode mapping: printable bytes map to themselves, the rest get
// shifted stand-in code points starting at 256.
func gpt2ByteDecoder() map[rune]byte {
	var bs []int
	for b := 33; b <= 126; b++ {
		bs = append(bs, b)
	}
	for b := 161; b <= 172; b++ {
		bs = append(bs, b)
	}
	for b := 174; b <= 255; b++ {
		bs = append(bs, b)
	}

	printable := make(map[int]bool, len(bs))
	for _, b := range bs {
		printable[b] = true
	}

	cs := append([]int{}, bs...)
	next := 256
	for b := 0; b < 256; b++ {
		if !printable[b] {
			bs = append(bs, b)
			cs = append(cs, next)
			next++
		}
	}

	decoder := make(map[rune]byte, 256)
	for i := range bs {
		decoder[rune(cs[i])] = byte(bs[i])
	}
	return decoder
}

// buildMergeEntries assigns dense ranks to each merges.txt line, in file
// order, resolving both operands against the vocab map.
func buildMergeEntries(lines []string, vocabMap map[string]int) ([]MergeEntry, error) {
	entries := make([]MergeEntry, 0, len(lines))
	byBytes := make(map[string]int, len(vocabMap))
	byteDecoder := gpt2ByteDecoder()

	for tokStr, id := range vocabMap {
		bs, err := decodeGPT2TokenString(tokStr, byteDecoder)
		if err != nil {
			return nil, err
		}
		byBytes[string(bs)] = id
	}

	rank := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, fmt.Errorf("vocab: invalid merges line %q", line)
		}

		leftBytes, err := decodeGPT2TokenString(parts[0], byteDecoder)
		if err != nil {
			return nil, err
		}
		rightBytes, err := decodeGPT2TokenString(parts[1], byteDecoder)
		if err != nil {
			return nil, err
		}

		leftID, ok1 := byBytes[string(leftBytes)]
		rightID, ok2 := byBytes[string(rightBytes)]
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("vocab: merge operand not found in vocab: %q", line)
		}

		mergedBytes := append(append([]byte{}, leftBytes...), rightBytes...)
		mergedID, ok := byBytes[string(mergedBytes)]
		if !ok {
			return nil, fmt.Errorf("vocab: merge result %q not present in vocab", mergedBytes)
		}

		entries = append(entries, MergeEntry{Left: leftID, Right: rightID, MergedID: mergedID, Rank: rank})
		rank++
	}
	return entries, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
