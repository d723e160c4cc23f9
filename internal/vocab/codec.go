package vocab

import "fmt"

// codec is the bidirectional map between token bytes and token id described
// in spec §4.2, plus the byte->base-token lookup the BPE engine seeds its
// first pass from.
type codec struct {
	// decoder[id] is the exact byte sequence for that id.
	decoder [][]byte
	// encoder maps a piece's bytes (as a string key) to its token id.
	encoder map[string]int
	// byteToToken[b] is the base (single-byte) token id for raw byte b.
	byteToToken [256]int
}

func newCodec(decoder [][]byte) (*codec, error) {
	encoder := make(map[string]int, len(decoder))
	var byteToToken [256]int
	filled := [256]bool{}

	for id, bs := range decoder {
		if len(bs) == 0 {
			return nil, fmt.Errorf("vocab: token %d has empty byte sequence", id)
		}
		key := string(bs)
		if _, exists := encoder[key]; exists {
			return nil, fmt.Errorf("vocab: duplicate token bytes %q", key)
		}
		encoder[key] = id

		if len(bs) == 1 {
			b := bs[0]
			if filled[b] {
				return nil, fmt.Errorf("vocab: duplicate single-byte token for byte %d", b)
			}
			byteToToken[b] = id
			filled[b] = true
		}
	}

	for b := 0; b < 256; b++ {
		if !filled[b] {
			return nil, fmt.Errorf("vocab: missing base token for byte %d", b)
		}
	}

	return &codec{decoder: decoder, encoder: encoder, byteToToken: byteToToken}, nil
}

// encodePiece looks up a fully-merged piece's token id, falling back to id 0
// per spec §4.2: every single-byte piece is in the base vocabulary and BPE
// only merges pieces already present, so a miss here means a malformed
// vocabulary rather than a normal runtime condition.
func (c *codec) encodePiece(piece []byte) int {
	if id, ok := c.encoder[string(piece)]; ok {
		return id
	}
	return 0
}

// decodeIDs concatenates decoder[id] for each id, contributing nothing for an
// unknown id (spec §4.2, §7 "Unknown token id on decode").
func (c *codec) decodeIDs(ids []int) []byte {
	total := 0
	for _, id := range ids {
		if id >= 0 && id < len(c.decoder) {
			total += len(c.decoder[id])
		}
	}
	out := make([]byte, 0, total)
	for _, id := range ids {
		if id >= 0 && id < len(c.decoder) {
			out = append(out, c.decoder[id]...)
		}
	}
	return out
}

func (c *codec) tokenBytes(id int) []byte {
	if id < 0 || id >= len(c.decoder) {
		return nil
	}
	return c.decoder[id]
}
