package vocab

// TrainToyBPE learns numMerges byte-pair merges from a training corpus the
// classical way: repeatedly find the most frequent adjacent pair across the
// corpus and add it as the next merge. It's the utility trainer spec §1
// allows ("a toy trainer... in scope as a utility").
//
// Training stops early if numMerges is reached, the corpus is exhausted of
// repeated pairs, or the most frequent remaining pair only occurs once.
func TrainToyBPE(id string, corpus []byte, numMerges int) (*Vocabulary, error) {
	b := newBuilder()

	pieces := make([][]byte, len(corpus))
	for i, bb := range corpus {
		pieces[i] = []byte{bb}
	}

	for m := 0; m < numMerges; m++ {
		type pairCount struct {
			left, right []byte
			count       int
		}
		counts := make(map[string]*pairCount)
		order := make([]string, 0)

		for i := 0; i+1 < len(pieces); i++ {
			key := string(pieces[i]) + "\x00" + string(pieces[i+1])
			pc, ok := counts[key]
			if !ok {
				pc = &pairCount{left: pieces[i], right: pieces[i+1]}
				counts[key] = pc
				order = append(order, key)
			}
			pc.count++
		}

		var best *pairCount
		for _, key := range order {
			pc := counts[key]
			if best == nil || pc.count > best.count {
				best = pc
			}
		}

		if best == nil || best.count < 2 {
			break
		}

		if err := b.merge(best.left, best.right); err != nil {
			return nil, err
		}

		merged := append(append([]byte{}, best.left...), best.right...)
		newPieces := make([][]byte, 0, len(pieces))
		for i := 0; i < len(pieces); {
			if i+1 < len(pieces) && string(pieces[i]) == string(best.left) && string(pieces[i+1]) == string(best.right) {
				newPieces = append(newPieces, merged)
				i += 2
			} else {
				newPieces = append(newPieces, pieces[i])
				i++
			}
		}
		pieces = newPieces
	}

	return b.build(id)
}
